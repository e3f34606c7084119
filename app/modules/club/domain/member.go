package clubdomain

// MemberRole is a user's standing within a club.
type MemberRole string

const (
	MemberRoleMember MemberRole = "member"
	MemberRoleLeader MemberRole = "leader"
)

// IsValid reports whether r is a known member role.
func (r MemberRole) IsValid() bool {
	return r == MemberRoleMember || r == MemberRoleLeader
}

func (r MemberRole) String() string { return string(r) }
