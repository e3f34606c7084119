package clubdb

import (
	"time"

	clubdomain "github.com/Black-And-White-Club/roomly/app/modules/club/domain"
	"github.com/uptrace/bun"
)

// Club represents a student club.
type Club struct {
	bun.BaseModel `bun:"table:clubs,alias:c"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Name          string    `bun:"name,unique,notnull"`
	OwnerUserID   *int64    `bun:"owner_user_id"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Member is a row of club_members.
type Member struct {
	bun.BaseModel `bun:"table:club_members,alias:cm"`
	ClubID        int64                 `bun:"club_id,pk"`
	UserID        int64                 `bun:"user_id,pk"`
	Role          clubdomain.MemberRole `bun:"role,notnull,default:'member'"`
}

// Membership is a club seen from one of its members.
type Membership struct {
	ID   int64                 `bun:"id" json:"id"`
	Name string                `bun:"name" json:"name"`
	Role clubdomain.MemberRole `bun:"role" json:"role"`
}

// Roster is a member of one club with their contact details.
type Roster struct {
	Email    *string               `bun:"email" json:"email"`
	FullName *string               `bun:"full_name" json:"full_name"`
	Role     clubdomain.MemberRole `bun:"role" json:"role"`
}

// MemberDetail is a membership joined with club and user names.
type MemberDetail struct {
	ClubID    int64                 `bun:"club_id" json:"club_id"`
	ClubName  string                `bun:"club_name" json:"club_name"`
	UserID    int64                 `bun:"user_id" json:"user_id"`
	UserEmail *string               `bun:"user_email" json:"user_email"`
	Role      clubdomain.MemberRole `bun:"role" json:"role"`
}
