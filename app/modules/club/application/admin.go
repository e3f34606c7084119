package clubservice

import (
	"context"
	"errors"
	"log/slog"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	clubdomain "github.com/Black-And-White-Club/roomly/app/modules/club/domain"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
	"github.com/Black-And-White-Club/roomly/app/shared/dbtx"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
)

func (s *ClubService) CreateClub(ctx context.Context, req CreateClubRequest) (*ClubView, error) {
	ctx, span := s.startSpan(ctx, "CreateClub", attribute.String("name", req.Name))
	defer span.End()

	if req.Name == "" {
		return nil, apperr.Invalid("name required")
	}

	club := &clubdb.Club{Name: req.Name, OwnerUserID: req.OwnerUserID}
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		if req.OwnerEmail != nil && *req.OwnerEmail != "" {
			owner, err := s.users.FindByEmailLike(ctx, tx, *req.OwnerEmail)
			if err != nil {
				if errors.Is(err, userdb.ErrNotFound) {
					return ErrOwnerNotFound
				}
				return err
			}
			club.OwnerUserID = &owner.ID
		} else if req.OwnerUserID != nil {
			if _, err := s.users.GetByID(ctx, tx, *req.OwnerUserID); err != nil {
				if errors.Is(err, userdb.ErrNotFound) {
					return ErrOwnerNotFound
				}
				return err
			}
		}
		if err := s.repo.Create(ctx, tx, club); err != nil {
			switch {
			case dbtx.IsUniqueViolation(err):
				return apperr.Wrap(ErrClubNameExists, err)
			case dbtx.IsForeignKeyViolation(err):
				return apperr.Wrap(ErrOwnerNotFound, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Club created", slog.Int64("club_id", club.ID), slog.String("name", club.Name))
	return &ClubView{ID: club.ID, Name: club.Name}, nil
}

func (s *ClubService) ListClubs(ctx context.Context) ([]AdminClubView, error) {
	ctx, span := s.startSpan(ctx, "ListClubs")
	defer span.End()

	clubs, err := s.repo.List(ctx, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out := make([]AdminClubView, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, AdminClubView{ID: c.ID, Name: c.Name, OwnerUserID: c.OwnerUserID})
	}
	return out, nil
}

func (s *ClubService) DeleteClub(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "DeleteClub", attribute.Int64("club_id", id))
	defer span.End()

	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		if _, err := s.repo.GetByID(ctx, tx, id); err != nil {
			if errors.Is(err, clubdb.ErrNotFound) {
				return ErrClubNotFound
			}
			return err
		}
		eventIDs, err := s.events.IDsByClub(ctx, tx, id)
		if err != nil {
			return err
		}
		if len(eventIDs) > 0 {
			if err := s.events.DeleteWithParticipants(ctx, tx, eventIDs); err != nil {
				return err
			}
		}
		if err := s.repo.DeleteMembersByClub(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.logger.InfoContext(ctx, "Club deleted", slog.Int64("club_id", id))
	return nil
}

// AssignLeader makes the user a leader of the club, creating the membership
// if needed. Non-admin users are promoted to club_leader.
func (s *ClubService) AssignLeader(ctx context.Context, clubID, userID int64) (*LeaderAssignment, error) {
	ctx, span := s.startSpan(ctx, "AssignLeader",
		attribute.Int64("club_id", clubID),
		attribute.Int64("user_id", userID),
	)
	defer span.End()

	var out *LeaderAssignment
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		club, err := s.repo.GetByID(ctx, tx, clubID)
		if err != nil {
			if errors.Is(err, clubdb.ErrNotFound) {
				return ErrClubNotFound
			}
			return err
		}
		user, err := s.users.GetByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		out, err = s.promote(ctx, tx, club, user)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

// AssignLeaderByName is AssignLeader with the club and user matched by
// name and email patterns.
func (s *ClubService) AssignLeaderByName(ctx context.Context, clubName, userEmail string) (*LeaderAssignment, error) {
	ctx, span := s.startSpan(ctx, "AssignLeaderByName", attribute.String("club_name", clubName))
	defer span.End()

	var out *LeaderAssignment
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		club, err := s.repo.FindByNameLike(ctx, tx, clubName)
		if err != nil {
			if errors.Is(err, clubdb.ErrNotFound) {
				return ErrClubNotFound
			}
			return err
		}
		user, err := s.users.FindByEmailLike(ctx, tx, userEmail)
		if err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		out, err = s.promote(ctx, tx, club, user)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

func (s *ClubService) promote(ctx context.Context, tx bun.IDB, club *clubdb.Club, user *userdb.User) (*LeaderAssignment, error) {
	_, err := s.repo.GetMember(ctx, tx, club.ID, user.ID)
	switch {
	case errors.Is(err, clubdb.ErrMembershipNotFound):
		err = s.repo.AddMember(ctx, tx, &clubdb.Member{ClubID: club.ID, UserID: user.ID, Role: clubdomain.MemberRoleLeader})
	case err == nil:
		err = s.repo.UpdateMemberRole(ctx, tx, club.ID, user.ID, clubdomain.MemberRoleLeader)
	}
	if err != nil {
		return nil, err
	}

	if user.Role != authdomain.RoleAdmin {
		if err := s.users.UpdateRole(ctx, tx, user.ID, authdomain.RoleClubLeader); err != nil {
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "Club leader assigned",
		slog.Int64("club_id", club.ID),
		slog.Int64("user_id", user.ID),
	)
	return &LeaderAssignment{ClubID: club.ID, UserID: user.ID, Role: clubdomain.MemberRoleLeader}, nil
}

func (s *ClubService) ListAllMembers(ctx context.Context) ([]clubdb.MemberDetail, error) {
	ctx, span := s.startSpan(ctx, "ListAllMembers")
	defer span.End()

	members, err := s.repo.ListAllMembers(ctx, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return members, nil
}

func (s *ClubService) RemoveMember(ctx context.Context, clubID, userID int64) error {
	ctx, span := s.startSpan(ctx, "RemoveMember",
		attribute.Int64("club_id", clubID),
		attribute.Int64("user_id", userID),
	)
	defer span.End()

	if err := s.repo.DeleteMember(ctx, nil, clubID, userID); err != nil {
		span.RecordError(err)
		if errors.Is(err, clubdb.ErrMembershipNotFound) {
			return ErrMembershipNotFound
		}
		return err
	}
	return nil
}

var _ Service = (*ClubService)(nil)
