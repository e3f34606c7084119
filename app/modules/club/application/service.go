package clubservice

import (
	"context"
	"errors"
	"log/slog"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	clubdomain "github.com/Black-And-White-Club/roomly/app/modules/club/domain"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/shared/dbtx"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ClubService implements the Service interface.
type ClubService struct {
	repo   clubdb.Repository
	users  userdb.Repository
	events calendardb.Repository
	logger *slog.Logger
	tracer trace.Tracer
	db     *bun.DB
}

// NewClubService creates a new ClubService.
func NewClubService(
	repo clubdb.Repository,
	users userdb.Repository,
	events calendardb.Repository,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
) *ClubService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClubService{
		repo:   repo,
		users:  users,
		events: events,
		logger: logger,
		tracer: tracer,
		db:     db,
	}
}

func (s *ClubService) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "ClubService."+op, trace.WithAttributes(attrs...))
}

func (s *ClubService) clubByName(ctx context.Context, db bun.IDB, name string) (*clubdb.Club, error) {
	club, err := s.repo.FindByNameFold(ctx, db, name)
	if err != nil {
		if errors.Is(err, clubdb.ErrNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return club, nil
}

// requireLeader lets admins through and checks club leadership for everyone else.
func (s *ClubService) requireLeader(ctx context.Context, db bun.IDB, p authdomain.Principal, clubID int64) error {
	if p.IsAdmin() {
		return nil
	}
	ok, err := s.repo.IsLeader(ctx, db, clubID, p.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotLeaderForClub
	}
	return nil
}

func toViews(clubs []clubdb.Club) []ClubView {
	out := make([]ClubView, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, ClubView{ID: c.ID, Name: c.Name})
	}
	return out
}

func (s *ClubService) ListMine(ctx context.Context, p authdomain.Principal) ([]ClubView, error) {
	ctx, span := s.startSpan(ctx, "ListMine", attribute.Int64("user_id", p.UserID))
	defer span.End()

	var (
		clubs []clubdb.Club
		err   error
	)
	switch p.Role {
	case authdomain.RoleAdmin:
		clubs, err = s.repo.List(ctx, nil)
	case authdomain.RoleClubLeader:
		clubs, err = s.repo.ListLedBy(ctx, nil, p.UserID)
	default:
		return []ClubView{}, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return toViews(clubs), nil
}

func (s *ClubService) ListMemberships(ctx context.Context, p authdomain.Principal) ([]clubdb.Membership, error) {
	ctx, span := s.startSpan(ctx, "ListMemberships", attribute.Int64("user_id", p.UserID))
	defer span.End()

	memberships, err := s.repo.ListMemberships(ctx, nil, p.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return memberships, nil
}

// AddMember adds a user to a club as a member. An existing membership is
// returned unchanged.
func (s *ClubService) AddMember(ctx context.Context, p authdomain.Principal, req AddMemberRequest) (*clubdb.Membership, error) {
	ctx, span := s.startSpan(ctx, "AddMember", attribute.String("club_name", req.ClubName))
	defer span.End()

	var out *clubdb.Membership
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		club, err := s.clubByName(ctx, tx, req.ClubName)
		if err != nil {
			return err
		}
		target, err := s.users.FindByEmailFold(ctx, tx, req.UserEmail)
		if err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if !p.IsAdmin() {
			if p.Role != authdomain.RoleClubLeader {
				return ErrClubLeaderRequired
			}
			if err := s.requireLeader(ctx, tx, p, club.ID); err != nil {
				return err
			}
		}

		member, err := s.repo.GetMember(ctx, tx, club.ID, target.ID)
		switch {
		case errors.Is(err, clubdb.ErrMembershipNotFound):
			member = &clubdb.Member{ClubID: club.ID, UserID: target.ID, Role: clubdomain.MemberRoleMember}
			if err := s.repo.AddMember(ctx, tx, member); err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "Club member added",
				slog.Int64("club_id", club.ID),
				slog.Int64("user_id", target.ID),
			)
		case err != nil:
			return err
		}

		out = &clubdb.Membership{ID: club.ID, Name: club.Name, Role: member.Role}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

func (s *ClubService) LeaveClub(ctx context.Context, p authdomain.Principal, clubName string) (*LeaveResult, error) {
	ctx, span := s.startSpan(ctx, "LeaveClub", attribute.String("club_name", clubName))
	defer span.End()

	if clubName == "" {
		return nil, ErrClubNameRequired
	}

	var out *LeaveResult
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		club, err := s.clubByName(ctx, tx, clubName)
		if err != nil {
			return err
		}
		member, err := s.repo.GetMember(ctx, tx, club.ID, p.UserID)
		if err != nil {
			if errors.Is(err, clubdb.ErrMembershipNotFound) {
				return ErrMembershipNotFound
			}
			return err
		}
		if member.Role == clubdomain.MemberRoleLeader {
			return ErrLeaderCannotLeave
		}
		if err := s.repo.DeleteMember(ctx, tx, club.ID, p.UserID); err != nil {
			return err
		}
		out = &LeaveResult{ClubName: club.Name, Status: "left"}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

func (s *ClubService) ListRoster(ctx context.Context, p authdomain.Principal, clubName string) ([]clubdb.Roster, error) {
	ctx, span := s.startSpan(ctx, "ListRoster", attribute.String("club_name", clubName))
	defer span.End()

	if clubName == "" {
		return nil, ErrClubNameRequired
	}

	club, err := s.clubByName(ctx, nil, clubName)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := s.requireLeader(ctx, nil, p, club.ID); err != nil {
		return nil, err
	}

	roster, err := s.repo.ListRoster(ctx, nil, club.ID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return roster, nil
}
