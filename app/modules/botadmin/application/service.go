package botadminservice

import (
	"context"
	"errors"
	"log/slog"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	clubservice "github.com/Black-And-White-Club/roomly/app/modules/club/application"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
	"github.com/Black-And-White-Club/roomly/app/shared/dbtx"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BotAdminService implements the Service interface.
type BotAdminService struct {
	users  userdb.Repository
	clubs  clubdb.Repository
	club   clubservice.Service
	logger *slog.Logger
	tracer trace.Tracer
	db     *bun.DB
}

// NewBotAdminService creates a new BotAdminService. Leader assignment and
// club creation are delegated to the club service.
func NewBotAdminService(
	users userdb.Repository,
	clubs clubdb.Repository,
	club clubservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
) *BotAdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BotAdminService{users: users, clubs: clubs, club: club, logger: logger, tracer: tracer, db: db}
}

// resolveUser looks the user up by id, then email, then Telegram id. Only the
// first identifier present is used.
func (s *BotAdminService) resolveUser(ctx context.Context, db bun.IDB, ref UserRef) (*userdb.User, error) {
	var (
		user *userdb.User
		err  error
	)
	switch {
	case hasInt(ref.UserID):
		user, err = s.users.GetByID(ctx, db, *ref.UserID)
	case hasString(ref.Email):
		user, err = s.users.GetByEmail(ctx, db, *ref.Email)
	case hasString(ref.TgID):
		user, err = s.users.GetByTgID(ctx, db, *ref.TgID)
	default:
		return nil, ErrUserNotFound
	}
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *BotAdminService) AssignRole(ctx context.Context, req AssignRoleRequest) (*RoleResult, error) {
	ctx, span := s.tracer.Start(ctx, "BotAdminService.AssignRole", trace.WithAttributes(attribute.String("role", string(req.Role))))
	defer span.End()

	if req.UserRef.IsEmpty() {
		return nil, ErrUserRefRequired
	}
	if !req.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	var out *RoleResult
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		user, err := s.resolveUser(ctx, tx, req.UserRef)
		if err != nil {
			return err
		}
		if err := s.users.UpdateRole(ctx, tx, user.ID, req.Role); err != nil {
			return err
		}
		out = &RoleResult{ID: user.ID, Role: req.Role}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Role assigned by bot", slog.Int64("user_id", out.ID), slog.String("role", string(out.Role)))
	return out, nil
}

func (s *BotAdminService) AssignClubLeader(ctx context.Context, req AssignClubLeaderRequest) (*clubservice.LeaderAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "BotAdminService.AssignClubLeader")
	defer span.End()

	if req.UserRef.IsEmpty() {
		return nil, ErrUserRefRequired
	}

	var club *clubdb.Club
	var err error
	switch {
	case hasInt(req.ClubID):
		club, err = s.clubs.GetByID(ctx, nil, *req.ClubID)
	case hasString(req.ClubName):
		club, err = s.clubs.FindByNameFold(ctx, nil, *req.ClubName)
	default:
		return nil, ErrClubRefRequired
	}
	if err != nil {
		if errors.Is(err, clubdb.ErrNotFound) {
			return nil, ErrClubNotFound
		}
		span.RecordError(err)
		return nil, err
	}

	user, err := s.resolveUser(ctx, nil, req.UserRef)
	if err != nil {
		return nil, err
	}
	return s.club.AssignLeader(ctx, club.ID, user.ID)
}

func (s *BotAdminService) CreateClub(ctx context.Context, req CreateClubRequest) (*clubservice.ClubView, error) {
	return s.club.CreateClub(ctx, clubservice.CreateClubRequest{Name: req.Name, OwnerUserID: req.OwnerUserID})
}

// UpsertUser creates a student for an unknown tg_id or refreshes the profile
// of an existing one.
func (s *BotAdminService) UpsertUser(ctx context.Context, req UpsertUserRequest) (*UpsertUserResult, error) {
	ctx, span := s.tracer.Start(ctx, "BotAdminService.UpsertUser", trace.WithAttributes(attribute.String("tg_id", req.TgID)))
	defer span.End()

	if req.TgID == "" {
		return nil, apperr.Invalid("tg_id required")
	}

	var user *userdb.User
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		existing, err := s.users.GetByTgID(ctx, tx, req.TgID)
		switch {
		case errors.Is(err, userdb.ErrNotFound):
			user = &userdb.User{
				TgID:     req.TgID,
				Username: req.Username,
				FullName: req.FullName,
				Role:     authdomain.RoleStudent,
			}
			if req.MarkIntro != nil {
				user.BotIntroSeen = *req.MarkIntro
			}
			return s.users.Create(ctx, tx, user)
		case err != nil:
			return err
		}

		user = existing
		user.Username = req.Username
		user.FullName = req.FullName
		if req.MarkIntro != nil {
			user.BotIntroSeen = *req.MarkIntro
		}
		return s.users.Update(ctx, tx, user)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &UpsertUserResult{ID: user.ID, TgID: user.TgID, Email: user.Email, BotIntroSeen: user.BotIntroSeen}, nil
}

// SetEmail links an email to a user. An unknown tg_id creates a student.
func (s *BotAdminService) SetEmail(ctx context.Context, req SetEmailRequest) (*SetEmailResult, error) {
	ctx, span := s.tracer.Start(ctx, "BotAdminService.SetEmail")
	defer span.End()

	if !hasInt(req.UserID) && !hasString(req.TgID) {
		return nil, ErrSetEmailTarget
	}
	if req.Email == "" {
		return nil, apperr.Invalid("email required")
	}

	var user *userdb.User
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		var err error
		if hasInt(req.UserID) {
			user, err = s.users.GetByID(ctx, tx, *req.UserID)
		} else {
			user, err = s.users.GetByTgID(ctx, tx, *req.TgID)
		}
		switch {
		case errors.Is(err, userdb.ErrNotFound) && !hasInt(req.UserID):
			user = &userdb.User{TgID: *req.TgID, Role: authdomain.RoleStudent}
			if err := s.users.Create(ctx, tx, user); err != nil {
				return err
			}
		case errors.Is(err, userdb.ErrNotFound):
			return ErrUserNotFound
		case err != nil:
			return err
		}

		owner, err := s.users.GetByEmail(ctx, tx, req.Email)
		switch {
		case err == nil && owner.ID != user.ID:
			return ErrEmailAlreadyInUse
		case err != nil && !errors.Is(err, userdb.ErrNotFound):
			return err
		}

		email := req.Email
		user.Email = &email
		if err := s.users.Update(ctx, tx, user); err != nil {
			if dbtx.IsUniqueViolation(err) {
				return apperr.Wrap(ErrEmailAlreadyInUse, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Email linked by bot", slog.Int64("user_id", user.ID))
	return &SetEmailResult{ID: user.ID, Email: user.Email}, nil
}

var _ Service = (*BotAdminService)(nil)
