package userservice

import (
	"context"
	"errors"
	"log/slog"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/shared/dbtx"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UserServiceImpl implements the Service interface.
type UserServiceImpl struct {
	repo   userdb.Repository
	events calendardb.Repository
	clubs  clubdb.Repository
	logger *slog.Logger
	tracer trace.Tracer
	db     *bun.DB
}

// NewUserService creates a new UserService.
func NewUserService(
	repo userdb.Repository,
	events calendardb.Repository,
	clubs clubdb.Repository,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		repo:   repo,
		events: events,
		clubs:  clubs,
		logger: logger,
		tracer: tracer,
		db:     db,
	}
}

func (s *UserServiceImpl) notFound(err error) error {
	if errors.Is(err, userdb.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// SetRole updates a user's role.
func (s *UserServiceImpl) SetRole(ctx context.Context, id int64, role authdomain.Role) (*RoleResult, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.SetRole", trace.WithAttributes(
		attribute.Int64("user_id", id),
		attribute.String("role", string(role)),
	))
	defer span.End()

	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	user, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		span.RecordError(err)
		return nil, s.notFound(err)
	}
	return s.applyRole(ctx, user, role)
}

func (s *UserServiceImpl) SetRoleByEmail(ctx context.Context, email string, role authdomain.Role) (*RoleResult, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.SetRoleByEmail", trace.WithAttributes(
		attribute.String("role", string(role)),
	))
	defer span.End()

	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	user, err := s.repo.GetByEmail(ctx, nil, email)
	if err != nil {
		span.RecordError(err)
		return nil, s.notFound(err)
	}
	return s.applyRole(ctx, user, role)
}

func (s *UserServiceImpl) applyRole(ctx context.Context, user *userdb.User, role authdomain.Role) (*RoleResult, error) {
	if err := s.repo.UpdateRole(ctx, nil, user.ID, role); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update user role",
			slog.Int64("user_id", user.ID),
			slog.String("new_role", string(role)),
			slog.Any("error", err),
		)
		return nil, s.notFound(err)
	}

	s.logger.InfoContext(ctx, "User role updated successfully",
		slog.Int64("user_id", user.ID),
		slog.String("old_role", string(user.Role)),
		slog.String("new_role", string(role)),
	)
	return &RoleResult{ID: user.ID, Role: role}, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]UserSummary, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.ListUsers")
	defer span.End()

	users, err := s.repo.List(ctx, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role})
	}
	return out, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "UserService.DeleteUser", trace.WithAttributes(attribute.Int64("user_id", id)))
	defer span.End()

	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		if _, err := s.repo.GetByID(ctx, tx, id); err != nil {
			return s.notFound(err)
		}
		if err := s.events.ClearApprover(ctx, tx, id); err != nil {
			return err
		}
		created, err := s.events.IDsByCreator(ctx, tx, id)
		if err != nil {
			return err
		}
		if len(created) > 0 {
			if err := s.events.DeleteWithParticipants(ctx, tx, created); err != nil {
				return err
			}
		}
		if err := s.events.DeleteParticipationsByUser(ctx, tx, id); err != nil {
			return err
		}
		if err := s.clubs.DeleteMembersByUser(ctx, tx, id); err != nil {
			return err
		}
		if err := s.clubs.ClearOwner(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.logger.InfoContext(ctx, "User deleted", slog.Int64("user_id", id))
	return nil
}

var _ Service = (*UserServiceImpl)(nil)
