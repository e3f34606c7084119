package authservice

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/roomly/app/modules/auth/infrastructure/jwt"
	authtelegram "github.com/Black-And-White-Club/roomly/app/modules/auth/infrastructure/telegram"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/shared/dbtx"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTokenTTL is the session lifetime when none is configured.
const DefaultTokenTTL = 24 * time.Hour

// Config holds the configuration for the auth service.
type Config struct {
	TokenTTL time.Duration
}

// service implements the Service interface.
type service struct {
	repo        userdb.Repository
	jwtProvider authjwt.Provider
	verifier    InitDataVerifier
	config      Config
	logger      *slog.Logger
	tracer      trace.Tracer
	db          *bun.DB
}

// NewService creates a new auth service.
func NewService(
	jwtProvider authjwt.Provider,
	verifier InitDataVerifier,
	repo userdb.Repository,
	config Config,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
) Service {
	if config.TokenTTL <= 0 {
		config.TokenTTL = DefaultTokenTTL
	}
	return &service{
		repo:        repo,
		jwtProvider: jwtProvider,
		verifier:    verifier,
		config:      config,
		logger:      logger,
		tracer:      tracer,
		db:          db,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// LoginWithTelegram verifies the init data and upserts the user by tg_id.
// The upsert is kept even when the login is refused for a missing email.
func (s *service) LoginWithTelegram(ctx context.Context, initData string) (*LoginResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.LoginWithTelegram")
	defer span.End()

	tgUser, err := s.verifier.Verify(initData)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, authtelegram.ErrNotConfigured) {
			return nil, ErrBotTokenNotConfigured
		}
		s.logger.WarnContext(ctx, "Rejected Telegram init data", slog.Any("error", err))
		return nil, ErrInvalidInitData
	}

	tgID := strconv.FormatInt(tgUser.ID, 10)
	span.SetAttributes(attribute.String("tg_id", tgID))

	var user *userdb.User
	err = dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		existing, err := s.repo.GetByTgID(ctx, tx, tgID)
		switch {
		case errors.Is(err, userdb.ErrNotFound):
			user = &userdb.User{
				TgID:     tgID,
				Username: optional(tgUser.Username),
				FullName: optional(tgUser.FullName()),
				Role:     authdomain.RoleStudent,
			}
			if err := s.repo.Create(ctx, tx, user); err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "User created from Telegram login", slog.String("tg_id", tgID))
			return nil
		case err != nil:
			return err
		}
		existing.Username = optional(tgUser.Username)
		existing.FullName = optional(tgUser.FullName())
		user = existing
		return s.repo.Update(ctx, tx, user)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if !user.HasEmail() {
		return nil, ErrEmailRequired
	}

	token, err := s.jwtProvider.GenerateToken(user.ID, user.Role, s.config.TokenTTL)
	if err != nil {
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "Failed to generate session token",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "User logged in", slog.Int64("user_id", user.ID))
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: UserOut{
			ID:       user.ID,
			TgID:     user.TgID,
			Email:    user.Email,
			Username: user.Username,
			FullName: user.FullName,
			Role:     user.Role.String(),
		},
	}, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (authdomain.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Authenticate")
	defer span.End()

	if token == "" {
		return authdomain.Principal{}, ErrMissingToken
	}

	claims, err := s.jwtProvider.ValidateToken(token)
	if err != nil {
		s.logger.DebugContext(ctx, "Token validation failed", slog.Any("error", err))
		return authdomain.Principal{}, ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, nil, claims.UserID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return authdomain.Principal{}, ErrUserNotFound
		}
		span.RecordError(err)
		return authdomain.Principal{}, err
	}
	return authdomain.Principal{UserID: user.ID, Role: user.Role}, nil
}
