package roomservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	roomdb "github.com/Black-And-White-Club/roomly/app/modules/room/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
	"github.com/Black-And-White-Club/roomly/app/shared/dbtx"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrRoomNotFound   = apperr.NotFound("room not found")
	ErrRoomCodeExists = apperr.Conflict("room code exists")
)

// Service defines the room operations.
type Service interface {
	ListAvailable(ctx context.Context) ([]roomdb.Room, error)
	ListAll(ctx context.Context) ([]roomdb.Room, error)
	Create(ctx context.Context, req CreateRoomRequest) (*roomdb.Room, error)
	Update(ctx context.Context, code string, req UpdateRoomRequest) (*roomdb.Room, error)
	// Delete detaches the room from its events and removes it.
	Delete(ctx context.Context, code string) error
}

// CreateRoomRequest is the body of a room creation.
type CreateRoomRequest struct {
	Code     string  `json:"code" validate:"required"`
	Building *string `json:"building"`
	Floor    *string `json:"floor"`
	RoomType *string `json:"room_type"`
	Capacity *int    `json:"capacity"`
	IsActive *bool   `json:"is_active"`
}

// UpdateRoomRequest is a partial update; nil fields are left unchanged.
type UpdateRoomRequest struct {
	Building *string `json:"building"`
	Floor    *string `json:"floor"`
	RoomType *string `json:"room_type"`
	Capacity *int    `json:"capacity"`
	IsActive *bool   `json:"is_active"`
}

// RoomService implements the Service interface.
type RoomService struct {
	repo   roomdb.Repository
	events calendardb.Repository
	logger *slog.Logger
	tracer trace.Tracer
	db     *bun.DB
}

// NewRoomService creates a new RoomService.
func NewRoomService(
	repo roomdb.Repository,
	events calendardb.Repository,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
) *RoomService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoomService{repo: repo, events: events, logger: logger, tracer: tracer, db: db}
}

func (s *RoomService) ListAvailable(ctx context.Context) ([]roomdb.Room, error) {
	ctx, span := s.tracer.Start(ctx, "RoomService.ListAvailable")
	defer span.End()
	return s.repo.List(ctx, nil, true)
}

func (s *RoomService) ListAll(ctx context.Context) ([]roomdb.Room, error) {
	ctx, span := s.tracer.Start(ctx, "RoomService.ListAll")
	defer span.End()
	return s.repo.List(ctx, nil, false)
}

func (s *RoomService) Create(ctx context.Context, req CreateRoomRequest) (*roomdb.Room, error) {
	ctx, span := s.tracer.Start(ctx, "RoomService.Create", trace.WithAttributes(attribute.String("code", req.Code)))
	defer span.End()

	if strings.TrimSpace(req.Code) == "" {
		return nil, apperr.Invalid("code required")
	}

	room := &roomdb.Room{
		Code:     req.Code,
		Building: req.Building,
		Floor:    req.Floor,
		RoomType: req.RoomType,
		Capacity: req.Capacity,
		IsActive: true,
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		if _, err := s.repo.GetByCode(ctx, tx, req.Code); err == nil {
			return ErrRoomCodeExists
		} else if !errors.Is(err, roomdb.ErrNotFound) {
			return err
		}
		if err := s.repo.Create(ctx, tx, room); err != nil {
			if dbtx.IsUniqueViolation(err) {
				return apperr.Wrap(ErrRoomCodeExists, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Room created", slog.String("code", room.Code), slog.Int64("room_id", room.ID))
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, code string, req UpdateRoomRequest) (*roomdb.Room, error) {
	ctx, span := s.tracer.Start(ctx, "RoomService.Update", trace.WithAttributes(attribute.String("code", code)))
	defer span.End()

	var room *roomdb.Room
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		var err error
		room, err = s.repo.GetByCode(ctx, tx, code)
		if err != nil {
			if errors.Is(err, roomdb.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if req.Building != nil {
			room.Building = req.Building
		}
		if req.Floor != nil {
			room.Floor = req.Floor
		}
		if req.RoomType != nil {
			room.RoomType = req.RoomType
		}
		if req.Capacity != nil {
			room.Capacity = req.Capacity
		}
		if req.IsActive != nil {
			room.IsActive = *req.IsActive
		}
		return s.repo.Update(ctx, tx, room)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, code string) error {
	ctx, span := s.tracer.Start(ctx, "RoomService.Delete", trace.WithAttributes(attribute.String("code", code)))
	defer span.End()

	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		room, err := s.repo.GetByCode(ctx, tx, code)
		if err != nil {
			if errors.Is(err, roomdb.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if err := s.events.DetachRoom(ctx, tx, room.ID); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, room.ID)
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.logger.InfoContext(ctx, "Room deleted", slog.String("code", code))
	return nil
}

var _ Service = (*RoomService)(nil)
