package room

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/filter"
	"github.com/Domenick1991/hotelbooking/internal/logging"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/uniqueness"
	"github.com/Domenick1991/hotelbooking/internal/validation"
)

type RoomUseCase interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	CreateRoom(ctx context.Context, input domain.Room) (*domain.Room, error)
	UpdateRoom(ctx context.Context, id int64, input domain.Room) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
	RoomsByType(ctx context.Context, roomType string) ([]domain.Room, error)
	RoomsByStatus(ctx context.Context, status string) ([]domain.Room, error)
	AvailableRooms(ctx context.Context) ([]domain.Room, error)
	SearchRooms(ctx context.Context, criteria filter.RoomCriteria) ([]domain.Room, error)
}

// Cache holds the full room list. A nil slice from GetRooms means a miss.
type Cache interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
	InvalidateRooms(ctx context.Context) error
}

type RoomService struct {
	rooms  repository.RoomRepository
	cache  Cache
	logger *slog.Logger
}

type RoomServiceOption func(*RoomService)

func WithCache(cache Cache) RoomServiceOption {
	return func(s *RoomService) {
		s.cache = cache
	}
}

func WithLogger(logger *slog.Logger) RoomServiceOption {
	return func(s *RoomService) {
		s.logger = logger
	}
}

func NewRoomService(rooms repository.RoomRepository, opts ...RoomServiceOption) *RoomService {
	service := &RoomService{rooms: rooms}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *RoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.allRooms(ctx)
}

func (s *RoomService) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *RoomService) CreateRoom(ctx context.Context, input domain.Room) (*domain.Room, error) {
	logger := s.log(ctx, "create", "room_number", input.RoomNumber)

	if err := validation.ValidateRoom(input); err != nil {
		logger.Warn("room rejected", "error", err)
		return nil, err
	}
	if err := uniqueness.EnsureUniqueRoomNumber(ctx, s.rooms, input.RoomNumber, nil); err != nil {
		logger.Warn("room number check failed", "error", err)
		return nil, err
	}

	room := input
	room.ID = 0
	if err := s.rooms.Save(ctx, &room); err != nil {
		logger.Error("failed to save room", "error", err)
		return nil, err
	}
	s.invalidate(ctx, logger)

	logger.Info("room created", "room_id", room.ID)
	return &room, nil
}

// UpdateRoom replaces every field of the stored room with input.
func (s *RoomService) UpdateRoom(ctx context.Context, id int64, input domain.Room) (*domain.Room, error) {
	logger := s.log(ctx, "update", "room_id", id)

	current, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateRoom(input); err != nil {
		logger.Warn("room rejected", "error", err)
		return nil, err
	}
	if err := uniqueness.EnsureUniqueRoomNumber(ctx, s.rooms, input.RoomNumber, &current.RoomNumber); err != nil {
		logger.Warn("room number check failed", "error", err)
		return nil, err
	}

	room := input
	room.ID = id
	if err := s.rooms.Save(ctx, &room); err != nil {
		logger.Error("failed to save room", "error", err)
		return nil, err
	}
	s.invalidate(ctx, logger)

	logger.Info("room updated")
	return &room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id int64) error {
	logger := s.log(ctx, "delete", "room_id", id)

	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, logger)

	logger.Info("room deleted")
	return nil
}

func (s *RoomService) RoomsByType(ctx context.Context, roomType string) ([]domain.Room, error) {
	t, ok := domain.ParseRoomType(roomType)
	if !ok {
		return nil, domain.ErrInvalidRoomType
	}
	return s.rooms.FindByType(ctx, t)
}

func (s *RoomService) RoomsByStatus(ctx context.Context, status string) ([]domain.Room, error) {
	st, ok := domain.ParseRoomStatus(status)
	if !ok {
		return nil, domain.ErrInvalidRoomStatus
	}
	return s.rooms.FindByStatus(ctx, st)
}

func (s *RoomService) AvailableRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.FindByStatus(ctx, domain.RoomStatusAvailable)
}

// SearchRooms filters the full room list; absent criteria fields do not constrain.
func (s *RoomService) SearchRooms(ctx context.Context, criteria filter.RoomCriteria) ([]domain.Room, error) {
	rooms, err := s.allRooms(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(rooms, criteria.Predicate()), nil
}

func (s *RoomService) allRooms(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		rooms, err := s.cache.GetRooms(ctx)
		if err != nil {
			s.log(ctx, "list").Warn("room cache read failed", "error", err)
		} else if rooms != nil {
			return rooms, nil
		}
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetRooms(ctx, rooms); err != nil {
			s.log(ctx, "list").Warn("room cache write failed", "error", err)
		}
	}
	return rooms, nil
}

func (s *RoomService) invalidate(ctx context.Context, logger *slog.Logger) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateRooms(ctx); err != nil {
		logger.Warn("room cache invalidation failed", "error", err)
	}
}

func (s *RoomService) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return logging.ServiceLogger(ctx, s.logger, "room", operation, attrs...)
}

var _ RoomUseCase = (*RoomService)(nil)
