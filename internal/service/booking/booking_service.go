package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/filter"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logging"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/validation"
)

type BookingUseCase interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	CreateBooking(ctx context.Context, input domain.Booking) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
	BookingByNumber(ctx context.Context, number string) (*domain.Booking, error)
	BookingsByCheckIn(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
	BookingsByCheckOut(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
	BookingsByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	BookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type BookingService struct {
	bookings           repository.BookingRepository
	rooms              repository.RoomRepository
	users              repository.UserRepository
	producer           kafka.Publisher
	eventsTopic        string
	notificationsTopic string
	now                func() time.Time
	logger             *slog.Logger
}

type BookingServiceOption func(*BookingService)

func WithEvents(producer kafka.Publisher, eventsTopic, notificationsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
		s.notificationsTopic = notificationsTopic
	}
}

// WithClock replaces time.Now; "today" for date rules is derived from it.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	rooms repository.RoomRepository,
	users repository.UserRepository,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		rooms:    rooms,
		users:    users,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) CreateBooking(ctx context.Context, input domain.Booking) (*domain.Booking, error) {
	logger := s.log(ctx, "create", "booking_number", input.BookingNumber)

	if err := validation.ValidateBooking(input, s.now()); err != nil {
		logger.Warn("booking rejected", "error", err)
		return nil, err
	}
	if err := s.ensureReferences(ctx, input.RoomID, input.UserID); err != nil {
		logger.Warn("booking references missing", "error", err)
		return nil, err
	}

	booking := input
	booking.ID = 0
	booking.CheckInDate = domain.Day(input.CheckInDate)
	booking.CheckOutDate = domain.Day(input.CheckOutDate)
	if err := s.bookings.Save(ctx, &booking); err != nil {
		logger.Error("failed to save booking", "error", err)
		return nil, err
	}

	if err := s.publish(ctx, kafka.EventBookingCreated, &booking); err != nil {
		logger.Warn("failed to publish booking_created event", "booking_id", booking.ID, "error", err)
	}
	logger.Info("booking created", "booking_id", booking.ID)
	return &booking, nil
}

// UpdateBooking applies the present fields of patch to the stored booking.
func (s *BookingService) UpdateBooking(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	logger := s.log(ctx, "update", "booking_id", id)

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateBookingPatch(patch, s.now()); err != nil {
		logger.Warn("update rejected", "error", err)
		return nil, err
	}

	var roomID, userID int64
	if patch.RoomID != nil && *patch.RoomID != booking.RoomID {
		roomID = *patch.RoomID
	}
	if patch.UserID != nil && *patch.UserID != booking.UserID {
		userID = *patch.UserID
	}
	if err := s.ensureReferences(ctx, roomID, userID); err != nil {
		logger.Warn("booking references missing", "error", err)
		return nil, err
	}

	if patch.BookingNumber != nil {
		booking.BookingNumber = *patch.BookingNumber
	}
	if patch.CheckInDate != nil {
		booking.CheckInDate = domain.Day(*patch.CheckInDate)
	}
	if patch.CheckOutDate != nil {
		booking.CheckOutDate = domain.Day(*patch.CheckOutDate)
	}
	if patch.RoomID != nil {
		booking.RoomID = *patch.RoomID
	}
	if patch.UserID != nil {
		booking.UserID = *patch.UserID
	}

	if err := s.bookings.Save(ctx, booking); err != nil {
		logger.Error("failed to save booking", "error", err)
		return nil, err
	}

	if err := s.publish(ctx, kafka.EventBookingUpdated, booking); err != nil {
		logger.Warn("failed to publish booking_updated event", "error", err)
	}
	logger.Info("booking updated")
	return booking, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	logger := s.log(ctx, "delete", "booking_id", id)

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.publish(ctx, kafka.EventBookingDeleted, booking); err != nil {
		logger.Warn("failed to publish booking_deleted event", "error", err)
	}
	logger.Info("booking deleted")
	return nil
}

func (s *BookingService) BookingByNumber(ctx context.Context, number string) (*domain.Booking, error) {
	return s.bookings.FindByBookingNumber(ctx, number)
}

func (s *BookingService) BookingsByCheckIn(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	if err := filter.CheckDateRange(start, end); err != nil {
		return nil, err
	}
	return s.bookings.FindByCheckInBetween(ctx, start, end)
}

func (s *BookingService) BookingsByCheckOut(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	if err := filter.CheckDateRange(start, end); err != nil {
		return nil, err
	}
	return s.bookings.FindByCheckOutBetween(ctx, start, end)
}

func (s *BookingService) BookingsByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	return s.bookings.FindByRoom(ctx, roomID)
}

func (s *BookingService) BookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.FindByUser(ctx, userID)
}

// ensureReferences checks that the room and user exist. A zero id is skipped.
func (s *BookingService) ensureReferences(ctx context.Context, roomID, userID int64) error {
	if roomID != 0 {
		ok, err := s.rooms.Exists(ctx, roomID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("room %d: %w", roomID, domain.ErrNotFound)
		}
	}
	if userID != 0 {
		ok, err := s.users.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.NewEvent(eventType, s.now())
	event.BookingID = booking.ID
	event.BookingNumber = booking.BookingNumber
	event.RoomID = booking.RoomID
	event.UserID = booking.UserID
	checkIn, checkOut := booking.CheckInDate, booking.CheckOutDate
	event.CheckInDate = &checkIn
	event.CheckOutDate = &checkOut
	// Best effort: an unknown user leaves Email empty.
	if user, err := s.users.GetByID(ctx, booking.UserID); err == nil {
		event.Email = user.Email
	}
	return kafka.Emit(ctx, s.producer, s.eventsTopic, s.notificationsTopic, event)
}

func (s *BookingService) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return logging.ServiceLogger(ctx, s.logger, "booking", operation, attrs...)
}

var _ BookingUseCase = (*BookingService)(nil)
