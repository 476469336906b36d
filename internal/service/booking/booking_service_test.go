package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) FindByBookingNumber(ctx context.Context, number string) (*domain.Booking, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByCheckInBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByCheckOutBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockRoomRepository only backs Exists; the booking service needs nothing else.
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) { return nil, nil }

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return nil, domain.ErrNotFound
}

func (m *MockRoomRepository) Save(ctx context.Context, room *domain.Room) error { return nil }

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error { return nil }

func (m *MockRoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) FindByRoomNumber(ctx context.Context, number string) (*domain.Room, error) {
	return nil, domain.ErrNotFound
}

func (m *MockRoomRepository) FindByType(ctx context.Context, roomType domain.RoomType) ([]domain.Room, error) {
	return nil, nil
}

func (m *MockRoomRepository) FindByStatus(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error) {
	return nil, nil
}

func (m *MockRoomRepository) FindByPriceBetween(ctx context.Context, min, max float64) ([]domain.Room, error) {
	return nil, nil
}

func (m *MockRoomRepository) FindByCapacityAtLeast(ctx context.Context, capacity int) ([]domain.Room, error) {
	return nil, nil
}

func (m *MockRoomRepository) FindByFloor(ctx context.Context, floor int) ([]domain.Room, error) {
	return nil, nil
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) { return nil, nil }

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error { return nil }

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error { return nil }

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	return nil, nil
}

// MockProducer - реализует интерфейс Publisher напрямую
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 5, 20, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func validBooking() domain.Booking {
	return domain.Booking{
		BookingNumber: "ABC-1234",
		CheckInDate:   day(2026, 5, 20),
		CheckOutDate:  day(2026, 5, 23),
		RoomID:        1,
		UserID:        2,
	}
}

type fixture struct {
	bookings *MockBookingRepository
	rooms    *MockRoomRepository
	users    *MockUserRepository
	producer *MockProducer
	service  *BookingService
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &MockBookingRepository{},
		rooms:    &MockRoomRepository{},
		users:    &MockUserRepository{},
		producer: &MockProducer{},
	}
	f.service = NewBookingService(f.bookings, f.rooms, f.users,
		WithEvents(f.producer, "hotel-events", "notifications"),
		WithClock(func() time.Time { return fixedNow }),
	)
	return f
}

// ============================ Тесты для BookingService ============================

// Тест 1: Создание бронирования - успешный сценарий
func TestBookingService_CreateBooking_Success(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.rooms.On("Exists", ctx, int64(1)).Return(true, nil).Once()
	f.users.On("Exists", ctx, int64(2)).Return(true, nil).Once()
	f.bookings.On("Save", ctx, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Booking).ID = 40 }).
		Return(nil).Once()
	f.users.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Email: "guest@example.com"}, nil).Once()
	isCreated := mock.MatchedBy(func(e kafka.Event) bool {
		return e.Type == kafka.EventBookingCreated && e.BookingID == 40 && e.Email == "guest@example.com"
	})
	f.producer.On("Publish", ctx, "hotel-events", "booking-40", isCreated).Return(nil).Once()
	f.producer.On("Publish", ctx, "notifications", "booking-40", isCreated).Return(nil).Once()

	booking, err := f.service.CreateBooking(ctx, validBooking())

	require.NoError(t, err)
	assert.Equal(t, int64(40), booking.ID)
	f.bookings.AssertExpectations(t)
	f.producer.AssertExpectations(t)
}

// Тест 2: Создание бронирования - дата заезда в прошлом
func TestBookingService_CreateBooking_CheckInPast(t *testing.T) {
	f := newFixture()

	input := validBooking()
	input.CheckInDate = day(2026, 5, 19)

	booking, err := f.service.CreateBooking(context.Background(), input)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrCheckInPast)
	f.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// Тест 3: Выезд раньше заезда допускается
func TestBookingService_CreateBooking_CheckOutBeforeCheckInAccepted(t *testing.T) {
	f := newFixture()
	f.service.producer = nil
	ctx := context.Background()

	input := validBooking()
	input.CheckInDate = day(2026, 6, 10)
	input.CheckOutDate = day(2026, 6, 1)

	f.rooms.On("Exists", ctx, int64(1)).Return(true, nil).Once()
	f.users.On("Exists", ctx, int64(2)).Return(true, nil).Once()
	f.bookings.On("Save", ctx, mock.Anything).Return(nil).Once()

	_, err := f.service.CreateBooking(ctx, input)

	assert.NoError(t, err)
}

func TestBookingService_CreateBooking_UnknownRoom(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.rooms.On("Exists", ctx, int64(1)).Return(false, nil).Once()

	_, err := f.service.CreateBooking(ctx, validBooking())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.rooms.On("Exists", ctx, int64(1)).Return(true, nil).Once()
	f.users.On("Exists", ctx, int64(2)).Return(true, nil).Once()
	f.bookings.On("Save", ctx, mock.Anything).Return(nil).Once()
	f.users.On("GetByID", ctx, int64(2)).Return(nil, domain.ErrNotFound).Once()
	f.producer.On("Publish", ctx, "hotel-events", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	booking, err := f.service.CreateBooking(ctx, validBooking())

	require.NoError(t, err)
	assert.Equal(t, "ABC-1234", booking.BookingNumber)
}

func TestBookingService_UpdateBooking_PatchByPresence(t *testing.T) {
	f := newFixture()
	f.service.producer = nil
	ctx := context.Background()

	stored := validBooking()
	stored.ID = 8
	f.bookings.On("GetByID", ctx, int64(8)).Return(&stored, nil).Once()
	f.bookings.On("Save", ctx, &stored).Return(nil).Once()

	booking, err := f.service.UpdateBooking(ctx, 8, domain.BookingPatch{
		CheckOutDate: ptr(day(2026, 5, 25)),
	})

	require.NoError(t, err)
	assert.Equal(t, "ABC-1234", booking.BookingNumber)
	assert.Equal(t, day(2026, 5, 20), booking.CheckInDate)
	assert.Equal(t, day(2026, 5, 25), booking.CheckOutDate)
	f.rooms.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestBookingService_UpdateBooking_InvalidNumber(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	stored := validBooking()
	f.bookings.On("GetByID", ctx, int64(8)).Return(&stored, nil).Once()

	_, err := f.service.UpdateBooking(ctx, 8, domain.BookingPatch{BookingNumber: ptr("AB-1234")})

	assert.ErrorIs(t, err, domain.ErrInvalidBookingNumber)
	f.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBookingService_UpdateBooking_NewUserMustExist(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	stored := validBooking()
	f.bookings.On("GetByID", ctx, int64(8)).Return(&stored, nil).Once()
	f.users.On("Exists", ctx, int64(99)).Return(false, nil).Once()

	_, err := f.service.UpdateBooking(ctx, 8, domain.BookingPatch{UserID: ptr(int64(99))})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_DeleteBooking_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.bookings.On("GetByID", ctx, int64(3)).Return(nil, domain.ErrNotFound).Once()

	err := f.service.DeleteBooking(ctx, 3)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBookingService_BookingsByCheckIn_RangeGuard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.BookingsByCheckIn(ctx, day(2026, 6, 2), day(2026, 6, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	f.bookings.On("FindByCheckInBetween", ctx, day(2026, 6, 1), day(2026, 6, 1)).Return([]domain.Booking{{ID: 1}}, nil).Once()
	bookings, err := f.service.BookingsByCheckIn(ctx, day(2026, 6, 1), day(2026, 6, 1))
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
