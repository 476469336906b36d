package room

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock структуры

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Save(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) FindByRoomNumber(ctx context.Context, number string) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByType(ctx context.Context, roomType domain.RoomType) ([]domain.Room, error) {
	args := m.Called(ctx, roomType)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByStatus(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByPriceBetween(ctx context.Context, min, max float64) ([]domain.Room, error) {
	args := m.Called(ctx, min, max)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByCapacityAtLeast(ctx context.Context, capacity int) ([]domain.Room, error) {
	args := m.Called(ctx, capacity)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByFloor(ctx context.Context, floor int) ([]domain.Room, error) {
	args := m.Called(ctx, floor)
	return args.Get(0).([]domain.Room), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockCache) SetRooms(ctx context.Context, rooms []domain.Room) error {
	args := m.Called(ctx, rooms)
	return args.Error(0)
}

func (m *MockCache) InvalidateRooms(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func validRoom() domain.Room {
	return domain.Room{
		RoomNumber:     "A101",
		Type:           domain.RoomTypeDouble,
		Capacity:       2,
		PricePerNight:  250,
		Status:         domain.RoomStatusAvailable,
		SmokingAllowed: domain.SmokingNotAllowed,
		FloorNumber:    1,
	}
}

// ============================ Тесты для RoomService ============================

func TestRoomService_CreateRoom_Success(t *testing.T) {
	repo := &MockRoomRepository{}
	cache := &MockCache{}
	service := NewRoomService(repo, WithCache(cache))
	ctx := context.Background()

	repo.On("FindByRoomNumber", ctx, "A101").Return(nil, domain.ErrNotFound).Once()
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Room")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Room).ID = 7 }).
		Return(nil).Once()
	cache.On("InvalidateRooms", ctx).Return(nil).Once()

	room, err := service.CreateRoom(ctx, validRoom())

	require.NoError(t, err)
	assert.Equal(t, int64(7), room.ID)
	assert.Equal(t, "A101", room.RoomNumber)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestRoomService_CreateRoom_ValidationStopsBeforeStorage(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo)

	input := validRoom()
	input.RoomNumber = "a101"

	room, err := service.CreateRoom(context.Background(), input)

	assert.Nil(t, room)
	assert.ErrorIs(t, err, domain.ErrInvalidRoomNumber)
	repo.AssertNotCalled(t, "FindByRoomNumber", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRoomService_CreateRoom_DuplicateNumber(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo)
	ctx := context.Background()

	repo.On("FindByRoomNumber", ctx, "A101").Return(&domain.Room{ID: 1, RoomNumber: "A101"}, nil).Once()

	_, err := service.CreateRoom(ctx, validRoom())

	assert.ErrorIs(t, err, domain.ErrDuplicateRoomNumber)
	assert.EqualError(t, err, "Room number already exists")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRoomService_UpdateRoom_SameNumberSkipsUniqueness(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo)
	ctx := context.Background()

	stored := validRoom()
	stored.ID = 3
	repo.On("GetByID", ctx, int64(3)).Return(&stored, nil).Once()
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Room")).Return(nil).Once()

	input := validRoom()
	input.PricePerNight = 300
	room, err := service.UpdateRoom(ctx, 3, input)

	require.NoError(t, err)
	assert.Equal(t, int64(3), room.ID)
	assert.Equal(t, 300.0, room.PricePerNight)
	repo.AssertNotCalled(t, "FindByRoomNumber", mock.Anything, mock.Anything)
}

func TestRoomService_UpdateRoom_ChangedNumberTaken(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo)
	ctx := context.Background()

	stored := validRoom()
	stored.ID = 3
	repo.On("GetByID", ctx, int64(3)).Return(&stored, nil).Once()
	repo.On("FindByRoomNumber", ctx, "B202").Return(&domain.Room{ID: 9, RoomNumber: "B202"}, nil).Once()

	input := validRoom()
	input.RoomNumber = "B202"
	_, err := service.UpdateRoom(ctx, 3, input)

	assert.ErrorIs(t, err, domain.ErrDuplicateRoomNumber)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRoomService_UpdateRoom_NotFound(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound).Once()

	input := validRoom()
	input.Capacity = 0
	_, err := service.UpdateRoom(ctx, 99, input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoomService_DeleteRoom(t *testing.T) {
	repo := &MockRoomRepository{}
	cache := &MockCache{}
	service := NewRoomService(repo, WithCache(cache))
	ctx := context.Background()

	repo.On("Delete", ctx, int64(4)).Return(nil).Once()
	repo.On("Delete", ctx, int64(5)).Return(domain.ErrNotFound).Once()
	cache.On("InvalidateRooms", ctx).Return(errors.New("redis down")).Once()

	assert.NoError(t, service.DeleteRoom(ctx, 4))
	assert.ErrorIs(t, service.DeleteRoom(ctx, 5), domain.ErrNotFound)
	cache.AssertExpectations(t)
}

func TestRoomService_RoomsByType(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo)
	ctx := context.Background()

	repo.On("FindByType", ctx, domain.RoomTypeSuite).Return([]domain.Room{{ID: 1}}, nil).Once()

	rooms, err := service.RoomsByType(ctx, "suite")
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	_, err = service.RoomsByType(ctx, "penthouse")
	assert.ErrorIs(t, err, domain.ErrInvalidRoomType)
}

func TestRoomService_RoomsByStatus_Invalid(t *testing.T) {
	service := NewRoomService(&MockRoomRepository{})

	_, err := service.RoomsByStatus(context.Background(), "closed")

	assert.ErrorIs(t, err, domain.ErrInvalidRoomStatus)
}

func TestRoomService_AvailableRooms(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo)
	ctx := context.Background()

	repo.On("FindByStatus", ctx, domain.RoomStatusAvailable).Return([]domain.Room{{ID: 2}}, nil).Once()

	rooms, err := service.AvailableRooms(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.Room{{ID: 2}}, rooms)
}

func TestRoomService_SearchRooms_UsesCache(t *testing.T) {
	repo := &MockRoomRepository{}
	cache := &MockCache{}
	service := NewRoomService(repo, WithCache(cache))
	ctx := context.Background()

	cached := []domain.Room{
		{ID: 1, Type: domain.RoomTypeSuite, PricePerNight: 900, Capacity: 4, FloorNumber: 5},
		{ID: 2, Type: domain.RoomTypeSingle, PricePerNight: 150, Capacity: 1, FloorNumber: 2},
	}
	cache.On("GetRooms", ctx).Return(cached, nil).Once()

	minCapacity := 2
	rooms, err := service.SearchRooms(ctx, filter.RoomCriteria{MinCapacity: &minCapacity})

	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, int64(1), rooms[0].ID)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestRoomService_ListRooms_FillsCacheOnMiss(t *testing.T) {
	repo := &MockRoomRepository{}
	cache := &MockCache{}
	service := NewRoomService(repo, WithCache(cache))
	ctx := context.Background()

	stored := []domain.Room{{ID: 1}}
	cache.On("GetRooms", ctx).Return(nil, nil).Once()
	repo.On("List", ctx).Return(stored, nil).Once()
	cache.On("SetRooms", ctx, stored).Return(nil).Once()

	rooms, err := service.ListRooms(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, rooms)
	cache.AssertExpectations(t)
}

func TestRoomService_ListRooms_CacheErrorFallsBack(t *testing.T) {
	repo := &MockRoomRepository{}
	cache := &MockCache{}
	service := NewRoomService(repo, WithCache(cache))
	ctx := context.Background()

	cache.On("GetRooms", ctx).Return(nil, errors.New("timeout")).Once()
	repo.On("List", ctx).Return([]domain.Room{}, nil).Once()
	cache.On("SetRooms", ctx, []domain.Room{}).Return(nil).Once()

	rooms, err := service.ListRooms(ctx)

	require.NoError(t, err)
	assert.Empty(t, rooms)
}
