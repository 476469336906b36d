package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/filter"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRoomUseCase is a mock implementation of room.RoomUseCase
type MockRoomUseCase struct {
	mock.Mock
}

func (m *MockRoomUseCase) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) CreateRoom(ctx context.Context, input domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) UpdateRoom(ctx context.Context, id int64, input domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) DeleteRoom(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomUseCase) RoomsByType(ctx context.Context, roomType string) ([]domain.Room, error) {
	args := m.Called(ctx, roomType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) RoomsByStatus(ctx context.Context, status string) ([]domain.Room, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) AvailableRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) SearchRooms(ctx context.Context, criteria filter.RoomCriteria) ([]domain.Room, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func TestRoomHandler_create(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := domain.Room{
		RoomNumber:    "A101",
		Type:          domain.RoomTypeSingle,
		Capacity:      1,
		PricePerNight: 150,
		Status:        domain.RoomStatusAvailable,
		FloorNumber:   1,
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/rooms/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := input
	created.ID = 1
	mockService.On("CreateRoom", c.Request.Context(), input).Return(&created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.Room
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), response.ID)
	assert.Equal(t, "A101", response.RoomNumber)

	mockService.AssertExpectations(t)
}

func TestRoomHandler_create_ValidationError(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/rooms/", bytes.NewReader([]byte(`{"roomNumber":"A101"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateRoom", c.Request.Context(), mock.Anything).Return(nil, domain.ErrDuplicateRoomNumber)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Room number already exists"}`, w.Body.String())
}

func TestRoomHandler_get_NotFound(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "42"}}
	c.Request = httptest.NewRequest("GET", "/rooms/42", nil)

	mockService.On("GetRoom", c.Request.Context(), int64(42)).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRoomHandler_get_InvalidID(t *testing.T) {
	handler := NewRoomHandler(&MockRoomUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/rooms/abc", nil)

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomHandler_delete(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "3"}}
	c.Request = httptest.NewRequest("DELETE", "/rooms/3", nil)

	mockService.On("DeleteRoom", c.Request.Context(), int64(3)).Return(nil)

	handler.delete(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	mockService.AssertExpectations(t)
}

func TestRoomHandler_delete_StillBooked(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "3"}}
	c.Request = httptest.NewRequest("DELETE", "/rooms/3", nil)

	mockService.On("DeleteRoom", c.Request.Context(), int64(3)).Return(fmt.Errorf("rooms 3: %w", domain.ErrInUse))

	handler.delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Record is still referenced by other records"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestRoomHandler_search(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/rooms/search?minPrice=100&minCapacity=2&roomType=suite", nil)

	matchCriteria := mock.MatchedBy(func(cr filter.RoomCriteria) bool {
		return cr.MinPrice != nil && *cr.MinPrice == 100 &&
			cr.MaxPrice == nil &&
			cr.MinCapacity != nil && *cr.MinCapacity == 2 &&
			cr.RoomType != nil && *cr.RoomType == "suite" &&
			cr.SmokingAllowed == nil && cr.FloorNumber == nil
	})
	mockService.On("SearchRooms", c.Request.Context(), matchCriteria).Return([]domain.Room{{ID: 5}}, nil)

	handler.search(c)

	require.Equal(t, http.StatusOK, w.Code)
	var response []domain.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	mockService.AssertExpectations(t)
}

func TestRoomHandler_search_BadNumber(t *testing.T) {
	handler := NewRoomHandler(&MockRoomUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/rooms/search?minPrice=cheap", nil)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomHandler_byType_Invalid(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "type", Value: "penthouse"}}
	c.Request = httptest.NewRequest("GET", "/rooms/type/penthouse", nil)

	mockService.On("RoomsByType", c.Request.Context(), "penthouse").Return(nil, domain.ErrInvalidRoomType)

	handler.byType(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
