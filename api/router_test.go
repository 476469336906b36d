package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T, swagger bool) (*gin.Engine, *MockRoomUseCase, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	rooms := &MockRoomUseCase{}
	router := NewRouter(
		config.HTTPConfig{Swagger: swagger, CORSOrigins: []string{"http://localhost:3000"}},
		slog.New(slog.NewTextHandler(&logs, nil)),
		Handlers{
			Rooms:    NewRoomHandler(rooms),
			Users:    NewUserHandler(&MockUserUseCase{}),
			Bookings: NewBookingHandler(&MockBookingUseCase{}),
			Invoices: NewInvoiceHandler(&MockInvoiceUseCase{}),
		},
	)
	return router, rooms, &logs
}

func TestRouter_Health(t *testing.T) {
	router, _, _ := newTestRouter(t, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_RoutesStaticBeforeID(t *testing.T) {
	router, rooms, logs := newTestRouter(t, false)

	rooms.On("AvailableRooms", mock.Anything).Return([]domain.Room{{ID: 1}}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rooms/available", nil)
	req.Header.Set(requestIDHeader, "req-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(requestIDHeader))
	assert.Contains(t, logs.String(), "request_id=req-123")
	assert.Contains(t, logs.String(), "path=/rooms/available")
	rooms.AssertExpectations(t)
}

func TestRouter_NotFoundHasNoBody(t *testing.T) {
	router, rooms, _ := newTestRouter(t, false)

	rooms.On("GetRoom", mock.Anything, int64(8)).Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/rooms/8", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	router, _, _ := newTestRouter(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/rooms/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Swagger(t *testing.T) {
	router, _, _ := newTestRouter(t, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title": "Hotel Booking API"`)
	assert.Contains(t, w.Body.String(), "/invoices/amount-range")

	disabled, _, _ := newTestRouter(t, false)
	w = httptest.NewRecorder()
	disabled.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
