package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoiceUseCase is a mock implementation of invoice.InvoiceUseCase
type MockInvoiceUseCase struct {
	mock.Mock
}

func (m *MockInvoiceUseCase) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceUseCase) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceUseCase) CreateInvoice(ctx context.Context, input domain.InvoicePatch) (*domain.Invoice, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceUseCase) UpdateInvoice(ctx context.Context, id int64, patch domain.InvoicePatch) (*domain.Invoice, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceUseCase) DeleteInvoice(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceUseCase) InvoicesByUser(ctx context.Context, userID int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceUseCase) InvoicesByBooking(ctx context.Context, bookingID int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceUseCase) InvoicesByStatus(ctx context.Context, status string) ([]domain.Invoice, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceUseCase) InvoicesByMethod(ctx context.Context, method string) ([]domain.Invoice, error) {
	args := m.Called(ctx, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceUseCase) InvoicesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceUseCase) InvoicesByAmountRange(ctx context.Context, min, max float64) ([]domain.Invoice, error) {
	args := m.Called(ctx, min, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func TestInvoiceHandler_create(t *testing.T) {
	mockService := &MockInvoiceUseCase{}
	handler := NewInvoiceHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"bookingId":3,"userId":4,"totalAmount":1000,"taxAmount":140,"discountAmount":40}`
	c.Request = httptest.NewRequest("POST", "/invoices/", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")

	withAmounts := mock.MatchedBy(func(p domain.InvoicePatch) bool {
		return *p.BookingID == 3 && *p.UserID == 4 && *p.TotalAmount == 1000 &&
			*p.TaxAmount == 140 && *p.DiscountAmount == 40 && p.PaymentStatus == nil
	})
	created := &domain.Invoice{ID: 9, BookingID: 3, UserID: 4, TotalAmount: 1100, TaxAmount: 140, DiscountAmount: 40, PaymentStatus: domain.PaymentStatusPending}
	mockService.On("CreateInvoice", c.Request.Context(), withAmounts).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1100.0, response.TotalAmount)
	assert.Equal(t, domain.PaymentStatusPending, response.PaymentStatus)

	mockService.AssertExpectations(t)
}

func TestInvoiceHandler_update_ValidationError(t *testing.T) {
	mockService := &MockInvoiceUseCase{}
	handler := NewInvoiceHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "9"}}
	c.Request = httptest.NewRequest("PUT", "/invoices/9", bytes.NewReader([]byte(`{"notes":"x"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("UpdateInvoice", c.Request.Context(), int64(9), mock.Anything).Return(nil, domain.ErrBookingRefRequired)

	handler.update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Booking is required"}`, w.Body.String())
}

func TestInvoiceHandler_byAmountRange(t *testing.T) {
	mockService := &MockInvoiceUseCase{}
	handler := NewInvoiceHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/invoices/amount-range?minAmount=100&maxAmount=500.5", nil)

	mockService.On("InvoicesByAmountRange", c.Request.Context(), 100.0, 500.5).Return([]domain.Invoice{{ID: 1}}, nil)

	handler.byAmountRange(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestInvoiceHandler_byAmountRange_Missing(t *testing.T) {
	handler := NewInvoiceHandler(&MockInvoiceUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/invoices/amount-range?minAmount=100", nil)

	handler.byAmountRange(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_byDateRange_LocalLayout(t *testing.T) {
	mockService := &MockInvoiceUseCase{}
	handler := NewInvoiceHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/invoices/date-range?startDate=2026-07-01T00:00:00&endDate=2026-07-31T23:59:59", nil)

	mockService.On("InvoicesByDateRange", c.Request.Context(),
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC),
	).Return([]domain.Invoice{}, nil)

	handler.byDateRange(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestInvoiceHandler_byStatus_Invalid(t *testing.T) {
	mockService := &MockInvoiceUseCase{}
	handler := NewInvoiceHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "status", Value: "overdue"}}
	c.Request = httptest.NewRequest("GET", "/invoices/status/overdue", nil)

	mockService.On("InvoicesByStatus", c.Request.Context(), "overdue").Return(nil, domain.ErrInvalidPaymentStatus)

	handler.byStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
