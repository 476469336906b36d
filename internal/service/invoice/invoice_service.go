package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/billing"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/filter"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logging"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/validation"
)

type InvoiceUseCase interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error)
	CreateInvoice(ctx context.Context, input domain.InvoicePatch) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, patch domain.InvoicePatch) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
	InvoicesByUser(ctx context.Context, userID int64) ([]domain.Invoice, error)
	InvoicesByBooking(ctx context.Context, bookingID int64) ([]domain.Invoice, error)
	InvoicesByStatus(ctx context.Context, status string) ([]domain.Invoice, error)
	InvoicesByMethod(ctx context.Context, method string) ([]domain.Invoice, error)
	InvoicesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Invoice, error)
	InvoicesByAmountRange(ctx context.Context, min, max float64) ([]domain.Invoice, error)
}

type InvoiceService struct {
	invoices           repository.InvoiceRepository
	bookings           repository.BookingRepository
	users              repository.UserRepository
	producer           kafka.Publisher
	eventsTopic        string
	notificationsTopic string
	now                func() time.Time
	logger             *slog.Logger
}

type InvoiceServiceOption func(*InvoiceService)

func WithEvents(producer kafka.Publisher, eventsTopic, notificationsTopic string) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
		s.notificationsTopic = notificationsTopic
	}
}

func WithClock(now func() time.Time) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.logger = logger
	}
}

func NewInvoiceService(
	invoices repository.InvoiceRepository,
	bookings repository.BookingRepository,
	users repository.UserRepository,
	opts ...InvoiceServiceOption,
) *InvoiceService {
	service := &InvoiceService{
		invoices: invoices,
		bookings: bookings,
		users:    users,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, input domain.InvoicePatch) (*domain.Invoice, error) {
	logger := s.log(ctx, "create")

	if err := validation.ValidateInvoice(input); err != nil {
		logger.Warn("invoice rejected", "error", err)
		return nil, err
	}
	if err := s.ensureReferences(ctx, *input.BookingID, *input.UserID); err != nil {
		logger.Warn("invoice references missing", "error", err)
		return nil, err
	}

	now := s.now()
	invoice := billing.PrepareNew(input, now)
	if err := s.invoices.Save(ctx, &invoice); err != nil {
		logger.Error("failed to save invoice", "error", err)
		return nil, err
	}

	s.publish(ctx, logger, kafka.EventInvoiceCreated, &invoice, now)
	if invoice.PaymentStatus == domain.PaymentStatusPaid {
		s.publish(ctx, logger, kafka.EventInvoicePaid, &invoice, now)
	}
	logger.Info("invoice created", "invoice_id", invoice.ID, "total", invoice.TotalAmount)
	return &invoice, nil
}

// UpdateInvoice merges patch into the stored invoice and recomputes the total
// once. See billing.ApplyPatch for the money rules.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id int64, patch domain.InvoicePatch) (*domain.Invoice, error) {
	logger := s.log(ctx, "update", "invoice_id", id)

	current, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateInvoice(patch); err != nil {
		logger.Warn("update rejected", "error", err)
		return nil, err
	}

	var bookingID, userID int64
	if *patch.BookingID != current.BookingID {
		bookingID = *patch.BookingID
	}
	if *patch.UserID != current.UserID {
		userID = *patch.UserID
	}
	if err := s.ensureReferences(ctx, bookingID, userID); err != nil {
		logger.Warn("invoice references missing", "error", err)
		return nil, err
	}

	now := s.now()
	invoice := billing.ApplyPatch(*current, patch, now)
	if err := s.invoices.Save(ctx, &invoice); err != nil {
		logger.Error("failed to save invoice", "error", err)
		return nil, err
	}

	s.publish(ctx, logger, kafka.EventInvoiceUpdated, &invoice, now)
	if billing.BecamePaid(*current, invoice) {
		s.publish(ctx, logger, kafka.EventInvoicePaid, &invoice, now)
	}
	logger.Info("invoice updated", "total", invoice.TotalAmount, "status", invoice.PaymentStatus)
	return &invoice, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		return err
	}
	s.log(ctx, "delete", "invoice_id", id).Info("invoice deleted")
	return nil
}

func (s *InvoiceService) InvoicesByUser(ctx context.Context, userID int64) ([]domain.Invoice, error) {
	return s.invoices.FindByUser(ctx, userID)
}

func (s *InvoiceService) InvoicesByBooking(ctx context.Context, bookingID int64) ([]domain.Invoice, error) {
	return s.invoices.FindByBooking(ctx, bookingID)
}

func (s *InvoiceService) InvoicesByStatus(ctx context.Context, status string) ([]domain.Invoice, error) {
	st, ok := domain.ParsePaymentStatus(status)
	if !ok {
		return nil, domain.ErrInvalidPaymentStatus
	}
	return s.invoices.FindByPaymentStatus(ctx, st)
}

func (s *InvoiceService) InvoicesByMethod(ctx context.Context, method string) ([]domain.Invoice, error) {
	m, ok := domain.ParsePaymentMethod(method)
	if !ok {
		return nil, domain.ErrInvalidPaymentMethod
	}
	return s.invoices.FindByPaymentMethod(ctx, m)
}

func (s *InvoiceService) InvoicesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Invoice, error) {
	if err := filter.CheckDateRange(start, end); err != nil {
		return nil, err
	}
	return s.invoices.FindByInvoiceDateBetween(ctx, start, end)
}

func (s *InvoiceService) InvoicesByAmountRange(ctx context.Context, min, max float64) ([]domain.Invoice, error) {
	if err := filter.CheckAmountRange(min, max); err != nil {
		return nil, err
	}
	return s.invoices.FindByTotalAmountBetween(ctx, min, max)
}

// ensureReferences checks that the booking and user exist. A zero id is skipped.
func (s *InvoiceService) ensureReferences(ctx context.Context, bookingID, userID int64) error {
	if bookingID != 0 {
		ok, err := s.bookings.Exists(ctx, bookingID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("booking %d: %w", bookingID, domain.ErrNotFound)
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

func (s *InvoiceService) publish(ctx context.Context, logger *slog.Logger, eventType string, invoice *domain.Invoice, at time.Time) {
	event := kafka.NewEvent(eventType, at)
	event.InvoiceID = invoice.ID
	event.BookingID = invoice.BookingID
	event.UserID = invoice.UserID
	event.PaymentStatus = string(invoice.PaymentStatus)
	event.TotalAmount = invoice.TotalAmount
	if err := kafka.Emit(ctx, s.producer, s.eventsTopic, s.notificationsTopic, event); err != nil {
		logger.Warn("failed to publish invoice event", "type", eventType, "invoice_id", invoice.ID, "error", err)
	}
}

func (s *InvoiceService) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return logging.ServiceLogger(ctx, s.logger, "invoice", operation, attrs...)
}

var _ InvoiceUseCase = (*InvoiceService)(nil)
