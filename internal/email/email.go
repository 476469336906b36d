package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/hotelbooking/internal/kafka"
)

// Sender turns hotel events into guest notifications. Delivery is a log line;
// no mail transport is configured.
type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.Event) error {
	subject, ok := Subject(event)
	if !ok {
		return nil
	}
	s.logger.InfoContext(ctx, "send notification",
		"event_id", event.ID,
		"type", event.Type,
		"user_id", event.UserID,
		"email", event.Email,
		"subject", subject,
	)
	return nil
}

// Subject returns the notification subject for event types guests are told about.
func Subject(event kafka.Event) (string, bool) {
	switch event.Type {
	case kafka.EventUserRegistered:
		return "Welcome, your account is ready", true
	case kafka.EventBookingCreated:
		return fmt.Sprintf("Booking %s confirmed", event.BookingNumber), true
	case kafka.EventBookingUpdated:
		return fmt.Sprintf("Booking %s changed", event.BookingNumber), true
	case kafka.EventBookingDeleted:
		return fmt.Sprintf("Booking #%d cancelled", event.BookingID), true
	case kafka.EventInvoiceCreated:
		return fmt.Sprintf("Invoice #%d issued: %.2f", event.InvoiceID, event.TotalAmount), true
	case kafka.EventInvoicePaid:
		return fmt.Sprintf("Payment received for invoice #%d", event.InvoiceID), true
	}
	return "", false
}
