package kafka

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	EventUserRegistered = "user_registered"
	EventBookingCreated = "booking_created"
	EventBookingUpdated = "booking_updated"
	EventBookingDeleted = "booking_deleted"
	EventInvoiceCreated = "invoice_created"
	EventInvoiceUpdated = "invoice_updated"
	EventInvoicePaid    = "invoice_paid"
)

// Event is the message published on the hotel events topic. Fields that do
// not apply to a given type are left empty.
type Event struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	UserID        int64      `json:"user_id,omitempty"`
	Email         string     `json:"email,omitempty"`
	RoomID        int64      `json:"room_id,omitempty"`
	BookingID     int64      `json:"booking_id,omitempty"`
	BookingNumber string     `json:"booking_number,omitempty"`
	CheckInDate   *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate  *time.Time `json:"check_out_date,omitempty"`
	InvoiceID     int64      `json:"invoice_id,omitempty"`
	PaymentStatus string     `json:"payment_status,omitempty"`
	TotalAmount   float64    `json:"total_amount,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// NewEvent stamps a fresh id and time on an event of the given type.
func NewEvent(eventType string, at time.Time) Event {
	return Event{ID: uuid.NewString(), Type: eventType, OccurredAt: at}
}

// Key partitions events by the record they are about.
func (e Event) Key() string {
	switch {
	case e.InvoiceID != 0:
		return "invoice-" + strconv.FormatInt(e.InvoiceID, 10)
	case e.BookingID != 0:
		return "booking-" + strconv.FormatInt(e.BookingID, 10)
	case e.UserID != 0:
		return "user-" + strconv.FormatInt(e.UserID, 10)
	}
	return e.ID
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Emit publishes event to topic and, when set, to notificationsTopic. It is a
// no-op without a publisher or topic.
func Emit(ctx context.Context, p Publisher, topic, notificationsTopic string, event Event) error {
	if p == nil || topic == "" {
		return nil
	}
	if err := p.Publish(ctx, topic, event.Key(), event); err != nil {
		return err
	}
	if notificationsTopic != "" {
		return p.Publish(ctx, notificationsTopic, event.Key(), event)
	}
	return nil
}
