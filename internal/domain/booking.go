package domain

import "time"

// DateLayout is the wire format of booking dates.
const DateLayout = "2006-01-02"

// Booking ties one user to one room. Dates are calendar days (time part is zero, UTC).
type Booking struct {
	ID            int64     `json:"id"`
	BookingNumber string    `json:"bookingNumber"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	RoomID        int64     `json:"roomId"`
	UserID        int64     `json:"userId"`
}

type BookingPatch struct {
	BookingNumber *string
	CheckInDate   *time.Time
	CheckOutDate  *time.Time
	RoomID        *int64
	UserID        *int64
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
