package validation

import (
	"regexp"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

var bookingNumberPattern = regexp.MustCompile(`^[A-Z]{3}-\d{4}$`)

func ValidBookingNumber(s string) bool {
	return bookingNumberPattern.MatchString(s)
}

// ValidateBooking checks a full booking against the calendar day of now.
// Check-out is not compared with check-in.
func ValidateBooking(b domain.Booking, now time.Time) error {
	if !ValidBookingNumber(b.BookingNumber) {
		return domain.ErrInvalidBookingNumber
	}
	if b.CheckInDate.IsZero() {
		return domain.ErrCheckInRequired
	}
	today := domain.Day(now)
	if domain.Day(b.CheckInDate).Before(today) {
		return domain.ErrCheckInPast
	}
	if b.CheckOutDate.IsZero() {
		return domain.ErrCheckOutRequired
	}
	if domain.Day(b.CheckOutDate).Before(today) {
		return domain.ErrCheckOutPast
	}
	if b.RoomID <= 0 {
		return domain.ErrRoomRequired
	}
	if b.UserID <= 0 {
		return domain.ErrUserRequired
	}
	return nil
}

func ValidateBookingPatch(p domain.BookingPatch, now time.Time) error {
	if p.BookingNumber != nil && !ValidBookingNumber(*p.BookingNumber) {
		return domain.ErrInvalidBookingNumber
	}
	today := domain.Day(now)
	if p.CheckInDate != nil {
		if p.CheckInDate.IsZero() {
			return domain.ErrCheckInRequired
		}
		if domain.Day(*p.CheckInDate).Before(today) {
			return domain.ErrCheckInPast
		}
	}
	if p.CheckOutDate != nil {
		if p.CheckOutDate.IsZero() {
			return domain.ErrCheckOutRequired
		}
		if domain.Day(*p.CheckOutDate).Before(today) {
			return domain.ErrCheckOutPast
		}
	}
	if p.RoomID != nil && *p.RoomID <= 0 {
		return domain.ErrRoomRequired
	}
	if p.UserID != nil && *p.UserID <= 0 {
		return domain.ErrUserRequired
	}
	return nil
}
