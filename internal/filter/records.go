package filter

import (
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

func UserEmailIs(email string) Predicate[domain.User] {
	return func(u domain.User) bool { return u.Email == email }
}

func UserRoleIs(role domain.UserRole) Predicate[domain.User] {
	return func(u domain.User) bool { return u.Role == role }
}

func BookingNumberIs(number string) Predicate[domain.Booking] {
	return func(b domain.Booking) bool { return b.BookingNumber == number }
}

func BookingCheckInBetween(start, end time.Time) Predicate[domain.Booking] {
	return func(b domain.Booking) bool { return Between(b.CheckInDate, start, end) }
}

func BookingCheckOutBetween(start, end time.Time) Predicate[domain.Booking] {
	return func(b domain.Booking) bool { return Between(b.CheckOutDate, start, end) }
}

func BookingForRoom(roomID int64) Predicate[domain.Booking] {
	return func(b domain.Booking) bool { return b.RoomID == roomID }
}

func BookingForUser(userID int64) Predicate[domain.Booking] {
	return func(b domain.Booking) bool { return b.UserID == userID }
}

func InvoiceForUser(userID int64) Predicate[domain.Invoice] {
	return func(i domain.Invoice) bool { return i.UserID == userID }
}

func InvoiceForBooking(bookingID int64) Predicate[domain.Invoice] {
	return func(i domain.Invoice) bool { return i.BookingID == bookingID }
}

func InvoicePaymentStatusIs(s domain.PaymentStatus) Predicate[domain.Invoice] {
	return func(i domain.Invoice) bool { return i.PaymentStatus == s }
}

func InvoicePaymentMethodIs(m domain.PaymentMethod) Predicate[domain.Invoice] {
	return func(i domain.Invoice) bool { return i.PaymentMethod == m }
}

func InvoiceDateBetween(start, end time.Time) Predicate[domain.Invoice] {
	return func(i domain.Invoice) bool { return Between(i.InvoiceDate, start, end) }
}

func InvoiceTotalBetween(min, max float64) Predicate[domain.Invoice] {
	return func(i domain.Invoice) bool { return i.TotalAmount >= min && i.TotalAmount <= max }
}
