package domain

import "errors"

// ErrNotFound is returned when a record, or a record it references, does not exist.
var ErrNotFound = errors.New("not found")

// ErrInUse is returned when deleting a record other records still point at.
var ErrInUse = errors.New("record is still referenced by other records")

// ValidationError reports the first business rule a payload violates.
// Message is meant to be shown to the caller as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// Room rules.
var (
	ErrInvalidRoomNumber   = NewValidationError("roomNumber", "Room number must be 1 uppercase letter followed by 3 digits (e.g., A101)")
	ErrInvalidRoomType     = NewValidationError("roomType", "Room type must be either SINGLE, DOUBLE, SUITE, or DELUXE")
	ErrInvalidCapacity     = NewValidationError("capacity", "Room capacity must be between 1 and 6 persons")
	ErrInvalidPrice        = NewValidationError("pricePerNight", "Room price must be between 100 and 10000 per night")
	ErrInvalidRoomStatus   = NewValidationError("roomStatus", "Room status must be either AVAILABLE, OCCUPIED, MAINTENANCE, or RESERVED")
	ErrInvalidSmokingFlag  = NewValidationError("smokingAllowed", "Smoking allowed must be either YES or NO")
	ErrInvalidFloor        = NewValidationError("floorNumber", "Floor number must be between 1 and 20")
	ErrInvalidDescription  = NewValidationError("description", "Description cannot exceed 500 characters")
	ErrDuplicateRoomNumber = NewValidationError("roomNumber", "Room number already exists")
)

// User rules.
var (
	ErrInvalidFirstName = NewValidationError("firstName", "Invalid first name - must be 2-50 characters and contain only letters")
	ErrInvalidLastName  = NewValidationError("lastName", "Invalid last name - must be 2-50 characters and contain only letters")
	ErrInvalidEmail     = NewValidationError("email", "Invalid email format")
	ErrInvalidPassword  = NewValidationError("password", "Password must be at least 8 characters and contain at least one digit, one uppercase, one lowercase, and one special character")
	// bcrypt only accepts the first 72 bytes of a password.
	ErrPasswordTooLong = NewValidationError("password", "Password must not exceed 72 bytes")
	ErrInvalidPhone    = NewValidationError("phoneNumber", "Invalid Egyptian phone number format - must start with +201")
	ErrInvalidAddress  = NewValidationError("address", "Address must be between 10 and 255 characters")
	ErrInvalidUserRole = NewValidationError("userRole", "User role must be either ADMIN, USER, or STAFF")
	ErrDuplicateEmail  = NewValidationError("email", "Email already exists")
)

// ErrInvalidCredentials is returned by login when the email is unknown or the
// password does not match. It is not a ValidationError.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Booking rules.
var (
	ErrInvalidBookingNumber = NewValidationError("bookingNumber", "Booking number must be in format: XXX-XXXX")
	ErrCheckInRequired      = NewValidationError("checkInDate", "Check-in date is required")
	ErrCheckInPast          = NewValidationError("checkInDate", "Check-in date must be in the present or future")
	ErrCheckOutRequired     = NewValidationError("checkOutDate", "Check-out date is required")
	ErrCheckOutPast         = NewValidationError("checkOutDate", "Check-out date must be in the present or future")
	ErrRoomRequired         = NewValidationError("room", "Room is required")
	ErrUserRequired         = NewValidationError("user", "User is required")
)

// Invoice rules.
var (
	ErrBookingRefRequired   = NewValidationError("booking", "Booking is required")
	ErrUserRefRequired      = NewValidationError("user", "User is required")
	ErrNegativeTotal        = NewValidationError("totalAmount", "Total amount must be positive")
	ErrInvalidPaymentStatus = NewValidationError("paymentStatus", "Payment status must be either PENDING, PAID, CANCELLED, or REFUNDED")
	ErrInvalidPaymentMethod = NewValidationError("paymentMethod", "Payment method must be either CASH, CREDIT_CARD, DEBIT_CARD, or BANK_TRANSFER")
	ErrNotesTooLong         = NewValidationError("notes", "Notes cannot exceed 500 characters")
	ErrNegativeTax          = NewValidationError("taxAmount", "Tax amount cannot be negative")
	ErrNegativeDiscount     = NewValidationError("discountAmount", "Discount amount cannot be negative")
	ErrInvalidDateRange     = NewValidationError("startDate", "Start date must be before end date")
	ErrInvalidAmountRange   = NewValidationError("minAmount", "Minimum amount must be less than maximum amount")
)
