package validation

import (
	"unicode/utf8"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

const maxNotesLen = 500

// ValidateInvoice checks an invoice payload. The booking and user references
// are required on both create and update; everything else only when present.
func ValidateInvoice(p domain.InvoicePatch) error {
	if p.BookingID == nil || *p.BookingID <= 0 {
		return domain.ErrBookingRefRequired
	}
	if p.UserID == nil || *p.UserID <= 0 {
		return domain.ErrUserRefRequired
	}
	if p.TotalAmount != nil && *p.TotalAmount < 0 {
		return domain.ErrNegativeTotal
	}
	if p.PaymentStatus != nil && !p.PaymentStatus.Valid() {
		return domain.ErrInvalidPaymentStatus
	}
	if p.PaymentMethod != nil && !p.PaymentMethod.Valid() {
		return domain.ErrInvalidPaymentMethod
	}
	if p.Notes != nil && utf8.RuneCountInString(*p.Notes) > maxNotesLen {
		return domain.ErrNotesTooLong
	}
	if p.TaxAmount != nil && *p.TaxAmount < 0 {
		return domain.ErrNegativeTax
	}
	if p.DiscountAmount != nil && *p.DiscountAmount < 0 {
		return domain.ErrNegativeDiscount
	}
	return nil
}
