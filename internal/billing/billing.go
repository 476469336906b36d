// Package billing derives invoice totals and tracks payment status.
package billing

import (
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

// ComputeTotal overwrites the total with total + tax - discount, treating the
// current total as the base amount. It is not idempotent: call it once per
// logical change.
func ComputeTotal(inv *domain.Invoice) {
	inv.TotalAmount = total(inv.TotalAmount, inv.TaxAmount, inv.DiscountAmount)
}

func total(base, tax, discount float64) float64 {
	return base + tax - discount
}

// PrepareNew builds an invoice from a validated create payload. Missing
// fields get their defaults (invoice date now, status PENDING, zero tax and
// discount) and the total is computed once.
func PrepareNew(p domain.InvoicePatch, now time.Time) domain.Invoice {
	inv := domain.Invoice{
		InvoiceDate:   now,
		PaymentStatus: domain.PaymentStatusPending,
	}
	if p.BookingID != nil {
		inv.BookingID = *p.BookingID
	}
	if p.UserID != nil {
		inv.UserID = *p.UserID
	}
	if p.InvoiceDate != nil && !p.InvoiceDate.IsZero() {
		inv.InvoiceDate = *p.InvoiceDate
	}
	if p.TotalAmount != nil {
		inv.TotalAmount = *p.TotalAmount
	}
	if p.PaymentStatus != nil {
		inv.PaymentStatus = *p.PaymentStatus
	}
	if p.PaymentMethod != nil {
		inv.PaymentMethod = *p.PaymentMethod
	}
	if p.Notes != nil {
		inv.Notes = *p.Notes
	}
	if p.TaxAmount != nil {
		inv.TaxAmount = *p.TaxAmount
	}
	if p.DiscountAmount != nil {
		inv.DiscountAmount = *p.DiscountAmount
	}
	if inv.PaymentStatus == domain.PaymentStatusPaid {
		paid := now
		inv.PaymentDate = &paid
	}
	ComputeTotal(&inv)
	return inv
}

// ApplyPatch merges a validated update payload into an existing invoice.
//
// Present fields overwrite stored ones. Moving to PAID stamps the payment
// date with now; any other status keeps a previously recorded payment date.
// The total is recomputed once from the merged base amount and the tax and
// discount carried by this payload, so an update that touches neither
// amount leaves the total as stored.
func ApplyPatch(existing domain.Invoice, p domain.InvoicePatch, now time.Time) domain.Invoice {
	inv := existing
	if p.BookingID != nil {
		inv.BookingID = *p.BookingID
	}
	if p.UserID != nil {
		inv.UserID = *p.UserID
	}
	if p.TotalAmount != nil {
		inv.TotalAmount = *p.TotalAmount
	}
	if p.PaymentStatus != nil {
		inv.PaymentStatus = *p.PaymentStatus
		if *p.PaymentStatus == domain.PaymentStatusPaid {
			paid := now
			inv.PaymentDate = &paid
		}
	}
	if p.PaymentMethod != nil {
		inv.PaymentMethod = *p.PaymentMethod
	}
	if p.Notes != nil {
		inv.Notes = *p.Notes
	}

	var tax, discount float64
	if p.TaxAmount != nil {
		inv.TaxAmount = *p.TaxAmount
		tax = *p.TaxAmount
	}
	if p.DiscountAmount != nil {
		inv.DiscountAmount = *p.DiscountAmount
		discount = *p.DiscountAmount
	}
	inv.TotalAmount = total(inv.TotalAmount, tax, discount)
	return inv
}

// BecamePaid reports whether an update moved the invoice into PAID.
func BecamePaid(before, after domain.Invoice) bool {
	return before.PaymentStatus != domain.PaymentStatusPaid && after.PaymentStatus == domain.PaymentStatusPaid
}
