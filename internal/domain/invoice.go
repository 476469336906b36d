package domain

import "time"

type Invoice struct {
	ID             int64         `json:"id"`
	BookingID      int64         `json:"bookingId"`
	UserID         int64         `json:"userId"`
	InvoiceDate    time.Time     `json:"invoiceDate"`
	TotalAmount    float64       `json:"totalAmount"`
	PaymentStatus  PaymentStatus `json:"paymentStatus"`
	PaymentMethod  PaymentMethod `json:"paymentMethod,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	TaxAmount      float64       `json:"taxAmount"`
	DiscountAmount float64       `json:"discountAmount"`
	PaymentDate    *time.Time    `json:"paymentDate,omitempty"`
}

// InvoicePatch is used both for creation and for partial updates: every
// field is optional and only present fields are applied.
type InvoicePatch struct {
	BookingID      *int64         `json:"bookingId"`
	UserID         *int64         `json:"userId"`
	InvoiceDate    *time.Time     `json:"invoiceDate"`
	TotalAmount    *float64       `json:"totalAmount"`
	PaymentStatus  *PaymentStatus `json:"paymentStatus"`
	PaymentMethod  *PaymentMethod `json:"paymentMethod"`
	Notes          *string        `json:"notes"`
	TaxAmount      *float64       `json:"taxAmount"`
	DiscountAmount *float64       `json:"discountAmount"`
}
