package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `id, booking_id, user_id, invoice_date, total_amount, payment_status, payment_method, notes, tax_amount, discount_amount, payment_date`

type PGInvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) InvoiceRepository {
	return &PGInvoiceRepository{db: db}
}

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var i domain.Invoice
	err := row.Scan(&i.ID, &i.BookingID, &i.UserID, &i.InvoiceDate, &i.TotalAmount, &i.PaymentStatus, &i.PaymentMethod, &i.Notes, &i.TaxAmount, &i.DiscountAmount, &i.PaymentDate)
	return i, err
}

func (r *PGInvoiceRepository) query(ctx context.Context, where string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices `+where+` ORDER BY id`, args...)
	return collect(rows, err, scanInvoice)
}

func (r *PGInvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	return r.query(ctx, "")
}

func (r *PGInvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	i, err := scanInvoice(r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &i, nil
}

func (r *PGInvoiceRepository) Save(ctx context.Context, i *domain.Invoice) error {
	if i.ID == 0 {
		return r.db.QueryRow(ctx, `INSERT INTO invoices (booking_id, user_id, invoice_date, total_amount, payment_status, payment_method, notes, tax_amount, discount_amount, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`, i.BookingID, i.UserID, i.InvoiceDate, i.TotalAmount, i.PaymentStatus, i.PaymentMethod, i.Notes, i.TaxAmount, i.DiscountAmount, i.PaymentDate).
			Scan(&i.ID)
	}

	cmd, err := r.db.Exec(ctx, `UPDATE invoices SET booking_id=$2, user_id=$3, invoice_date=$4, total_amount=$5, payment_status=$6, payment_method=$7, notes=$8, tax_amount=$9, discount_amount=$10, payment_date=$11
		WHERE id=$1`, i.ID, i.BookingID, i.UserID, i.InvoiceDate, i.TotalAmount, i.PaymentStatus, i.PaymentMethod, i.Notes, i.TaxAmount, i.DiscountAmount, i.PaymentDate)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGInvoiceRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "invoices", id)
}

func (r *PGInvoiceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "invoices", id)
}

func (r *PGInvoiceRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Invoice, error) {
	return r.query(ctx, `WHERE user_id=$1`, userID)
}

func (r *PGInvoiceRepository) FindByBooking(ctx context.Context, bookingID int64) ([]domain.Invoice, error) {
	return r.query(ctx, `WHERE booking_id=$1`, bookingID)
}

func (r *PGInvoiceRepository) FindByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Invoice, error) {
	return r.query(ctx, `WHERE payment_status=$1`, status)
}

func (r *PGInvoiceRepository) FindByPaymentMethod(ctx context.Context, method domain.PaymentMethod) ([]domain.Invoice, error) {
	return r.query(ctx, `WHERE payment_method=$1`, method)
}

func (r *PGInvoiceRepository) FindByInvoiceDateBetween(ctx context.Context, start, end time.Time) ([]domain.Invoice, error) {
	return r.query(ctx, `WHERE invoice_date BETWEEN $1 AND $2`, start, end)
}

func (r *PGInvoiceRepository) FindByTotalAmountBetween(ctx context.Context, min, max float64) ([]domain.Invoice, error) {
	return r.query(ctx, `WHERE total_amount BETWEEN $1 AND $2`, min, max)
}

var _ InvoiceRepository = (*PGInvoiceRepository)(nil)
