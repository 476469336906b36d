package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

// Lookups by id or unique key return domain.ErrNotFound when nothing matches.
// Save inserts when the id is zero (assigning it) and replaces otherwise.

type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Save(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	FindByRoomNumber(ctx context.Context, number string) (*domain.Room, error)
	FindByType(ctx context.Context, roomType domain.RoomType) ([]domain.Room, error)
	FindByStatus(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error)
	FindByPriceBetween(ctx context.Context, min, max float64) ([]domain.Room, error)
	FindByCapacityAtLeast(ctx context.Context, capacity int) ([]domain.Room, error)
	FindByFloor(ctx context.Context, floor int) ([]domain.Room, error)
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Save(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	FindByBookingNumber(ctx context.Context, number string) (*domain.Booking, error)
	FindByCheckInBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
	FindByCheckOutBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
	FindByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type InvoiceRepository interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	Save(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Invoice, error)
	FindByBooking(ctx context.Context, bookingID int64) ([]domain.Invoice, error)
	FindByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Invoice, error)
	FindByPaymentMethod(ctx context.Context, method domain.PaymentMethod) ([]domain.Invoice, error)
	FindByInvoiceDateBetween(ctx context.Context, start, end time.Time) ([]domain.Invoice, error)
	FindByTotalAmountBetween(ctx context.Context, min, max float64) ([]domain.Invoice, error)
}

// Repositories bundles one implementation of every store.
type Repositories struct {
	Rooms    RoomRepository
	Users    UserRepository
	Bookings BookingRepository
	Invoices InvoiceRepository
}
