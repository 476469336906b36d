package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/filter"
)

// table is an in-process store for one entity kind. Finders are filter
// predicates evaluated over the full record set.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
	id     func(*T) *int64
}

func newTable[T any](id func(*T) *int64) *table[T] {
	return &table[T]{rows: make(map[int64]T), id: id}
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]int64, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, t.rows[k])
	}
	return out
}

func (t *table[T]) where(pred filter.Predicate[T]) []T {
	return filter.Apply(t.all(), pred)
}

func (t *table[T]) first(pred filter.Predicate[T]) (*T, error) {
	v, ok := filter.First(t.all(), pred)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (t *table[T]) get(id int64) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (t *table[T]) save(v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.id(v)
	if *id == 0 {
		t.nextID++
		*id = t.nextID
	} else if _, ok := t.rows[*id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[*id] = *v
	return nil
}

func (t *table[T]) delete(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) exists(id int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[id]
	return ok
}

// NewMemoryRepositories returns empty in-memory stores, used when no
// database is configured and in tests. Deletes refuse records that other
// stores still reference, matching the foreign keys of the Postgres schema.
func NewMemoryRepositories() Repositories {
	rooms := NewMemoryRoomRepository()
	users := NewMemoryUserRepository()
	bookings := NewMemoryBookingRepository()
	invoices := NewMemoryInvoiceRepository()

	rooms.referenced = func(id int64) bool {
		return len(bookings.t.where(filter.BookingForRoom(id))) > 0
	}
	users.referenced = func(id int64) bool {
		return len(bookings.t.where(filter.BookingForUser(id))) > 0 ||
			len(invoices.t.where(filter.InvoiceForUser(id))) > 0
	}
	bookings.referenced = func(id int64) bool {
		return len(invoices.t.where(filter.InvoiceForBooking(id))) > 0
	}

	return Repositories{
		Rooms:    rooms,
		Users:    users,
		Bookings: bookings,
		Invoices: invoices,
	}
}

func deleteUnreferenced[T any](t *table[T], referenced func(int64) bool, id int64) error {
	if referenced != nil && t.exists(id) && referenced(id) {
		return domain.ErrInUse
	}
	return t.delete(id)
}

type MemoryRoomRepository struct {
	t          *table[domain.Room]
	referenced func(id int64) bool
}

func NewMemoryRoomRepository() *MemoryRoomRepository {
	return &MemoryRoomRepository{t: newTable(func(r *domain.Room) *int64 { return &r.ID })}
}

func (r *MemoryRoomRepository) List(_ context.Context) ([]domain.Room, error) {
	return r.t.all(), nil
}

func (r *MemoryRoomRepository) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	return r.t.get(id)
}

func (r *MemoryRoomRepository) Save(_ context.Context, room *domain.Room) error {
	return r.t.save(room)
}

func (r *MemoryRoomRepository) Delete(_ context.Context, id int64) error {
	return deleteUnreferenced(r.t, r.referenced, id)
}

func (r *MemoryRoomRepository) Exists(_ context.Context, id int64) (bool, error) {
	return r.t.exists(id), nil
}

func (r *MemoryRoomRepository) FindByRoomNumber(_ context.Context, number string) (*domain.Room, error) {
	return r.t.first(filter.RoomNumberIs(number))
}

func (r *MemoryRoomRepository) FindByType(_ context.Context, roomType domain.RoomType) ([]domain.Room, error) {
	return r.t.where(filter.RoomTypeIs(roomType)), nil
}

func (r *MemoryRoomRepository) FindByStatus(_ context.Context, status domain.RoomStatus) ([]domain.Room, error) {
	return r.t.where(filter.RoomStatusIs(status)), nil
}

func (r *MemoryRoomRepository) FindByPriceBetween(_ context.Context, min, max float64) ([]domain.Room, error) {
	return r.t.where(filter.RoomPriceBetween(min, max)), nil
}

func (r *MemoryRoomRepository) FindByCapacityAtLeast(_ context.Context, capacity int) ([]domain.Room, error) {
	return r.t.where(filter.RoomCapacityAtLeast(capacity)), nil
}

func (r *MemoryRoomRepository) FindByFloor(_ context.Context, floor int) ([]domain.Room, error) {
	return r.t.where(filter.RoomOnFloor(floor)), nil
}

type MemoryUserRepository struct {
	t          *table[domain.User]
	referenced func(id int64) bool
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{t: newTable(func(u *domain.User) *int64 { return &u.ID })}
}

func (r *MemoryUserRepository) List(_ context.Context) ([]domain.User, error) {
	return r.t.all(), nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return r.t.get(id)
}

func (r *MemoryUserRepository) Save(_ context.Context, u *domain.User) error {
	return r.t.save(u)
}

func (r *MemoryUserRepository) Delete(_ context.Context, id int64) error {
	return deleteUnreferenced(r.t, r.referenced, id)
}

func (r *MemoryUserRepository) Exists(_ context.Context, id int64) (bool, error) {
	return r.t.exists(id), nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.t.first(filter.UserEmailIs(email))
}

func (r *MemoryUserRepository) FindByRole(_ context.Context, role domain.UserRole) ([]domain.User, error) {
	return r.t.where(filter.UserRoleIs(role)), nil
}

type MemoryBookingRepository struct {
	t          *table[domain.Booking]
	referenced func(id int64) bool
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{t: newTable(func(b *domain.Booking) *int64 { return &b.ID })}
}

func (r *MemoryBookingRepository) List(_ context.Context) ([]domain.Booking, error) {
	return r.t.all(), nil
}

func (r *MemoryBookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	return r.t.get(id)
}

func (r *MemoryBookingRepository) Save(_ context.Context, b *domain.Booking) error {
	return r.t.save(b)
}

func (r *MemoryBookingRepository) Delete(_ context.Context, id int64) error {
	return deleteUnreferenced(r.t, r.referenced, id)
}

func (r *MemoryBookingRepository) Exists(_ context.Context, id int64) (bool, error) {
	return r.t.exists(id), nil
}

func (r *MemoryBookingRepository) FindByBookingNumber(_ context.Context, number string) (*domain.Booking, error) {
	return r.t.first(filter.BookingNumberIs(number))
}

func (r *MemoryBookingRepository) FindByCheckInBetween(_ context.Context, start, end time.Time) ([]domain.Booking, error) {
	return r.t.where(filter.BookingCheckInBetween(start, end)), nil
}

func (r *MemoryBookingRepository) FindByCheckOutBetween(_ context.Context, start, end time.Time) ([]domain.Booking, error) {
	return r.t.where(filter.BookingCheckOutBetween(start, end)), nil
}

func (r *MemoryBookingRepository) FindByRoom(_ context.Context, roomID int64) ([]domain.Booking, error) {
	return r.t.where(filter.BookingForRoom(roomID)), nil
}

func (r *MemoryBookingRepository) FindByUser(_ context.Context, userID int64) ([]domain.Booking, error) {
	return r.t.where(filter.BookingForUser(userID)), nil
}

type MemoryInvoiceRepository struct {
	t *table[domain.Invoice]
}

func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{t: newTable(func(i *domain.Invoice) *int64 { return &i.ID })}
}

func (r *MemoryInvoiceRepository) List(_ context.Context) ([]domain.Invoice, error) {
	return r.t.all(), nil
}

func (r *MemoryInvoiceRepository) GetByID(_ context.Context, id int64) (*domain.Invoice, error) {
	return r.t.get(id)
}

func (r *MemoryInvoiceRepository) Save(_ context.Context, i *domain.Invoice) error {
	return r.t.save(i)
}

func (r *MemoryInvoiceRepository) Delete(_ context.Context, id int64) error {
	return r.t.delete(id)
}

func (r *MemoryInvoiceRepository) Exists(_ context.Context, id int64) (bool, error) {
	return r.t.exists(id), nil
}

func (r *MemoryInvoiceRepository) FindByUser(_ context.Context, userID int64) ([]domain.Invoice, error) {
	return r.t.where(filter.InvoiceForUser(userID)), nil
}

func (r *MemoryInvoiceRepository) FindByBooking(_ context.Context, bookingID int64) ([]domain.Invoice, error) {
	return r.t.where(filter.InvoiceForBooking(bookingID)), nil
}

func (r *MemoryInvoiceRepository) FindByPaymentStatus(_ context.Context, status domain.PaymentStatus) ([]domain.Invoice, error) {
	return r.t.where(filter.InvoicePaymentStatusIs(status)), nil
}

func (r *MemoryInvoiceRepository) FindByPaymentMethod(_ context.Context, method domain.PaymentMethod) ([]domain.Invoice, error) {
	return r.t.where(filter.InvoicePaymentMethodIs(method)), nil
}

func (r *MemoryInvoiceRepository) FindByInvoiceDateBetween(_ context.Context, start, end time.Time) ([]domain.Invoice, error) {
	return r.t.where(filter.InvoiceDateBetween(start, end)), nil
}

func (r *MemoryInvoiceRepository) FindByTotalAmountBetween(_ context.Context, min, max float64) ([]domain.Invoice, error) {
	return r.t.where(filter.InvoiceTotalBetween(min, max)), nil
}

var (
	_ RoomRepository    = (*MemoryRoomRepository)(nil)
	_ UserRepository    = (*MemoryUserRepository)(nil)
	_ BookingRepository = (*MemoryBookingRepository)(nil)
	_ InvoiceRepository = (*MemoryInvoiceRepository)(nil)
)
