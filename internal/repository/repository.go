package repository

import (
	"context"
	"roomstay-backend/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int32) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	// Delete fails with domain.ErrRoomOccupied while an active rental
	// references the room.
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Room, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type ExtraRepository interface {
	Create(ctx context.Context, extra *domain.Extra) error
	GetByID(ctx context.Context, id int32) (*domain.Extra, error)
	List(ctx context.Context) ([]domain.Extra, error)
}

type RentalRepository interface {
	// CreateWithReservation inserts the rental plus its extras and flips the
	// room AVAILABLE -> RENTED in one transaction. The room row is locked for
	// the duration, so concurrent opens on one room see exactly one winner;
	// the losers get domain.ErrRoomUnavailable and no record is mutated.
	CreateWithReservation(ctx context.Context, rental *domain.Rental) error
	// Close transitions ACTIVE -> CLOSED, sets the check-out period and
	// releases the room, in one transaction.
	Close(ctx context.Context, rentalID int32, checkOut string) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	GetActiveByRoom(ctx context.Context, roomID int32) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	// ListUninvoiced returns active rentals with no invoice for their current
	// billing period: a daily rental is uninvoiced until its single
	// full-span invoice exists, a monthly rental until an invoice for
	// currentMonth ("2006-01") exists. A fresh query each call; no cursor
	// state retained between calls.
	ListUninvoiced(ctx context.Context, currentMonth string) ([]domain.Rental, error)
	ListExtras(ctx context.Context, rentalID int32) ([]domain.RentalExtra, error)
}

type InvoiceRepository interface {
	// Create persists the invoice, its lines, and marks the one-time extras
	// it billed, all in one transaction. The (rental_id, period_start,
	// period_end) uniqueness constraint is the authoritative duplicate
	// check; violation surfaces as domain.ErrDuplicateInvoice.
	Create(ctx context.Context, invoice *domain.Invoice, billedExtraIDs []int32) error
	GetByID(ctx context.Context, id int32) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Invoice, error)
	ExistsForPeriod(ctx context.Context, rentalID int32, periodStart, periodEnd string) (bool, error)
	ListUnpaid(ctx context.Context) ([]domain.Invoice, error)
	// MarkPaid performs a conditional UNPAID -> PAID update. Fails with
	// domain.ErrInvoiceAlreadyPaid when the invoice is paid and
	// domain.ErrInvoiceNotFound when the id does not exist.
	MarkPaid(ctx context.Context, id int32) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}
