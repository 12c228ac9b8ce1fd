package service

import (
	"context"

	"roomstay-backend/internal/domain"
)

// ExtraSelection names a catalog extra to attach when opening a rental.
// The current catalog price is snapshotted at attachment time.
type ExtraSelection struct {
	ExtraID  int32 `json:"extra_id"`
	Quantity int32 `json:"quantity"`
}

type RoomService interface {
	AddRoom(ctx context.Context, room *domain.Room) error
	UpdateRoom(ctx context.Context, room *domain.Room) error
	DeleteRoom(ctx context.Context, id int32) error
	ListRooms(ctx context.Context) ([]domain.Room, error)
	GetRoom(ctx context.Context, id int32) (*domain.Room, error)
}

type RentalService interface {
	OpenRental(ctx context.Context, roomID, customerID int32, rentType domain.RentType, checkIn, checkOut string, extras []ExtraSelection) (*domain.Rental, error)
	CloseRental(ctx context.Context, rentalID int32, checkOut string) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	ListUninvoiced(ctx context.Context) ([]domain.Rental, error)
	GetRentalByRoom(ctx context.Context, roomID int32) (*domain.Rental, error)
}

type InvoiceService interface {
	CreateInvoice(ctx context.Context, rentalID int32, waterUnits, electricUnits int64) (*domain.Invoice, error)
	MarkPaid(ctx context.Context, invoiceID int32) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID int32) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Invoice, error)
}

type CatalogService interface {
	CreateExtra(ctx context.Context, extra *domain.Extra) error
	ListExtras(ctx context.Context) ([]domain.Extra, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CreateUser(ctx context.Context, email, name, password string, role domain.Role, customerID *int32) (*domain.User, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, email, name, roomNo string) error
	SendInvoiceIssued(ctx context.Context, email, name, invoiceNo string, total int64) error
	SendPaymentReceived(ctx context.Context, email, name, invoiceNo string, total int64) error
	SendInvoiceReminder(ctx context.Context, email, name, invoiceNo string, total int64) error
}
