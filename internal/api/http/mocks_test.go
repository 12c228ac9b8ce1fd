package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/service"
)

// MockRoomService
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) AddRoom(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomService) UpdateRoom(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomService) DeleteRoom(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomService) GetRoom(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) OpenRental(ctx context.Context, roomID, customerID int32, rentType domain.RentType, checkIn, checkOut string, extras []service.ExtraSelection) (*domain.Rental, error) {
	args := m.Called(ctx, roomID, customerID, rentType, checkIn, checkOut, extras)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CloseRental(ctx context.Context, rentalID int32, checkOut string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListUninvoiced(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) GetRentalByRoom(ctx context.Context, roomID int32) (*domain.Rental, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

// MockInvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, rentalID int32, waterUnits, electricUnits int64) (*domain.Invoice, error) {
	args := m.Called(ctx, rentalID, waterUnits, electricUnits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) MarkPaid(ctx context.Context, invoiceID int32) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetInvoice(ctx context.Context, invoiceID int32) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Invoice, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateExtra(ctx context.Context, extra *domain.Extra) error {
	args := m.Called(ctx, extra)
	return args.Error(0)
}
func (m *MockCatalogService) ListExtras(ctx context.Context) ([]domain.Extra, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Extra), args.Error(1)
}
func (m *MockCatalogService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCatalogService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockAuthService) CreateUser(ctx context.Context, email, name, password string, role domain.Role, customerID *int32) (*domain.User, error) {
	args := m.Called(ctx, email, name, password, role, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
