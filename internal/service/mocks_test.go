package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"roomstay-backend/internal/domain"
)

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockExtraRepo
type MockExtraRepo struct {
	mock.Mock
}

func (m *MockExtraRepo) Create(ctx context.Context, extra *domain.Extra) error {
	args := m.Called(ctx, extra)
	return args.Error(0)
}
func (m *MockExtraRepo) GetByID(ctx context.Context, id int32) (*domain.Extra, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Extra), args.Error(1)
}
func (m *MockExtraRepo) List(ctx context.Context) ([]domain.Extra, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Extra), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateWithReservation(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) Close(ctx context.Context, rentalID int32, checkOut string) error {
	args := m.Called(ctx, rentalID, checkOut)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetActiveByRoom(ctx context.Context, roomID int32) (*domain.Rental, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListUninvoiced(ctx context.Context, currentMonth string) ([]domain.Rental, error) {
	args := m.Called(ctx, currentMonth)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListExtras(ctx context.Context, rentalID int32) ([]domain.RentalExtra, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.RentalExtra), args.Error(1)
}

// MockInvoiceRepo
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice, billedExtraIDs []int32) error {
	args := m.Called(ctx, invoice, billedExtraIDs)
	return args.Error(0)
}
func (m *MockInvoiceRepo) GetByID(ctx context.Context, id int32) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Invoice, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) ExistsForPeriod(ctx context.Context, rentalID int32, periodStart, periodEnd string) (bool, error) {
	args := m.Called(ctx, rentalID, periodStart, periodEnd)
	return args.Bool(0), args.Error(1)
}
func (m *MockInvoiceRepo) ListUnpaid(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) MarkPaid(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, email, name, roomNo string) error {
	args := m.Called(ctx, email, name, roomNo)
	return args.Error(0)
}
func (m *MockEmailService) SendInvoiceIssued(ctx context.Context, email, name, invoiceNo string, total int64) error {
	args := m.Called(ctx, email, name, invoiceNo, total)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceived(ctx context.Context, email, name, invoiceNo string, total int64) error {
	args := m.Called(ctx, email, name, invoiceNo, total)
	return args.Error(0)
}
func (m *MockEmailService) SendInvoiceReminder(ctx context.Context, email, name, invoiceNo string, total int64) error {
	args := m.Called(ctx, email, name, invoiceNo, total)
	return args.Error(0)
}
