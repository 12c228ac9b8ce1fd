package service

import (
	"context"
	"time"

	"roomstay-backend/internal/billing"
	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/logger"
	"roomstay-backend/internal/repository"
)

type invoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	rentalRepo   repository.RentalRepository
	roomRepo     repository.RoomRepository
	customerRepo repository.CustomerRepository
	rates        billing.Rates
	emailSvc     EmailService
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	rentalRepo repository.RentalRepository,
	roomRepo repository.RoomRepository,
	customerRepo repository.CustomerRepository,
	rates billing.Rates,
	emailSvc EmailService,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		rentalRepo:   rentalRepo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		rates:        rates,
		emailSvc:     emailSvc,
	}
}

// CreateInvoice runs the calculator against the rental's current snapshot and
// persists the result. The existence pre-check is best-effort; the invoice
// table's uniqueness constraint on (rental, period) is what actually
// guarantees at-most-one invoice per billing span.
func (s *invoiceService) CreateInvoice(ctx context.Context, rentalID int32, waterUnits, electricUnits int64) (*domain.Invoice, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	room, err := s.roomRepo.GetByID(ctx, rental.RoomID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	periodStart, periodEnd := billing.Period(rental, now)
	exists, err := s.invoiceRepo.ExistsForPeriod(ctx, rental.ID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrRentalAlreadyInvoiced
	}

	readings := billing.MeterReadings{WaterUnits: waterUnits, ElectricUnits: electricUnits}
	inv, billedExtraIDs, err := billing.Calculate(room, rental, customer, readings, s.rates, now)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Create(ctx, inv, billedExtraIDs); err != nil {
		return nil, err
	}

	if customer.Email != "" {
		if err := s.emailSvc.SendInvoiceIssued(ctx, customer.Email, customer.Name, inv.InvoiceNo, inv.Total); err != nil {
			logger.Warn("Failed to send invoice notification", "invoice_id", inv.ID, "error", err)
		}
	}

	return inv, nil
}

func (s *invoiceService) MarkPaid(ctx context.Context, invoiceID int32) (*domain.Invoice, error) {
	if err := s.invoiceRepo.MarkPaid(ctx, invoiceID); err != nil {
		return nil, err
	}
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	customer, custErr := s.customerRepo.GetByID(ctx, inv.CustomerID)
	if custErr == nil && customer.Email != "" {
		if err := s.emailSvc.SendPaymentReceived(ctx, customer.Email, customer.Name, inv.InvoiceNo, inv.Total); err != nil {
			logger.Warn("Failed to send payment notification", "invoice_id", inv.ID, "error", err)
		}
	}

	return inv, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID int32) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoiceRepo.List(ctx)
}

func (s *invoiceService) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListByCustomer(ctx, customerID)
}
