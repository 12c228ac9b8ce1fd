package service

import (
	"context"
	"time"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/logger"
	"roomstay-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	roomRepo     repository.RoomRepository
	customerRepo repository.CustomerRepository
	extraRepo    repository.ExtraRepository
	emailSvc     EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	roomRepo repository.RoomRepository,
	customerRepo repository.CustomerRepository,
	extraRepo repository.ExtraRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		extraRepo:    extraRepo,
		emailSvc:     emailSvc,
	}
}

// periodLayout returns the date layout for a rent type: day granularity for
// daily rentals, month granularity for monthly ones.
func periodLayout(rentType domain.RentType) (string, error) {
	switch rentType {
	case domain.RentTypeDaily:
		return "2006-01-02", nil
	case domain.RentTypeMonthly:
		return "2006-01", nil
	}
	return "", domain.ErrInvalidRentType
}

func validatePeriod(rentType domain.RentType, checkIn, checkOut string) error {
	layout, err := periodLayout(rentType)
	if err != nil {
		return err
	}
	start, err := time.Parse(layout, checkIn)
	if err != nil {
		return domain.ErrInvalidDateRange
	}
	end, err := time.Parse(layout, checkOut)
	if err != nil {
		return domain.ErrInvalidDateRange
	}
	if end.Before(start) {
		return domain.ErrInvalidDateRange
	}
	return nil
}

// OpenRental validates the request, snapshots extra prices from the catalog
// and creates the rental together with the room reservation in one atomic
// step. Both check-in and check-out are required at creation time; a monthly
// tenancy is a fixed-term lease with its end month known up front.
func (s *rentalService) OpenRental(ctx context.Context, roomID, customerID int32, rentType domain.RentType, checkIn, checkOut string, extras []ExtraSelection) (*domain.Rental, error) {
	if err := validatePeriod(rentType, checkIn, checkOut); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// Price snapshots. Later catalog edits must not touch this rental.
	rentalExtras := make([]domain.RentalExtra, 0, len(extras))
	for _, sel := range extras {
		if sel.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		ex, err := s.extraRepo.GetByID(ctx, sel.ExtraID)
		if err != nil {
			return nil, err
		}
		rentalExtras = append(rentalExtras, domain.RentalExtra{
			ExtraID:    ex.ID,
			Name:       ex.Name,
			UnitPrice:  ex.UnitPrice,
			Quantity:   sel.Quantity,
			ChargeType: ex.ChargeType,
		})
	}

	rental := &domain.Rental{
		RoomID:     roomID,
		CustomerID: customerID,
		RentType:   rentType,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Extras:     rentalExtras,
	}

	// Availability is checked under the room row lock inside the repository;
	// a pre-check here would just race.
	if err := s.rentalRepo.CreateWithReservation(ctx, rental); err != nil {
		return nil, err
	}

	room, roomErr := s.roomRepo.GetByID(ctx, roomID)
	if roomErr == nil && customer.Email != "" {
		if err := s.emailSvc.SendRentalConfirmation(ctx, customer.Email, customer.Name, room.RoomNo); err != nil {
			logger.Warn("Failed to send rental confirmation", "rental_id", rental.ID, "error", err)
		}
	}

	return rental, nil
}

func (s *rentalService) CloseRental(ctx context.Context, rentalID int32, checkOut string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalClosed
	}
	if checkOut == "" {
		checkOut = rental.CheckOut
	}
	if err := validatePeriod(rental.RentType, rental.CheckIn, checkOut); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Close(ctx, rentalID, checkOut); err != nil {
		return nil, err
	}
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListUninvoiced(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.ListUninvoiced(ctx, time.Now().UTC().Format("2006-01"))
}

func (s *rentalService) GetRentalByRoom(ctx context.Context, roomID int32) (*domain.Rental, error) {
	return s.rentalRepo.GetActiveByRoom(ctx, roomID)
}
