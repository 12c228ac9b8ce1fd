package service

import (
	"context"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/repository"
)

type catalogService struct {
	extraRepo    repository.ExtraRepository
	customerRepo repository.CustomerRepository
}

func NewCatalogService(extraRepo repository.ExtraRepository, customerRepo repository.CustomerRepository) CatalogService {
	return &catalogService{extraRepo: extraRepo, customerRepo: customerRepo}
}

func (s *catalogService) CreateExtra(ctx context.Context, extra *domain.Extra) error {
	if extra.ChargeType != domain.ChargeTypeOneTime && extra.ChargeType != domain.ChargeTypeMonthly {
		return domain.ErrInvalidChargeType
	}
	return s.extraRepo.Create(ctx, extra)
}

func (s *catalogService) ListExtras(ctx context.Context) ([]domain.Extra, error) {
	return s.extraRepo.List(ctx)
}

func (s *catalogService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	return s.customerRepo.Create(ctx, customer)
}

func (s *catalogService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}
