package postgres

import (
	"context"
	"database/sql"
	"errors"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/logger"
	"roomstay-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	logger.EnterMethod("customerRepository.Create", "name", c.Name)

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO customers (name, phone, email, id_card_no) VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Name, c.Phone, c.Email, c.IDCardNo,
	).Scan(&c.ID)
	if err != nil {
		logger.ExitMethodWithError("customerRepository.Create", err, "name", c.Name)
		return err
	}

	logger.ExitMethod("customerRepository.Create", "customerID", c.ID)
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, phone, email, id_card_no FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.IDCardNo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, phone, email, id_card_no FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.IDCardNo); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
