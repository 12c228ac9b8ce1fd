package postgres

import (
	"context"
	"database/sql"
	"errors"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/logger"
	"roomstay-backend/internal/repository"
)

type extraRepository struct {
	db *sql.DB
}

func NewExtraRepository(db *sql.DB) repository.ExtraRepository {
	return &extraRepository{db: db}
}

func (r *extraRepository) Create(ctx context.Context, e *domain.Extra) error {
	logger.EnterMethod("extraRepository.Create", "name", e.Name)

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO extras (name, unit_price, charge_type) VALUES ($1, $2, $3) RETURNING id`,
		e.Name, e.UnitPrice, e.ChargeType,
	).Scan(&e.ID)
	if err != nil {
		logger.ExitMethodWithError("extraRepository.Create", err, "name", e.Name)
		return err
	}

	logger.ExitMethod("extraRepository.Create", "extraID", e.ID)
	return nil
}

func (r *extraRepository) GetByID(ctx context.Context, id int32) (*domain.Extra, error) {
	e := &domain.Extra{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, unit_price, charge_type FROM extras WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.UnitPrice, &e.ChargeType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrExtraNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *extraRepository) List(ctx context.Context) ([]domain.Extra, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, unit_price, charge_type FROM extras ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := []domain.Extra{}
	for rows.Next() {
		var e domain.Extra
		if err := rows.Scan(&e.ID, &e.Name, &e.UnitPrice, &e.ChargeType); err != nil {
			return nil, err
		}
		extras = append(extras, e)
	}
	return extras, rows.Err()
}
