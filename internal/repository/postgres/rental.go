package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/logger"
	"roomstay-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, room_id, customer_id, rent_type, check_in, check_out, status, created_at, updated_at`

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.RoomID, &rt.CustomerID, &rt.RentType, &rt.CheckIn, &rt.CheckOut, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// CreateWithReservation locks the room row, verifies it is AVAILABLE, inserts
// the rental with its extras and flips the room to RENTED. Everything commits
// together or not at all, so two concurrent opens on the same room produce
// exactly one ACTIVE rental.
func (r *rentalRepository) CreateWithReservation(ctx context.Context, rt *domain.Rental) error {
	logger.EnterMethod("rentalRepository.CreateWithReservation", "roomID", rt.RoomID, "customerID", rt.CustomerID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status domain.RoomStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM rooms WHERE id = $1 FOR UPDATE`, rt.RoomID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethodWithError("rentalRepository.CreateWithReservation", domain.ErrRoomNotFound, "roomID", rt.RoomID)
		return domain.ErrRoomNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.RoomStatusAvailable {
		logger.ExitMethodWithError("rentalRepository.CreateWithReservation", domain.ErrRoomUnavailable, "roomID", rt.RoomID, "status", status)
		return domain.ErrRoomUnavailable
	}

	now := time.Now()
	err = tx.QueryRowContext(ctx,
		`INSERT INTO rentals (room_id, customer_id, rent_type, check_in, check_out, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		rt.RoomID, rt.CustomerID, rt.RentType, rt.CheckIn, rt.CheckOut, domain.RentalStatusActive, now, now,
	).Scan(&rt.ID)
	if err != nil {
		logger.ExitMethodWithError("rentalRepository.CreateWithReservation", err, "roomID", rt.RoomID)
		return err
	}
	rt.Status = domain.RentalStatusActive

	for i := range rt.Extras {
		ex := &rt.Extras[i]
		ex.RentalID = rt.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO rental_extras (rental_id, extra_id, name, unit_price, quantity, charge_type, billed)
			 VALUES ($1, $2, $3, $4, $5, $6, false) RETURNING id`,
			ex.RentalID, ex.ExtraID, ex.Name, ex.UnitPrice, ex.Quantity, ex.ChargeType,
		).Scan(&ex.ID)
		if err != nil {
			logger.ExitMethodWithError("rentalRepository.CreateWithReservation", err, "rentalID", rt.ID)
			return err
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE rooms SET status = $1, updated_at = $2 WHERE id = $3`,
		domain.RoomStatusRented, now, rt.RoomID,
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.ExitMethod("rentalRepository.CreateWithReservation", "rentalID", rt.ID)
	return nil
}

// Close transitions the rental to CLOSED and releases its room in one
// transaction. A closed rental is terminal.
func (r *rentalRepository) Close(ctx context.Context, rentalID int32, checkOut string) error {
	logger.EnterMethod("rentalRepository.Close", "rentalID", rentalID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var roomID int32
	var status domain.RentalStatus
	err = tx.QueryRowContext(ctx, `SELECT room_id, status FROM rentals WHERE id = $1 FOR UPDATE`, rentalID).Scan(&roomID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRentalNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.RentalStatusActive {
		logger.ExitMethodWithError("rentalRepository.Close", domain.ErrRentalClosed, "rentalID", rentalID)
		return domain.ErrRentalClosed
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`UPDATE rentals SET status = $1, check_out = $2, updated_at = $3 WHERE id = $4`,
		domain.RentalStatusClosed, checkOut, now, rentalID,
	)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE rooms SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		domain.RoomStatusAvailable, now, roomID, domain.RoomStatusRented,
	)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err != nil {
		return err
	} else if rows == 0 {
		return domain.ErrRoomNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.ExitMethod("rentalRepository.Close", "rentalID", rentalID, "roomID", roomID)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt, err := scanRental(r.db.QueryRowContext(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	extras, err := r.ListExtras(ctx, rt.ID)
	if err != nil {
		return nil, err
	}
	rt.Extras = extras
	return rt, nil
}

func (r *rentalRepository) GetActiveByRoom(ctx context.Context, roomID int32) (*domain.Rental, error) {
	rt, err := scanRental(r.db.QueryRowContext(ctx,
		`SELECT `+rentalColumns+` FROM rentals WHERE room_id = $1 AND status = $2`, roomID, domain.RentalStatusActive))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	extras, err := r.ListExtras(ctx, rt.ID)
	if err != nil {
		return nil, err
	}
	rt.Extras = extras
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rentals := []domain.Rental{}
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListUninvoiced(ctx context.Context, currentMonth string) ([]domain.Rental, error) {
	logger.EnterMethod("rentalRepository.ListUninvoiced", "currentMonth", currentMonth)

	// A daily rental has one billing span (its full term); a monthly rental
	// is billed per calendar month.
	query := `
		SELECT ` + rentalColumns + `
		FROM rentals r
		WHERE r.status = $1
		  AND NOT EXISTS (
			SELECT 1 FROM invoices i
			WHERE i.rental_id = r.id
			  AND (r.rent_type = $2 OR (r.rent_type = $3 AND i.period_start = $4))
		  )
		ORDER BY r.created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query,
		domain.RentalStatusActive, domain.RentTypeDaily, domain.RentTypeMonthly, currentMonth)
	if err != nil {
		logger.ExitMethodWithError("rentalRepository.ListUninvoiced", err)
		return nil, err
	}
	defer rows.Close()

	rentals := []domain.Rental{}
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("rentalRepository.ListUninvoiced", "count", len(rentals))
	return rentals, nil
}

func (r *rentalRepository) ListExtras(ctx context.Context, rentalID int32) ([]domain.RentalExtra, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, rental_id, extra_id, name, unit_price, quantity, charge_type, billed
		 FROM rental_extras WHERE rental_id = $1 ORDER BY id ASC`, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := []domain.RentalExtra{}
	for rows.Next() {
		var ex domain.RentalExtra
		if err := rows.Scan(&ex.ID, &ex.RentalID, &ex.ExtraID, &ex.Name, &ex.UnitPrice, &ex.Quantity, &ex.ChargeType, &ex.Billed); err != nil {
			return nil, err
		}
		extras = append(extras, ex)
	}
	return extras, rows.Err()
}
