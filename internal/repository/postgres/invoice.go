package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/logger"
	"roomstay-backend/internal/repository"
)

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, invoice_no, rental_id, room_no, customer_id, customer_name, rent_type,
	base_rent, ac_fee, water_unit, water_rate, water_fee, electric_unit, electric_rate, electric_fee,
	total, status, period_start, period_end, created_at, paid_at`

func scanInvoice(row interface{ Scan(...any) error }) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	err := row.Scan(&inv.ID, &inv.InvoiceNo, &inv.RentalID, &inv.RoomNo, &inv.CustomerID, &inv.CustomerName, &inv.RentType,
		&inv.BaseRent, &inv.ACFee, &inv.WaterUnit, &inv.WaterRate, &inv.WaterFee, &inv.ElectricUnit, &inv.ElectricRate, &inv.ElectricFee,
		&inv.Total, &inv.Status, &inv.PeriodStart, &inv.PeriodEnd, &inv.CreatedAt, &inv.PaidAt)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Create persists the invoice with its lines and marks the one-time extras it
// billed, in one transaction. The unique constraint on (rental_id,
// period_start, period_end) is the authoritative duplicate check; the
// calculator's pre-check is best-effort only.
func (r *invoiceRepository) Create(ctx context.Context, inv *domain.Invoice, billedExtraIDs []int32) error {
	logger.EnterMethod("invoiceRepository.Create", "rentalID", inv.RentalID, "periodStart", inv.PeriodStart)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO invoices (
			invoice_no, rental_id, room_no, customer_id, customer_name, rent_type,
			base_rent, ac_fee, water_unit, water_rate, water_fee,
			electric_unit, electric_rate, electric_fee,
			total, status, period_start, period_end, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, query,
		inv.InvoiceNo, inv.RentalID, inv.RoomNo, inv.CustomerID, inv.CustomerName, inv.RentType,
		inv.BaseRent, inv.ACFee, inv.WaterUnit, inv.WaterRate, inv.WaterFee,
		inv.ElectricUnit, inv.ElectricRate, inv.ElectricFee,
		inv.Total, inv.Status, inv.PeriodStart, inv.PeriodEnd, time.Now(),
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			logger.ExitMethodWithError("invoiceRepository.Create", domain.ErrDuplicateInvoice, "rentalID", inv.RentalID)
			return domain.ErrDuplicateInvoice
		}
		logger.ExitMethodWithError("invoiceRepository.Create", err, "rentalID", inv.RentalID)
		return err
	}

	for i := range inv.Lines {
		line := &inv.Lines[i]
		line.InvoiceID = inv.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO invoice_lines (invoice_id, rental_extra_id, name, quantity, unit_price, amount)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			line.InvoiceID, line.RentalExtraID, line.Name, line.Quantity, line.UnitPrice, line.Amount,
		).Scan(&line.ID)
		if err != nil {
			return err
		}
	}

	if len(billedExtraIDs) > 0 {
		_, err = tx.ExecContext(ctx,
			`UPDATE rental_extras SET billed = true WHERE id = ANY($1)`,
			pq.Array(billedExtraIDs),
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.ExitMethod("invoiceRepository.Create", "invoiceID", inv.ID)
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int32) (*domain.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	lines, err := r.listLines(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines
	return inv, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC`)
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
}

func (r *invoiceRepository) ListUnpaid(ctx context.Context) ([]domain.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE status = $1 ORDER BY created_at ASC`, domain.InvoiceStatusUnpaid)
}

func (r *invoiceRepository) list(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepository) ExistsForPeriod(ctx context.Context, rentalID int32, periodStart, periodEnd string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM invoices WHERE rental_id = $1 AND period_start = $2 AND period_end = $3)`,
		rentalID, periodStart, periodEnd,
	).Scan(&exists)
	return exists, err
}

// MarkPaid transitions UNPAID -> PAID with a conditional update, so a payment
// submitted twice cannot be processed twice even under races.
func (r *invoiceRepository) MarkPaid(ctx context.Context, id int32) error {
	logger.EnterMethod("invoiceRepository.MarkPaid", "invoiceID", id)

	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = $1, paid_at = $2 WHERE id = $3 AND status = $4`,
		domain.InvoiceStatusPaid, time.Now(), id, domain.InvoiceStatusUnpaid,
	)
	if err != nil {
		logger.ExitMethodWithError("invoiceRepository.MarkPaid", err, "invoiceID", id)
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Either the invoice does not exist or it is already paid.
		var status domain.InvoiceStatus
		err := r.db.QueryRowContext(ctx, `SELECT status FROM invoices WHERE id = $1`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrInvoiceNotFound
		}
		if err != nil {
			return err
		}
		logger.ExitMethodWithError("invoiceRepository.MarkPaid", domain.ErrInvoiceAlreadyPaid, "invoiceID", id)
		return domain.ErrInvoiceAlreadyPaid
	}

	logger.ExitMethod("invoiceRepository.MarkPaid", "invoiceID", id)
	return nil
}

func (r *invoiceRepository) listLines(ctx context.Context, invoiceID int32) ([]domain.InvoiceLine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, invoice_id, rental_extra_id, name, quantity, unit_price, amount
		 FROM invoice_lines WHERE invoice_id = $1 ORDER BY id ASC`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []domain.InvoiceLine{}
	for rows.Next() {
		var l domain.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.RentalExtraID, &l.Name, &l.Quantity, &l.UnitPrice, &l.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
