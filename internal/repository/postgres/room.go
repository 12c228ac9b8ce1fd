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

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

const roomColumns = `id, room_no, floor, has_ac, ac_fee, daily_rate, monthly_rate, status, created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }) (*domain.Room, error) {
	r := &domain.Room{}
	err := row.Scan(&r.ID, &r.RoomNo, &r.Floor, &r.HasAC, &r.ACFee, &r.DailyRate, &r.MonthlyRate, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	logger.EnterMethod("roomRepository.Create", "roomNo", room.RoomNo)

	query := `INSERT INTO rooms (room_no, floor, has_ac, ac_fee, daily_rate, monthly_rate, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		room.RoomNo, room.Floor, room.HasAC, room.ACFee, room.DailyRate, room.MonthlyRate, room.Status, now, now,
	).Scan(&room.ID)
	if err != nil {
		logger.ExitMethodWithError("roomRepository.Create", err, "roomNo", room.RoomNo)
		return err
	}

	logger.ExitMethod("roomRepository.Create", "roomID", room.ID)
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	room, err := scanRoom(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Update edits rates, AC flag, floor and maintenance status. Occupancy status
// is owned by the rental transactions and is deliberately not written here.
func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	logger.EnterMethod("roomRepository.Update", "roomID", room.ID)

	query := `UPDATE rooms SET room_no=$1, floor=$2, has_ac=$3, ac_fee=$4, daily_rate=$5, monthly_rate=$6,
	          status = CASE WHEN status = 'RENTED' THEN status ELSE $7 END, updated_at=$8
	          WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query,
		room.RoomNo, room.Floor, room.HasAC, room.ACFee, room.DailyRate, room.MonthlyRate, room.Status, time.Now(), room.ID,
	)
	if err != nil {
		logger.ExitMethodWithError("roomRepository.Update", err, "roomID", room.ID)
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRoomNotFound
	}

	logger.ExitMethod("roomRepository.Update", "roomID", room.ID)
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id int32) error {
	logger.EnterMethod("roomRepository.Delete", "roomID", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		// The FK from rentals protects rooms with history; an active rental
		// also keeps the row RENTED, so restrict-violation means occupied.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			logger.ExitMethodWithError("roomRepository.Delete", domain.ErrRoomOccupied, "roomID", id)
			return domain.ErrRoomOccupied
		}
		logger.ExitMethodWithError("roomRepository.Delete", err, "roomID", id)
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRoomNotFound
	}

	logger.ExitMethod("roomRepository.Delete", "roomID", id)
	return nil
}

func (r *roomRepository) List(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY room_no ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []domain.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	return rooms, rows.Err()
}
