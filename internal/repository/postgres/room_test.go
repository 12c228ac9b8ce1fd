package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"roomstay-backend/internal/domain"
)

func TestRoomRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := &domain.Room{
		RoomNo:      "301",
		Floor:       3,
		HasAC:       true,
		ACFee:       120,
		DailyRate:   200,
		MonthlyRate: 3000,
		Status:      domain.RoomStatusAvailable,
	}

	mock.ExpectQuery("INSERT INTO rooms").
		WithArgs(room.RoomNo, room.Floor, room.HasAC, room.ACFee, room.DailyRate, room.MonthlyRate, room.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err = repo.Create(ctx, room)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), room.ID)
}

func TestRoomRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := &domain.Room{ID: 1, RoomNo: "301", Floor: 3, MonthlyRate: 3200, Status: domain.RoomStatusAvailable}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rooms SET").
			WithArgs(room.RoomNo, room.Floor, room.HasAC, room.ACFee, room.DailyRate, room.MonthlyRate, room.Status, sqlmock.AnyArg(), room.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, room)
		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec("UPDATE rooms SET").
			WithArgs(room.RoomNo, room.Floor, room.HasAC, room.ACFee, room.DailyRate, room.MonthlyRate, room.Status, sqlmock.AnyArg(), room.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, room)
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})
}

func TestRoomRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRoomRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM rooms").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("Referenced By Rental", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM rooms").
			WithArgs(int32(1)).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Delete(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrRoomOccupied)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM rooms").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})
}
