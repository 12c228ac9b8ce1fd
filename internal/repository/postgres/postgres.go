package postgres

import (
	"database/sql"
	"roomstay-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RoomRepository
	repository.CustomerRepository
	repository.ExtraRepository
	repository.RentalRepository
	repository.InvoiceRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		RoomRepository:     NewRoomRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		ExtraRepository:    NewExtraRepository(db),
		RentalRepository:   NewRentalRepository(db),
		InvoiceRepository:  NewInvoiceRepository(db),
		UserRepository:     NewUserRepository(db),
	}
}
