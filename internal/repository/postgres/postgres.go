package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"motorent-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.MotorcycleRepository
	repository.DeliveryPersonRepository
	repository.RentalRepository
	repository.UserRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		MotorcycleRepository:     NewMotorcycleRepository(db),
		DeliveryPersonRepository: NewDeliveryPersonRepository(db),
		RentalRepository:         NewRentalRepository(db),
		UserRepository:           NewUserRepository(db),
		NotificationRepository:   NewNotificationRepository(db),
	}
}
