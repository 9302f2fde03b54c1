package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
)

type MotorcycleRepository interface {
	Create(ctx context.Context, m *domain.Motorcycle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error)
	GetByLicensePlate(ctx context.Context, plate string) (*domain.Motorcycle, error)
	ExistsByLicensePlate(ctx context.Context, plate string) (bool, error)
	// List returns all motorcycles, optionally filtered by a license plate
	// substring.
	List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error)
	Update(ctx context.Context, m *domain.Motorcycle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DeliveryPersonRepository interface {
	Create(ctx context.Context, dp *domain.DeliveryPerson) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DeliveryPerson, error)
	GetByCnpj(ctx context.Context, cnpj string) (*domain.DeliveryPerson, error)
	GetByLicenseNumber(ctx context.Context, number string) (*domain.DeliveryPerson, error)
	ExistsByCnpj(ctx context.Context, cnpj string) (bool, error)
	ExistsByLicenseNumber(ctx context.Context, number string) (bool, error)
	List(ctx context.Context) ([]domain.DeliveryPerson, error)
	Update(ctx context.Context, dp *domain.DeliveryPerson) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RentalRepository interface {
	Create(ctx context.Context, rt *domain.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListByMotorcycle(ctx context.Context, motorcycleID uuid.UUID) ([]domain.Rental, error)
	ListByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]domain.Rental, error)
	GetActiveByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) (*domain.Rental, error)
	ExistsActiveForMotorcycle(ctx context.Context, motorcycleID uuid.UUID) (bool, error)
	ExistsForMotorcycle(ctx context.Context, motorcycleID uuid.UUID) (bool, error)
	// ListOverdue returns active rentals whose expected end date falls
	// before the given date.
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error)
	Update(ctx context.Context, rt *domain.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.MotorcycleNotification) error
	List(ctx context.Context) ([]domain.MotorcycleNotification, error)
}
