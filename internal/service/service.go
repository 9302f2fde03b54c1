package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string, role domain.UserRole) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

type MotorcycleService interface {
	CreateMotorcycle(ctx context.Context, model string, year int, licensePlate string) (*domain.Motorcycle, error)
	GetMotorcycle(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error)
	ListMotorcycles(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error)
	UpdateLicensePlate(ctx context.Context, id uuid.UUID, licensePlate string) (*domain.Motorcycle, error)
	DeleteMotorcycle(ctx context.Context, id uuid.UUID) error
}

type DeliveryPersonService interface {
	CreateDeliveryPerson(ctx context.Context, name, cnpj string, birthDate time.Time, licenseNumber string, licenseType domain.LicenseType) (*domain.DeliveryPerson, error)
	GetDeliveryPerson(ctx context.Context, id uuid.UUID) (*domain.DeliveryPerson, error)
	GetDeliveryPersonByCnpj(ctx context.Context, cnpj string) (*domain.DeliveryPerson, error)
	GetDeliveryPersonByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.DeliveryPerson, error)
	ListDeliveryPersons(ctx context.Context) ([]domain.DeliveryPerson, error)
	UploadLicenseImage(ctx context.Context, id uuid.UUID, data []byte, contentType string) (*domain.DeliveryPerson, error)
	DeleteDeliveryPerson(ctx context.Context, id uuid.UUID) error
}

// RentalCharges is the cost breakdown of a finalized or simulated return.
type RentalCharges struct {
	RentalID      uuid.UUID `json:"rental_id"`
	TotalAmount   float64   `json:"total_amount"`
	Currency      string    `json:"currency"`
	ActualDays    int       `json:"actual_days"`
	IsEarlyReturn bool      `json:"is_early_return"`
	IsLateReturn  bool      `json:"is_late_return"`
	UnusedDays    *int      `json:"unused_days,omitempty"`
	ExtraDays     *int      `json:"extra_days,omitempty"`
	PenaltyAmount *float64  `json:"penalty_amount,omitempty"`
	ExtraAmount   *float64  `json:"extra_amount,omitempty"`
}

type RentalService interface {
	CreateRental(ctx context.Context, motorcycleID, deliveryPersonID uuid.UUID, startDate time.Time, planType domain.PlanType) (*domain.Rental, error)
	GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	ListRentalsByMotorcycle(ctx context.Context, motorcycleID uuid.UUID) ([]domain.Rental, error)
	ListRentalsByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]domain.Rental, error)
	GetActiveRentalByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) (*domain.Rental, error)
	// UpdateRental always fails: a rental's terms are fixed at creation and
	// its only state change goes through ReturnMotorcycle.
	UpdateRental(ctx context.Context, id uuid.UUID) error
	ReturnMotorcycle(ctx context.Context, id uuid.UUID, returnDate time.Time) (*RentalCharges, error)
	// CalculateTotalAmount simulates a return on the given date without
	// changing the rental.
	CalculateTotalAmount(ctx context.Context, id uuid.UUID, returnDate time.Time) (*RentalCharges, error)
	// DeleteRental reports whether a rental was removed.
	DeleteRental(ctx context.Context, id uuid.UUID) (bool, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context) ([]domain.MotorcycleNotification, error)
}

type EmailService interface {
	SendOverdueRentalReport(ctx context.Context, toEmail string, rentals []domain.Rental) error
}
