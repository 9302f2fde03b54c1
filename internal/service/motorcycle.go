package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/messaging"
	"motorent-backend/internal/repository"
)

type motorcycleService struct {
	motorcycleRepo repository.MotorcycleRepository
	rentalRepo     repository.RentalRepository
	publisher      messaging.EventPublisher
}

func NewMotorcycleService(
	motorcycleRepo repository.MotorcycleRepository,
	rentalRepo repository.RentalRepository,
	publisher messaging.EventPublisher,
) MotorcycleService {
	return &motorcycleService{
		motorcycleRepo: motorcycleRepo,
		rentalRepo:     rentalRepo,
		publisher:      publisher,
	}
}

func (s *motorcycleService) CreateMotorcycle(ctx context.Context, model string, year int, licensePlate string) (*domain.Motorcycle, error) {
	motorcycle, err := domain.NewMotorcycle(model, year, licensePlate)
	if err != nil {
		return nil, err
	}

	taken, err := s.motorcycleRepo.ExistsByLicensePlate(ctx, motorcycle.LicensePlate.Value())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %s", domain.ErrLicensePlateInUse, motorcycle.LicensePlate)
	}

	if err := s.motorcycleRepo.Create(ctx, motorcycle); err != nil {
		return nil, err
	}

	// Events are published only after a successful persist. A publish
	// failure does not roll back the registration.
	for _, event := range motorcycle.Events() {
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish motorcycle event",
				"motorcycleID", motorcycle.ID, "routingKey", event.RoutingKey(), "error", err)
		}
	}
	motorcycle.ClearEvents()

	logger.InfoContext(ctx, "Motorcycle registered",
		"motorcycleID", motorcycle.ID, "licensePlate", motorcycle.LicensePlate.Value())
	return motorcycle, nil
}

func (s *motorcycleService) GetMotorcycle(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	return s.motorcycleRepo.GetByID(ctx, id)
}

func (s *motorcycleService) ListMotorcycles(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error) {
	return s.motorcycleRepo.List(ctx, plateFilter)
}

func (s *motorcycleService) UpdateLicensePlate(ctx context.Context, id uuid.UUID, licensePlate string) (*domain.Motorcycle, error) {
	motorcycle, err := s.motorcycleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := motorcycle.UpdateLicensePlate(licensePlate); err != nil {
		return nil, err
	}

	existing, err := s.motorcycleRepo.GetByLicensePlate(ctx, motorcycle.LicensePlate.Value())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err == nil && existing.ID != motorcycle.ID {
		return nil, fmt.Errorf("%w: %s", domain.ErrLicensePlateInUse, motorcycle.LicensePlate)
	}

	if err := s.motorcycleRepo.Update(ctx, motorcycle); err != nil {
		return nil, err
	}
	return motorcycle, nil
}

func (s *motorcycleService) DeleteMotorcycle(ctx context.Context, id uuid.UUID) error {
	if _, err := s.motorcycleRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hasRentals, err := s.rentalRepo.ExistsForMotorcycle(ctx, id)
	if err != nil {
		return err
	}
	if hasRentals {
		return domain.ErrMotorcycleHasRentals
	}

	return s.motorcycleRepo.Delete(ctx, id)
}
