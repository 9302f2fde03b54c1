package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
)

type rentalService struct {
	rentalRepo     repository.RentalRepository
	motorcycleRepo repository.MotorcycleRepository
	personRepo     repository.DeliveryPersonRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	motorcycleRepo repository.MotorcycleRepository,
	personRepo repository.DeliveryPersonRepository,
) RentalService {
	return &rentalService{
		rentalRepo:     rentalRepo,
		motorcycleRepo: motorcycleRepo,
		personRepo:     personRepo,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, motorcycleID, deliveryPersonID uuid.UUID, startDate time.Time, planType domain.PlanType) (*domain.Rental, error) {
	if _, err := s.motorcycleRepo.GetByID(ctx, motorcycleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: motorcycle %s", domain.ErrNotFound, motorcycleID)
		}
		return nil, err
	}

	inUse, err := s.rentalRepo.ExistsActiveForMotorcycle(ctx, motorcycleID)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, fmt.Errorf("%w: motorcycle is already rented", domain.ErrOperationNotAllowed)
	}

	person, err := s.personRepo.GetByID(ctx, deliveryPersonID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: delivery person %s", domain.ErrNotFound, deliveryPersonID)
		}
		return nil, err
	}

	if _, err := s.rentalRepo.GetActiveByDeliveryPerson(ctx, deliveryPersonID); err == nil {
		return nil, fmt.Errorf("%w: delivery person already has an active rental", domain.ErrOperationNotAllowed)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	rental, err := domain.NewRental(motorcycleID, deliveryPersonID, startDate, planType, person)
	if err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		// Partial unique indexes on active rentals catch races the checks
		// above cannot.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: conflicting active rental", domain.ErrOperationNotAllowed)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "Rental created",
		"rentalID", rental.ID, "motorcycleID", motorcycleID,
		"deliveryPersonID", deliveryPersonID, "plan", planType.Days())
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListRentalsByMotorcycle(ctx context.Context, motorcycleID uuid.UUID) ([]domain.Rental, error) {
	return s.rentalRepo.ListByMotorcycle(ctx, motorcycleID)
}

func (s *rentalService) ListRentalsByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]domain.Rental, error) {
	return s.rentalRepo.ListByDeliveryPerson(ctx, deliveryPersonID)
}

func (s *rentalService) GetActiveRentalByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) (*domain.Rental, error) {
	return s.rentalRepo.GetActiveByDeliveryPerson(ctx, deliveryPersonID)
}

func (s *rentalService) UpdateRental(ctx context.Context, id uuid.UUID) error {
	return fmt.Errorf("%w: rentals cannot be updated, return the motorcycle instead", domain.ErrOperationNotAllowed)
}

func (s *rentalService) ReturnMotorcycle(ctx context.Context, id uuid.UUID, returnDate time.Time) (*RentalCharges, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.IsFinalized() {
		return nil, fmt.Errorf("%w: rental %s already finalized", domain.ErrAlreadyFinalized, id)
	}

	if err := rental.ReturnMotorcycle(returnDate); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Rental finalized",
		"rentalID", rental.ID, "totalAmount", rental.TotalAmount.String(),
		"actualDays", rental.Period.RentalDays())
	return buildRentalCharges(rental, *rental.TotalAmount)
}

func (s *rentalService) CalculateTotalAmount(ctx context.Context, id uuid.UUID, returnDate time.Time) (*RentalCharges, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Period == nil {
		return nil, fmt.Errorf("%w: rental %s has no period", domain.ErrIncompleteData, id)
	}
	if _, err := s.motorcycleRepo.GetByID(ctx, rental.MotorcycleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: motorcycle %s", domain.ErrIncompleteData, rental.MotorcycleID)
		}
		return nil, err
	}
	if _, err := s.personRepo.GetByID(ctx, rental.DeliveryPersonID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: delivery person %s", domain.ErrIncompleteData, rental.DeliveryPersonID)
		}
		return nil, err
	}

	// Simulate on a clone so the stored rental is untouched.
	clone := domain.RehydrateRental(
		rental.ID, rental.MotorcycleID, rental.DeliveryPersonID,
		domain.RehydrateRentalPeriod(rental.Period.StartDate(), nil, rental.Period.PlanType()),
		rental.DailyRate, nil, rental.CreatedAt)
	if err := clone.Period.SetActualEndDate(returnDate); err != nil {
		return nil, err
	}

	total, err := clone.CalculateTotalAmount()
	if err != nil {
		return nil, err
	}
	return buildRentalCharges(clone, total)
}

func (s *rentalService) DeleteRental(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := s.rentalRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func buildRentalCharges(rt *domain.Rental, total domain.Money) (*RentalCharges, error) {
	charges := &RentalCharges{
		RentalID:      rt.ID,
		TotalAmount:   total.Amount(),
		Currency:      total.Currency(),
		ActualDays:    rt.Period.RentalDays(),
		IsEarlyReturn: rt.Period.IsEarlyReturn(),
		IsLateReturn:  rt.Period.IsLateReturn(),
	}

	if charges.IsEarlyReturn {
		unused := rt.Period.UnusedDays()
		unusedAmount, err := rt.DailyRate.Multiply(float64(unused))
		if err != nil {
			return nil, err
		}
		penalty, err := unusedAmount.Multiply(rt.Period.PlanType().EarlyReturnPenaltyRate())
		if err != nil {
			return nil, err
		}
		penaltyAmount := penalty.Amount()
		charges.UnusedDays = &unused
		charges.PenaltyAmount = &penaltyAmount
	}

	if charges.IsLateReturn {
		extra := rt.Period.ExtraDays()
		extraCharge, err := domain.LateReturnDailyCharge(rt.DailyRate.Currency()).Multiply(float64(extra))
		if err != nil {
			return nil, err
		}
		extraAmount := extraCharge.Amount()
		charges.ExtraDays = &extra
		charges.ExtraAmount = &extraAmount
	}

	return charges, nil
}
