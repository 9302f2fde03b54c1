package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Rental is the aggregate root of the rental lifecycle. It owns its period
// and daily rate; motorcycle and delivery person are referenced by ID.
// A rental is Active until ReturnMotorcycle sets the total amount, after
// which it is Finalized and immutable.
type Rental struct {
	ID               uuid.UUID
	MotorcycleID     uuid.UUID
	DeliveryPersonID uuid.UUID
	Period           *RentalPeriod
	DailyRate        Money
	TotalAmount      *Money
	CreatedAt        time.Time
}

// NewRental creates a rental for an eligible delivery person. The daily
// rate is fixed from the plan table at creation time.
func NewRental(
	motorcycleID uuid.UUID,
	deliveryPersonID uuid.UUID,
	startDate time.Time,
	planType PlanType,
	deliveryPerson *DeliveryPerson,
) (*Rental, error) {
	if !deliveryPerson.CanRentMotorcycle() {
		return nil, ErrCourierIneligible
	}

	dailyRate, err := planType.DailyRate()
	if err != nil {
		return nil, err
	}

	period, err := NewRentalPeriod(startDate, planType)
	if err != nil {
		return nil, err
	}

	return &Rental{
		ID:               uuid.New(),
		MotorcycleID:     motorcycleID,
		DeliveryPersonID: deliveryPersonID,
		Period:           period,
		DailyRate:        dailyRate,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

// RehydrateRental rebuilds a rental from persisted values without running
// creation-time validation.
func RehydrateRental(
	id uuid.UUID,
	motorcycleID uuid.UUID,
	deliveryPersonID uuid.UUID,
	period *RentalPeriod,
	dailyRate Money,
	totalAmount *Money,
	createdAt time.Time,
) *Rental {
	return &Rental{
		ID:               id,
		MotorcycleID:     motorcycleID,
		DeliveryPersonID: deliveryPersonID,
		Period:           period,
		DailyRate:        dailyRate,
		TotalAmount:      totalAmount,
		CreatedAt:        createdAt,
	}
}

// IsFinalized reports whether the rental has been closed out. An active
// rental is one that is not finalized.
func (r *Rental) IsFinalized() bool {
	return r.TotalAmount != nil
}

// ReturnMotorcycle records the return date and computes the total amount
// due. A finalized rental cannot be returned again.
func (r *Rental) ReturnMotorcycle(returnDate time.Time) error {
	if r.TotalAmount != nil {
		return ErrAlreadyFinalized
	}

	if err := r.Period.SetActualEndDate(returnDate); err != nil {
		return err
	}

	total, err := r.CalculateTotalAmount()
	if err != nil {
		return err
	}
	r.TotalAmount = &total
	return nil
}

// CalculateTotalAmount derives the amount owed from the recorded return
// date. The base amount always charges the days actually rented; an early
// return adds a penalty on the unused-day value, a late return adds the
// flat per-day surcharge.
func (r *Rental) CalculateTotalAmount() (Money, error) {
	if r.Period.ActualEndDate() == nil {
		return Money{}, ErrReturnDateMissing
	}

	baseAmount, err := r.DailyRate.Multiply(float64(r.Period.RentalDays()))
	if err != nil {
		return Money{}, err
	}

	if r.Period.IsEarlyReturn() {
		unusedAmount, err := r.DailyRate.Multiply(float64(r.Period.UnusedDays()))
		if err != nil {
			return Money{}, err
		}
		penalty, err := unusedAmount.Multiply(r.Period.PlanType().EarlyReturnPenaltyRate())
		if err != nil {
			return Money{}, err
		}
		return baseAmount.Add(penalty)
	}

	if r.Period.IsLateReturn() {
		extraAmount, err := LateReturnDailyCharge(r.DailyRate.Currency()).Multiply(float64(r.Period.ExtraDays()))
		if err != nil {
			return Money{}, err
		}
		return baseAmount.Add(extraAmount)
	}

	return baseAmount, nil
}

func (r *Rental) String() string {
	return fmt.Sprintf("rental %s (motorcycle %s, delivery person %s)", r.ID, r.MotorcycleID, r.DeliveryPersonID)
}
