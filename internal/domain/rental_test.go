package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/domain"
)

func eligibleDeliveryPerson(t *testing.T) *domain.DeliveryPerson {
	t.Helper()
	person, err := domain.NewDeliveryPerson(
		"Joao Silva", "11.222.333/0001-81", date("1990-05-20"),
		"12345678900", domain.LicenseTypeA,
	)
	assert.NoError(t, err)
	return person
}

func activeRental(t *testing.T, start string, plan domain.PlanType) *domain.Rental {
	t.Helper()
	rate, err := plan.DailyRate()
	assert.NoError(t, err)
	period := domain.RehydrateRentalPeriod(date(start), nil, plan)
	return domain.RehydrateRental(
		uuid.New(), uuid.New(), uuid.New(), period, rate, nil, date(start),
	)
}

func TestNewRental(t *testing.T) {
	start := domain.Today().AddDate(0, 0, 1)

	t.Run("Success", func(t *testing.T) {
		person := eligibleDeliveryPerson(t)
		rental, err := domain.NewRental(uuid.New(), person.ID, start, domain.PlanSevenDays, person)
		assert.NoError(t, err)
		assert.False(t, rental.IsFinalized())
		assert.Equal(t, 30.0, rental.DailyRate.Amount())
		assert.Equal(t, start.AddDate(0, 0, 6), rental.Period.ExpectedEndDate())
	})

	t.Run("Category B Cannot Rent", func(t *testing.T) {
		person, err := domain.NewDeliveryPerson(
			"Maria Souza", "11.222.333/0001-81", date("1985-01-15"),
			"98765432100", domain.LicenseTypeB,
		)
		assert.NoError(t, err)

		_, err = domain.NewRental(uuid.New(), person.ID, start, domain.PlanSevenDays, person)
		assert.ErrorIs(t, err, domain.ErrCourierIneligible)
	})

	t.Run("Unknown Plan", func(t *testing.T) {
		person := eligibleDeliveryPerson(t)
		_, err := domain.NewRental(uuid.New(), person.ID, start, domain.PlanType(10), person)
		assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	})

	t.Run("Start Date Not After Today", func(t *testing.T) {
		person := eligibleDeliveryPerson(t)
		_, err := domain.NewRental(uuid.New(), person.ID, domain.Today(), domain.PlanSevenDays, person)
		assert.ErrorIs(t, err, domain.ErrInvalidStartDate)
	})
}

func TestReturnMotorcycle(t *testing.T) {
	t.Run("On Time Seven Day Plan", func(t *testing.T) {
		rental := activeRental(t, "2026-03-10", domain.PlanSevenDays)
		assert.NoError(t, rental.ReturnMotorcycle(date("2026-03-16")))
		assert.True(t, rental.IsFinalized())
		assert.Equal(t, 210.00, rental.TotalAmount.Amount())
	})

	t.Run("Early Return Adds Penalty", func(t *testing.T) {
		// 3 days used at 30.00 plus 20% of the 4 unused days.
		rental := activeRental(t, "2026-03-10", domain.PlanSevenDays)
		assert.NoError(t, rental.ReturnMotorcycle(date("2026-03-12")))
		assert.Equal(t, 114.00, rental.TotalAmount.Amount())
	})

	t.Run("Late Return Adds Flat Surcharge", func(t *testing.T) {
		// 10 days used at 30.00 plus 3 extra days at 50.00.
		rental := activeRental(t, "2026-03-10", domain.PlanSevenDays)
		assert.NoError(t, rental.ReturnMotorcycle(date("2026-03-19")))
		assert.Equal(t, 450.00, rental.TotalAmount.Amount())
	})

	t.Run("Fifteen Day Plan Early Return", func(t *testing.T) {
		// 10 days used at 28.00 plus 40% of the 5 unused days.
		rental := activeRental(t, "2026-03-10", domain.PlanFifteenDays)
		assert.NoError(t, rental.ReturnMotorcycle(date("2026-03-19")))
		assert.Equal(t, 336.00, rental.TotalAmount.Amount())
	})

	t.Run("Thirty Day Plan Early Return Has No Penalty", func(t *testing.T) {
		// 10 days used at 22.00, penalty rate is zero.
		rental := activeRental(t, "2026-03-10", domain.PlanThirtyDays)
		assert.NoError(t, rental.ReturnMotorcycle(date("2026-03-19")))
		assert.Equal(t, 220.00, rental.TotalAmount.Amount())
	})

	t.Run("Finalize Only Once", func(t *testing.T) {
		rental := activeRental(t, "2026-03-10", domain.PlanSevenDays)
		assert.NoError(t, rental.ReturnMotorcycle(date("2026-03-16")))

		err := rental.ReturnMotorcycle(date("2026-03-17"))
		assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
		assert.Equal(t, 210.00, rental.TotalAmount.Amount())
	})

	t.Run("Return Before Start", func(t *testing.T) {
		rental := activeRental(t, "2026-03-10", domain.PlanSevenDays)
		err := rental.ReturnMotorcycle(date("2026-03-09"))
		assert.ErrorIs(t, err, domain.ErrDateBeforeStart)
		assert.False(t, rental.IsFinalized())
	})
}

func TestCalculateTotalAmount(t *testing.T) {
	t.Run("Requires Return Date", func(t *testing.T) {
		rental := activeRental(t, "2026-03-10", domain.PlanSevenDays)
		_, err := rental.CalculateTotalAmount()
		assert.ErrorIs(t, err, domain.ErrReturnDateMissing)
	})

	t.Run("Single Day Rental", func(t *testing.T) {
		rental := activeRental(t, "2026-03-10", domain.PlanSevenDays)
		assert.NoError(t, rental.Period.SetActualEndDate(date("2026-03-10")))

		total, err := rental.CalculateTotalAmount()
		assert.NoError(t, err)
		// 1 day at 30.00 plus 20% of the 6 unused days.
		assert.Equal(t, 66.00, total.Amount())
	})
}

func TestPlanRates(t *testing.T) {
	cases := []struct {
		plan      domain.PlanType
		rateCents int64
		penalty   float64
	}{
		{domain.PlanSevenDays, 3000, 0.2},
		{domain.PlanFifteenDays, 2800, 0.4},
		{domain.PlanThirtyDays, 2200, 0},
		{domain.PlanFortyFiveDays, 2000, 0},
		{domain.PlanFiftyDays, 1800, 0},
	}
	for _, tc := range cases {
		assert.True(t, tc.plan.Valid())
		rate, err := tc.plan.DailyRate()
		assert.NoError(t, err)
		assert.Equal(t, tc.rateCents, rate.Cents())
		assert.Equal(t, tc.penalty, tc.plan.EarlyReturnPenaltyRate())
	}

	assert.False(t, domain.PlanType(14).Valid())
	assert.Equal(t, int64(5000), domain.LateReturnDailyCharge("BRL").Cents())
}
