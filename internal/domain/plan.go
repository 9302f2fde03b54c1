package domain

import "fmt"

// PlanType identifies one of the fixed rental plans. The numeric value is
// the plan duration in days, which is also how it is persisted.
type PlanType int

const (
	PlanSevenDays     PlanType = 7
	PlanFifteenDays   PlanType = 15
	PlanThirtyDays    PlanType = 30
	PlanFortyFiveDays PlanType = 45
	PlanFiftyDays     PlanType = 50
)

// lateReturnDailyChargeCents is the flat surcharge per extra day, independent
// of the plan.
const lateReturnDailyChargeCents = 5000

var planDailyRateCents = map[PlanType]int64{
	PlanSevenDays:     3000,
	PlanFifteenDays:   2800,
	PlanThirtyDays:    2200,
	PlanFortyFiveDays: 2000,
	PlanFiftyDays:     1800,
}

// Valid reports whether p is one of the known plans.
func (p PlanType) Valid() bool {
	_, ok := planDailyRateCents[p]
	return ok
}

// Days returns the plan duration in days.
func (p PlanType) Days() int {
	return int(p)
}

// DailyRate returns the fixed daily rate for the plan.
func (p PlanType) DailyRate() (Money, error) {
	cents, ok := planDailyRateCents[p]
	if !ok {
		return Money{}, fmt.Errorf("%w: %d", ErrInvalidPlan, p)
	}
	return MoneyFromCents(cents, DefaultCurrency), nil
}

// EarlyReturnPenaltyRate returns the penalty percentage applied to the
// unused-day value when the motorcycle is returned early.
func (p PlanType) EarlyReturnPenaltyRate() float64 {
	switch p {
	case PlanSevenDays:
		return 0.2
	case PlanFifteenDays:
		return 0.4
	default:
		return 0
	}
}

// LateReturnDailyCharge returns the flat per-day surcharge for late returns.
func LateReturnDailyCharge(currency string) Money {
	return MoneyFromCents(lateReturnDailyChargeCents, currency)
}
