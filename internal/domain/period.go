package domain

import (
	"fmt"
	"time"
)

// RentalPeriod is the calendar span of a rental: the start date, the end
// date the plan predicts, and the actual end date once the motorcycle is
// returned. Day counts include both endpoints.
type RentalPeriod struct {
	startDate       time.Time
	expectedEndDate time.Time
	actualEndDate   *time.Time
	planType        PlanType
}

// NewRentalPeriod creates a period starting no earlier than tomorrow.
// The expected end date is derived from the plan duration.
func NewRentalPeriod(startDate time.Time, planType PlanType) (*RentalPeriod, error) {
	start := ToDate(startDate)
	if !start.After(Today()) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStartDate, FormatDate(start))
	}
	return RehydrateRentalPeriod(start, nil, planType), nil
}

// RehydrateRentalPeriod rebuilds a period from persisted values. The
// start-date-must-be-tomorrow rule applies only at creation time, so no
// validation happens here; this is also how simulation clones are built.
func RehydrateRentalPeriod(startDate time.Time, actualEndDate *time.Time, planType PlanType) *RentalPeriod {
	start := ToDate(startDate)
	p := &RentalPeriod{
		startDate: start,
		// -1 because the period includes the start day.
		expectedEndDate: start.AddDate(0, 0, planType.Days()-1),
		planType:        planType,
	}
	if actualEndDate != nil {
		end := ToDate(*actualEndDate)
		p.actualEndDate = &end
	}
	return p
}

// SetActualEndDate records the return date. It rejects dates before the
// start date. It does not guard against being called twice; the
// finalize-once rule is enforced by the owning Rental.
func (p *RentalPeriod) SetActualEndDate(endDate time.Time) error {
	end := ToDate(endDate)
	if end.Before(p.startDate) {
		return fmt.Errorf("%w: %s is before %s", ErrDateBeforeStart, FormatDate(end), FormatDate(p.startDate))
	}
	p.actualEndDate = &end
	return nil
}

func (p *RentalPeriod) StartDate() time.Time {
	return p.startDate
}

func (p *RentalPeriod) ExpectedEndDate() time.Time {
	return p.expectedEndDate
}

// ActualEndDate returns the recorded return date, or nil while the rental
// is still open.
func (p *RentalPeriod) ActualEndDate() *time.Time {
	if p.actualEndDate == nil {
		return nil
	}
	end := *p.actualEndDate
	return &end
}

func (p *RentalPeriod) PlanType() PlanType {
	return p.planType
}

// RentalDays returns the number of days actually rented, inclusive of both
// endpoints. Without a return date it is the plan's nominal duration.
func (p *RentalPeriod) RentalDays() int {
	if p.actualEndDate == nil {
		return p.planType.Days()
	}
	return DaysBetween(p.startDate, *p.actualEndDate) + 1
}

// IsEarlyReturn reports whether the motorcycle came back before the
// expected end date.
func (p *RentalPeriod) IsEarlyReturn() bool {
	return p.actualEndDate != nil && p.actualEndDate.Before(p.expectedEndDate)
}

// IsLateReturn reports whether the motorcycle came back after the expected
// end date.
func (p *RentalPeriod) IsLateReturn() bool {
	return p.actualEndDate != nil && p.actualEndDate.After(p.expectedEndDate)
}

// UnusedDays returns how many plan days were not used on an early return,
// and 0 otherwise.
func (p *RentalPeriod) UnusedDays() int {
	if !p.IsEarlyReturn() {
		return 0
	}
	return DaysBetween(*p.actualEndDate, p.expectedEndDate)
}

// ExtraDays returns how many days past the expected end date the rental
// ran on a late return, and 0 otherwise.
func (p *RentalPeriod) ExtraDays() int {
	if !p.IsLateReturn() {
		return 0
	}
	return DaysBetween(p.expectedEndDate, *p.actualEndDate)
}
