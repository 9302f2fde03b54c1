package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Motorcycle is a rentable vehicle. Creation raises a MotorcycleCreatedEvent
// which stays attached to the aggregate until the service layer drains it.
type Motorcycle struct {
	ID           uuid.UUID
	Model        string
	Year         int
	LicensePlate LicensePlate
	CreatedAt    time.Time

	events []DomainEvent
}

// NewMotorcycle validates model, year, and plate, and records the creation
// event.
func NewMotorcycle(model string, year int, licensePlate string) (*Motorcycle, error) {
	if strings.TrimSpace(model) == "" {
		return nil, ErrInvalidModel
	}
	currentYear := time.Now().Year()
	if year < 1900 || year > currentYear+1 {
		return nil, fmt.Errorf("%w: year must be between 1900 and %d", ErrInvalidYear, currentYear+1)
	}

	plate, err := NewLicensePlate(licensePlate)
	if err != nil {
		return nil, err
	}

	m := &Motorcycle{
		ID:           uuid.New(),
		Model:        model,
		Year:         year,
		LicensePlate: plate,
		CreatedAt:    time.Now().UTC(),
	}
	m.events = append(m.events, NewMotorcycleCreatedEvent(m.ID, plate.Value(), year, model))
	return m, nil
}

// RehydrateMotorcycle rebuilds a motorcycle from persisted values. No
// creation event is raised.
func RehydrateMotorcycle(id uuid.UUID, model string, year int, plate LicensePlate, createdAt time.Time) *Motorcycle {
	return &Motorcycle{ID: id, Model: model, Year: year, LicensePlate: plate, CreatedAt: createdAt}
}

// UpdateLicensePlate replaces the plate after validating the new value.
func (m *Motorcycle) UpdateLicensePlate(licensePlate string) error {
	plate, err := NewLicensePlate(licensePlate)
	if err != nil {
		return err
	}
	m.LicensePlate = plate
	return nil
}

// Events returns the pending domain events.
func (m *Motorcycle) Events() []DomainEvent {
	return m.events
}

// ClearEvents drops the pending events after they have been published.
func (m *Motorcycle) ClearEvents() {
	m.events = nil
}
