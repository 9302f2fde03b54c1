package domain

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an outbound notification raised by an aggregate. Events
// are collected on the aggregate and published by the service layer after
// a successful persist.
type DomainEvent interface {
	// RoutingKey identifies the event type on the message bus.
	RoutingKey() string
	OccurredAt() time.Time
}

// MotorcycleCreatedEvent announces a newly registered motorcycle.
type MotorcycleCreatedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	MotorcycleID uuid.UUID `json:"motorcycle_id"`
	LicensePlate string    `json:"license_plate"`
	Year         int       `json:"year"`
	Model        string    `json:"model"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewMotorcycleCreatedEvent(motorcycleID uuid.UUID, licensePlate string, year int, model string) MotorcycleCreatedEvent {
	return MotorcycleCreatedEvent{
		EventID:      uuid.New(),
		MotorcycleID: motorcycleID,
		LicensePlate: licensePlate,
		Year:         year,
		Model:        model,
		Timestamp:    time.Now().UTC(),
	}
}

func (e MotorcycleCreatedEvent) RoutingKey() string {
	return "motorcycle_created_event"
}

func (e MotorcycleCreatedEvent) OccurredAt() time.Time {
	return e.Timestamp
}
