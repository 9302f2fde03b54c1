package domain

import (
	"time"

	"github.com/google/uuid"
)

// MotorcycleNotification is the consumer-side record of a motorcycle
// creation event that matched the year-2024 notification rule.
type MotorcycleNotification struct {
	ID           uuid.UUID `json:"id"`
	MotorcycleID uuid.UUID `json:"motorcycle_id"`
	LicensePlate string    `json:"license_plate"`
	Year         int       `json:"year"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"created_at"`
}
