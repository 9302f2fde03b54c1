package http

import (
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
)

type motorcycleResponse struct {
	ID           uuid.UUID `json:"id"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"license_plate"`
	CreatedAt    time.Time `json:"created_at"`
}

func toMotorcycleResponse(m *domain.Motorcycle) motorcycleResponse {
	return motorcycleResponse{
		ID:           m.ID,
		Model:        m.Model,
		Year:         m.Year,
		LicensePlate: m.LicensePlate.Value(),
		CreatedAt:    m.CreatedAt,
	}
}

func toMotorcycleResponses(ms []domain.Motorcycle) []motorcycleResponse {
	out := make([]motorcycleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, toMotorcycleResponse(&ms[i]))
	}
	return out
}

type deliveryPersonResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Cnpj             string    `json:"cnpj"`
	BirthDate        string    `json:"birth_date"`
	LicenseNumber    string    `json:"license_number"`
	LicenseType      string    `json:"license_type"`
	LicenseImagePath string    `json:"license_image_path,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toDeliveryPersonResponse(dp *domain.DeliveryPerson) deliveryPersonResponse {
	return deliveryPersonResponse{
		ID:               dp.ID,
		Name:             dp.Name,
		Cnpj:             dp.Cnpj.Value(),
		BirthDate:        domain.FormatDate(dp.BirthDate),
		LicenseNumber:    dp.DriverLicense.Number(),
		LicenseType:      string(dp.DriverLicense.Category()),
		LicenseImagePath: dp.DriverLicense.ImagePath(),
		CreatedAt:        dp.CreatedAt,
	}
}

func toDeliveryPersonResponses(dps []domain.DeliveryPerson) []deliveryPersonResponse {
	out := make([]deliveryPersonResponse, 0, len(dps))
	for i := range dps {
		out = append(out, toDeliveryPersonResponse(&dps[i]))
	}
	return out
}

type rentalResponse struct {
	ID               uuid.UUID `json:"id"`
	MotorcycleID     uuid.UUID `json:"motorcycle_id"`
	DeliveryPersonID uuid.UUID `json:"delivery_person_id"`
	StartDate        string    `json:"start_date"`
	ExpectedEndDate  string    `json:"expected_end_date"`
	ActualEndDate    *string   `json:"actual_end_date,omitempty"`
	PlanDays         int       `json:"plan_days"`
	DailyRate        float64   `json:"daily_rate"`
	Currency         string    `json:"currency"`
	TotalAmount      *float64  `json:"total_amount,omitempty"`
	Finalized        bool      `json:"finalized"`
	CreatedAt        time.Time `json:"created_at"`
}

func toRentalResponse(rt *domain.Rental) rentalResponse {
	resp := rentalResponse{
		ID:               rt.ID,
		MotorcycleID:     rt.MotorcycleID,
		DeliveryPersonID: rt.DeliveryPersonID,
		StartDate:        domain.FormatDate(rt.Period.StartDate()),
		ExpectedEndDate:  domain.FormatDate(rt.Period.ExpectedEndDate()),
		PlanDays:         rt.Period.PlanType().Days(),
		DailyRate:        rt.DailyRate.Amount(),
		Currency:         rt.DailyRate.Currency(),
		Finalized:        rt.IsFinalized(),
		CreatedAt:        rt.CreatedAt,
	}
	if end := rt.Period.ActualEndDate(); end != nil {
		date := domain.FormatDate(*end)
		resp.ActualEndDate = &date
	}
	if rt.TotalAmount != nil {
		amount := rt.TotalAmount.Amount()
		resp.TotalAmount = &amount
	}
	return resp
}

func toRentalResponses(rts []domain.Rental) []rentalResponse {
	out := make([]rentalResponse, 0, len(rts))
	for i := range rts {
		out = append(out, toRentalResponse(&rts[i]))
	}
	return out
}
