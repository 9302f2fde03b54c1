package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	MotorcycleID     uuid.UUID `json:"motorcycle_id"`
	DeliveryPersonID uuid.UUID `json:"delivery_person_id"`
	StartDate        string    `json:"start_date"`
	PlanDays         int       `json:"plan_days"`
}

type returnMotorcycleRequest struct {
	ReturnDate string `json:"return_date"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "start_date must be YYYY-MM-DD"})
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), req.MotorcycleID, req.DeliveryPersonID,
		startDate, domain.PlanType(req.PlanDays))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toRentalResponse(rental))
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toRentalResponses(rentals))
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid rental id"})
		return
	}

	rental, err := h.rentals.GetRental(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *RentalHandler) ListByMotorcycle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid motorcycle id"})
		return
	}

	rentals, err := h.rentals.ListRentalsByMotorcycle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toRentalResponses(rentals))
}

func (h *RentalHandler) ListByDeliveryPerson(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid delivery person id"})
		return
	}

	rentals, err := h.rentals.ListRentalsByDeliveryPerson(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toRentalResponses(rentals))
}

func (h *RentalHandler) GetActiveByDeliveryPerson(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid delivery person id"})
		return
	}

	rental, err := h.rentals.GetActiveRentalByDeliveryPerson(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toRentalResponse(rental))
}

// Update rejects all modifications; rental terms are fixed at creation.
func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid rental id"})
		return
	}

	respondError(w, h.rentals.UpdateRental(r.Context(), id))
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid rental id"})
		return
	}

	var req returnMotorcycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	returnDate, err := domain.ParseDate(req.ReturnDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "return_date must be YYYY-MM-DD"})
		return
	}
	if domain.ToDate(returnDate).After(domain.Today()) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "return_date cannot be in the future"})
		return
	}

	charges, err := h.rentals.ReturnMotorcycle(r.Context(), id, returnDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, charges)
}

// Calculate simulates a return on the given date without finalizing the
// rental. Future dates are allowed here.
func (h *RentalHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid rental id"})
		return
	}

	returnDate, err := domain.ParseDate(r.URL.Query().Get("return_date"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "return_date query parameter must be YYYY-MM-DD"})
		return
	}

	charges, err := h.rentals.CalculateTotalAmount(r.Context(), id, returnDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, charges)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid rental id"})
		return
	}

	deleted, err := h.rentals.DeleteRental(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !deleted {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "rental not found"})
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
