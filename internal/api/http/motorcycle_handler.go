package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"motorent-backend/internal/service"
)

type MotorcycleHandler struct {
	motorcycles service.MotorcycleService
}

func NewMotorcycleHandler(motorcycles service.MotorcycleService) *MotorcycleHandler {
	return &MotorcycleHandler{motorcycles: motorcycles}
}

type createMotorcycleRequest struct {
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
}

type updateLicensePlateRequest struct {
	LicensePlate string `json:"license_plate"`
}

func (h *MotorcycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMotorcycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	motorcycle, err := h.motorcycles.CreateMotorcycle(r.Context(), req.Model, req.Year, req.LicensePlate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toMotorcycleResponse(motorcycle))
}

func (h *MotorcycleHandler) List(w http.ResponseWriter, r *http.Request) {
	motorcycles, err := h.motorcycles.ListMotorcycles(r.Context(), r.URL.Query().Get("plate"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toMotorcycleResponses(motorcycles))
}

func (h *MotorcycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid motorcycle id"})
		return
	}

	motorcycle, err := h.motorcycles.GetMotorcycle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toMotorcycleResponse(motorcycle))
}

func (h *MotorcycleHandler) UpdateLicensePlate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid motorcycle id"})
		return
	}

	var req updateLicensePlateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	motorcycle, err := h.motorcycles.UpdateLicensePlate(r.Context(), id, req.LicensePlate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toMotorcycleResponse(motorcycle))
}

func (h *MotorcycleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid motorcycle id"})
		return
	}

	if err := h.motorcycles.DeleteMotorcycle(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
