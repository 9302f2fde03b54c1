package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

type DeliveryPersonHandler struct {
	persons service.DeliveryPersonService
}

func NewDeliveryPersonHandler(persons service.DeliveryPersonService) *DeliveryPersonHandler {
	return &DeliveryPersonHandler{persons: persons}
}

type createDeliveryPersonRequest struct {
	Name          string `json:"name"`
	Cnpj          string `json:"cnpj"`
	BirthDate     string `json:"birth_date"`
	LicenseNumber string `json:"license_number"`
	LicenseType   string `json:"license_type"`
}

type uploadLicenseImageRequest struct {
	ImageBase64 string `json:"image_base64"`
	ContentType string `json:"content_type"`
}

func (h *DeliveryPersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeliveryPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	birthDate, err := domain.ParseDate(req.BirthDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "birth_date must be YYYY-MM-DD"})
		return
	}

	person, err := h.persons.CreateDeliveryPerson(r.Context(), req.Name, req.Cnpj, birthDate,
		req.LicenseNumber, domain.LicenseType(req.LicenseType))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toDeliveryPersonResponse(person))
}

func (h *DeliveryPersonHandler) List(w http.ResponseWriter, r *http.Request) {
	persons, err := h.persons.ListDeliveryPersons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDeliveryPersonResponses(persons))
}

func (h *DeliveryPersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid delivery person id"})
		return
	}

	person, err := h.persons.GetDeliveryPerson(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDeliveryPersonResponse(person))
}

func (h *DeliveryPersonHandler) GetByCnpj(w http.ResponseWriter, r *http.Request) {
	person, err := h.persons.GetDeliveryPersonByCnpj(r.Context(), mux.Vars(r)["cnpj"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDeliveryPersonResponse(person))
}

func (h *DeliveryPersonHandler) GetByLicenseNumber(w http.ResponseWriter, r *http.Request) {
	person, err := h.persons.GetDeliveryPersonByLicenseNumber(r.Context(), mux.Vars(r)["licenseNumber"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDeliveryPersonResponse(person))
}

func (h *DeliveryPersonHandler) UploadLicenseImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid delivery person id"})
		return
	}

	var req uploadLicenseImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "image_base64 is not valid base64"})
		return
	}

	person, err := h.persons.UploadLicenseImage(r.Context(), id, data, req.ContentType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDeliveryPersonResponse(person))
}

func (h *DeliveryPersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid delivery person id"})
		return
	}

	if err := h.persons.DeleteDeliveryPerson(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
