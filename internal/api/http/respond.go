package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// badRequestErrors are domain rule violations that map to 400.
var badRequestErrors = []error{
	domain.ErrInvalidAmount,
	domain.ErrInvalidCurrency,
	domain.ErrCurrencyMismatch,
	domain.ErrNegativeResult,
	domain.ErrNegativeMultiplier,
	domain.ErrInvalidStartDate,
	domain.ErrDateBeforeStart,
	domain.ErrCourierIneligible,
	domain.ErrInvalidPlan,
	domain.ErrAlreadyFinalized,
	domain.ErrReturnDateMissing,
	domain.ErrOperationNotAllowed,
	domain.ErrIncompleteData,
	domain.ErrInvalidLicensePlate,
	domain.ErrLicensePlateInUse,
	domain.ErrInvalidModel,
	domain.ErrInvalidYear,
	domain.ErrMotorcycleHasRentals,
	domain.ErrInvalidCnpj,
	domain.ErrCnpjInUse,
	domain.ErrInvalidDriverLicense,
	domain.ErrLicenseNumberInUse,
	domain.ErrInvalidName,
	domain.ErrUnderage,
	domain.ErrEmptyImagePath,
}

// respondError maps service and domain errors to HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, service.ErrUserAlreadyExists):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	}

	for _, candidate := range badRequestErrors {
		if errors.Is(err, candidate) {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	logger.Error("Unhandled error", "error", err)
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
