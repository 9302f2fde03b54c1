package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/service"
	"motorent-backend/internal/storage"
)

// LicenseImageHandler serves stored driver-license images.
type LicenseImageHandler struct {
	persons service.DeliveryPersonService
	store   storage.Storage
}

func NewLicenseImageHandler(persons service.DeliveryPersonService, store storage.Storage) *LicenseImageHandler {
	return &LicenseImageHandler{persons: persons, store: store}
}

func (h *LicenseImageHandler) Download(w http.ResponseWriter, r *http.Request) {
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

	key := person.DriverLicense.ImagePath()
	if key == "" {
		respondError(w, fmt.Errorf("%w: no license image uploaded", domain.ErrNotFound))
		return
	}

	file, err := h.store.Download(r.Context(), key)
	if err != nil {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "license image not found"})
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".png":
		contentType = "image/png"
	case ".bmp":
		contentType = "image/bmp"
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, file); err != nil {
		// Headers are already out, so the error can only be logged.
		logger.Error("Failed to stream license image", "key", key, "error", err)
	}
}
