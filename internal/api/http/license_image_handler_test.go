package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	api "motorent-backend/internal/api/http"
	"motorent-backend/internal/domain"
)

type MockDeliveryPersonService struct {
	mock.Mock
}

func (m *MockDeliveryPersonService) CreateDeliveryPerson(ctx context.Context, name, cnpj string, birthDate time.Time, licenseNumber string, licenseType domain.LicenseType) (*domain.DeliveryPerson, error) {
	args := m.Called(ctx, name, cnpj, birthDate, licenseNumber, licenseType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonService) GetDeliveryPerson(ctx context.Context, id uuid.UUID) (*domain.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonService) GetDeliveryPersonByCnpj(ctx context.Context, cnpj string) (*domain.DeliveryPerson, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonService) GetDeliveryPersonByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.DeliveryPerson, error) {
	args := m.Called(ctx, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonService) ListDeliveryPersons(ctx context.Context) ([]domain.DeliveryPerson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonService) UploadLicenseImage(ctx context.Context, id uuid.UUID, data []byte, contentType string) (*domain.DeliveryPerson, error) {
	args := m.Called(ctx, id, data, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonService) DeleteDeliveryPerson(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// brokenReader fails partway through a read, like a dropped storage connection.
type brokenReader struct{}

func (brokenReader) Read(p []byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func (brokenReader) Close() error { return nil }

func personWithLicenseImage(t *testing.T) *domain.DeliveryPerson {
	t.Helper()
	person, err := domain.NewDeliveryPerson(
		"Joao Silva", "11222333000181", time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		"12345678900", domain.LicenseTypeA,
	)
	assert.NoError(t, err)
	assert.NoError(t, person.UpdateDriverLicenseImage("licenses/"+person.ID.String()+".png"))
	return person
}

func licenseImageRequest(id uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/delivery-persons/"+id.String()+"/license-image", nil)
	return mux.SetURLVars(req, map[string]string{"id": id.String()})
}

func TestDownloadLicenseImage(t *testing.T) {
	t.Run("Streams Stored Image", func(t *testing.T) {
		persons := new(MockDeliveryPersonService)
		store := new(MockStorage)
		handler := api.NewLicenseImageHandler(persons, store)

		person := personWithLicenseImage(t)
		key := person.DriverLicense.ImagePath()
		persons.On("GetDeliveryPerson", mock.Anything, person.ID).Return(person, nil)
		store.On("Download", mock.Anything, key).
			Return(io.NopCloser(strings.NewReader("png-bytes")), nil)

		rec := httptest.NewRecorder()
		handler.Download(rec, licenseImageRequest(person.ID))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("Stream Failure After Headers", func(t *testing.T) {
		persons := new(MockDeliveryPersonService)
		store := new(MockStorage)
		handler := api.NewLicenseImageHandler(persons, store)

		person := personWithLicenseImage(t)
		persons.On("GetDeliveryPerson", mock.Anything, person.ID).Return(person, nil)
		store.On("Download", mock.Anything, person.DriverLicense.ImagePath()).
			Return(brokenReader{}, nil)

		rec := httptest.NewRecorder()
		handler.Download(rec, licenseImageRequest(person.ID))

		// Headers are already committed when the copy fails.
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("No Image Uploaded", func(t *testing.T) {
		persons := new(MockDeliveryPersonService)
		store := new(MockStorage)
		handler := api.NewLicenseImageHandler(persons, store)

		person, err := domain.NewDeliveryPerson(
			"Joao Silva", "11222333000181", time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
			"12345678900", domain.LicenseTypeA,
		)
		assert.NoError(t, err)
		persons.On("GetDeliveryPerson", mock.Anything, person.ID).Return(person, nil)

		rec := httptest.NewRecorder()
		handler.Download(rec, licenseImageRequest(person.ID))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		store.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
	})
}
