package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/storage"
)

// license images are stored as PNG or BMP only
var licenseImageExtensions = map[string]string{
	"image/png": "png",
	"image/bmp": "bmp",
}

type deliveryPersonService struct {
	personRepo repository.DeliveryPersonRepository
	rentalRepo repository.RentalRepository
	store      storage.Storage
}

func NewDeliveryPersonService(
	personRepo repository.DeliveryPersonRepository,
	rentalRepo repository.RentalRepository,
	store storage.Storage,
) DeliveryPersonService {
	return &deliveryPersonService{
		personRepo: personRepo,
		rentalRepo: rentalRepo,
		store:      store,
	}
}

func (s *deliveryPersonService) CreateDeliveryPerson(ctx context.Context, name, cnpj string, birthDate time.Time, licenseNumber string, licenseType domain.LicenseType) (*domain.DeliveryPerson, error) {
	person, err := domain.NewDeliveryPerson(name, cnpj, birthDate, licenseNumber, licenseType)
	if err != nil {
		return nil, err
	}

	cnpjTaken, err := s.personRepo.ExistsByCnpj(ctx, person.Cnpj.Value())
	if err != nil {
		return nil, err
	}
	if cnpjTaken {
		return nil, fmt.Errorf("%w: %s", domain.ErrCnpjInUse, person.Cnpj)
	}

	licenseTaken, err := s.personRepo.ExistsByLicenseNumber(ctx, person.DriverLicense.Number())
	if err != nil {
		return nil, err
	}
	if licenseTaken {
		return nil, fmt.Errorf("%w: %s", domain.ErrLicenseNumberInUse, person.DriverLicense.Number())
	}

	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Delivery person registered", "deliveryPersonID", person.ID)
	return person, nil
}

func (s *deliveryPersonService) GetDeliveryPerson(ctx context.Context, id uuid.UUID) (*domain.DeliveryPerson, error) {
	return s.personRepo.GetByID(ctx, id)
}

func (s *deliveryPersonService) GetDeliveryPersonByCnpj(ctx context.Context, cnpj string) (*domain.DeliveryPerson, error) {
	// Normalize to the stored formatted representation first.
	parsed, err := domain.NewCnpj(cnpj)
	if err != nil {
		return nil, err
	}
	return s.personRepo.GetByCnpj(ctx, parsed.Value())
}

func (s *deliveryPersonService) GetDeliveryPersonByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.DeliveryPerson, error) {
	return s.personRepo.GetByLicenseNumber(ctx, strings.TrimSpace(licenseNumber))
}

func (s *deliveryPersonService) ListDeliveryPersons(ctx context.Context) ([]domain.DeliveryPerson, error) {
	return s.personRepo.List(ctx)
}

func (s *deliveryPersonService) UploadLicenseImage(ctx context.Context, id uuid.UUID, data []byte, contentType string) (*domain.DeliveryPerson, error) {
	ext, ok := licenseImageExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: license image must be PNG or BMP, got %q", domain.ErrOperationNotAllowed, contentType)
	}

	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("licenses/%s.%s", person.ID, ext)
	path, err := s.store.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store license image: %w", err)
	}

	if err := person.UpdateDriverLicenseImage(path); err != nil {
		return nil, err
	}
	if err := s.personRepo.Update(ctx, person); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "License image updated", "deliveryPersonID", person.ID, "path", path)
	return person, nil
}

func (s *deliveryPersonService) DeleteDeliveryPerson(ctx context.Context, id uuid.UUID) error {
	if _, err := s.personRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if _, err := s.rentalRepo.GetActiveByDeliveryPerson(ctx, id); err == nil {
		return fmt.Errorf("%w: delivery person has an active rental", domain.ErrOperationNotAllowed)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	return s.personRepo.Delete(ctx, id)
}
