package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const minimumRenterAge = 18

// DeliveryPerson is a courier who rents motorcycles. Eligibility to rent is
// gated by the driver's-license category.
type DeliveryPerson struct {
	ID            uuid.UUID
	Name          string
	Cnpj          Cnpj
	BirthDate     time.Time
	DriverLicense DriverLicense
	CreatedAt     time.Time
}

// NewDeliveryPerson validates name, age, CNPJ, and driver license.
func NewDeliveryPerson(name, cnpj string, birthDate time.Time, licenseNumber string, licenseType LicenseType) (*DeliveryPerson, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	if ToDate(birthDate).After(Today().AddDate(-minimumRenterAge, 0, 0)) {
		return nil, ErrUnderage
	}

	cnpjVO, err := NewCnpj(cnpj)
	if err != nil {
		return nil, err
	}
	license, err := NewDriverLicense(licenseNumber, licenseType)
	if err != nil {
		return nil, err
	}

	return &DeliveryPerson{
		ID:            uuid.New(),
		Name:          name,
		Cnpj:          cnpjVO,
		BirthDate:     ToDate(birthDate),
		DriverLicense: license,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// RehydrateDeliveryPerson rebuilds a delivery person from persisted values.
func RehydrateDeliveryPerson(id uuid.UUID, name string, cnpj Cnpj, birthDate time.Time, license DriverLicense, createdAt time.Time) *DeliveryPerson {
	return &DeliveryPerson{
		ID:            id,
		Name:          name,
		Cnpj:          cnpj,
		BirthDate:     ToDate(birthDate),
		DriverLicense: license,
		CreatedAt:     createdAt,
	}
}

// CanRentMotorcycle reports whether the license category permits renting.
func (d *DeliveryPerson) CanRentMotorcycle() bool {
	return d.DriverLicense.CanDriveMotorcycle()
}

// UpdateDriverLicenseImage records the storage path of the license image.
func (d *DeliveryPerson) UpdateDriverLicenseImage(imagePath string) error {
	return d.DriverLicense.UpdateImagePath(imagePath)
}
