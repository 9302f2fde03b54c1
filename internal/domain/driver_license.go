package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// LicenseType is the driver's-license category. Category A covers
// motorcycles; AB covers both motorcycles and cars.
type LicenseType string

const (
	LicenseTypeA  LicenseType = "A"
	LicenseTypeB  LicenseType = "B"
	LicenseTypeAB LicenseType = "AB"
)

// Valid reports whether t is a known license category.
func (t LicenseType) Valid() bool {
	switch t {
	case LicenseTypeA, LicenseTypeB, LicenseTypeAB:
		return true
	}
	return false
}

// Brazilian CNH numbers are 11 numeric digits.
var licenseNumberPattern = regexp.MustCompile(`^\d{11}$`)

// DriverLicense holds a delivery person's license number, category, and the
// storage path of the license image. The image path is the only mutable
// field.
type DriverLicense struct {
	number    string
	category  LicenseType
	imagePath string
}

// NewDriverLicense validates the license number and category.
func NewDriverLicense(number string, category LicenseType) (DriverLicense, error) {
	formatted := strings.TrimSpace(number)
	if !licenseNumberPattern.MatchString(formatted) {
		return DriverLicense{}, fmt.Errorf("%w: %q", ErrInvalidDriverLicense, number)
	}
	if !category.Valid() {
		return DriverLicense{}, fmt.Errorf("%w: unknown category %q", ErrInvalidDriverLicense, category)
	}
	return DriverLicense{number: formatted, category: category}, nil
}

// RehydrateDriverLicense rebuilds a license from persisted values.
func RehydrateDriverLicense(number string, category LicenseType, imagePath string) DriverLicense {
	return DriverLicense{number: number, category: category, imagePath: imagePath}
}

// UpdateImagePath records where the license image is stored.
func (l *DriverLicense) UpdateImagePath(imagePath string) error {
	if strings.TrimSpace(imagePath) == "" {
		return ErrEmptyImagePath
	}
	l.imagePath = imagePath
	return nil
}

// CanDriveMotorcycle reports whether the category permits two-wheelers.
func (l DriverLicense) CanDriveMotorcycle() bool {
	return l.category == LicenseTypeA || l.category == LicenseTypeAB
}

func (l DriverLicense) Number() string {
	return l.number
}

func (l DriverLicense) Category() LicenseType {
	return l.category
}

func (l DriverLicense) ImagePath() string {
	return l.imagePath
}
