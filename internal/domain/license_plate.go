package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Brazilian plate formats: the pre-Mercosul ABC1234, the Mercosul ABC1D23,
// and the hyphenated ABC-1234.
var (
	oldPlatePattern      = regexp.MustCompile(`^[A-Z]{3}\d{4}$`)
	mercosulPlatePattern = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
	hyphenPlatePattern   = regexp.MustCompile(`^[A-Z]{3}-\d{4}$`)
)

// LicensePlate is a validated, uppercased motorcycle license plate.
type LicensePlate struct {
	value string
}

// NewLicensePlate trims, uppercases, and validates a license plate.
func NewLicensePlate(plate string) (LicensePlate, error) {
	formatted := strings.ToUpper(strings.TrimSpace(plate))
	if formatted == "" {
		return LicensePlate{}, fmt.Errorf("%w: empty", ErrInvalidLicensePlate)
	}
	if !oldPlatePattern.MatchString(formatted) &&
		!mercosulPlatePattern.MatchString(formatted) &&
		!hyphenPlatePattern.MatchString(formatted) {
		return LicensePlate{}, fmt.Errorf("%w: %q", ErrInvalidLicensePlate, plate)
	}
	return LicensePlate{value: formatted}, nil
}

func (p LicensePlate) Value() string {
	return p.value
}

func (p LicensePlate) Equal(other LicensePlate) bool {
	return p.value == other.value
}

func (p LicensePlate) String() string {
	return p.value
}
