package domain

import (
	"fmt"
	"regexp"
)

var nonDigits = regexp.MustCompile(`[^\d]`)

// Cnpj is a validated Brazilian company registration number, stored in the
// formatted XX.XXX.XXX/XXXX-XX representation.
type Cnpj struct {
	value string
}

// NewCnpj strips formatting, verifies both check digits, and stores the
// canonical formatted value.
func NewCnpj(cnpj string) (Cnpj, error) {
	if cnpj == "" {
		return Cnpj{}, fmt.Errorf("%w: empty", ErrInvalidCnpj)
	}

	digits := nonDigits.ReplaceAllString(cnpj, "")
	if !validCnpjDigits(digits) {
		return Cnpj{}, fmt.Errorf("%w: %q", ErrInvalidCnpj, cnpj)
	}

	formatted := fmt.Sprintf("%s.%s.%s/%s-%s",
		digits[0:2], digits[2:5], digits[5:8], digits[8:12], digits[12:14])
	return Cnpj{value: formatted}, nil
}

func validCnpjDigits(cnpj string) bool {
	if len(cnpj) != 14 {
		return false
	}

	// All-equal digits pass the checksum but are not valid CNPJs.
	allEqual := true
	for i := 1; i < 14; i++ {
		if cnpj[i] != cnpj[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	weight1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(cnpj[i]-'0') * weight1[i]
	}
	remainder := sum % 11
	digit1 := 0
	if remainder >= 2 {
		digit1 = 11 - remainder
	}

	weight2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum = 0
	for i := 0; i < 12; i++ {
		sum += int(cnpj[i]-'0') * weight2[i]
	}
	sum += digit1 * weight2[12]
	remainder = sum % 11
	digit2 := 0
	if remainder >= 2 {
		digit2 = 11 - remainder
	}

	return int(cnpj[12]-'0') == digit1 && int(cnpj[13]-'0') == digit2
}

// RehydrateCnpj rebuilds a CNPJ from its persisted formatted value.
func RehydrateCnpj(value string) Cnpj {
	return Cnpj{value: value}
}

func (c Cnpj) Value() string {
	return c.value
}

func (c Cnpj) Equal(other Cnpj) bool {
	return c.value == other.value
}

func (c Cnpj) String() string {
	return c.value
}
