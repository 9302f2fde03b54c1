package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/domain"
)

func TestNewCnpj(t *testing.T) {
	t.Run("Formatted Input", func(t *testing.T) {
		cnpj, err := domain.NewCnpj("11.222.333/0001-81")
		assert.NoError(t, err)
		assert.Equal(t, "11.222.333/0001-81", cnpj.Value())
	})

	t.Run("Bare Digits Are Formatted", func(t *testing.T) {
		cnpj, err := domain.NewCnpj("11222333000181")
		assert.NoError(t, err)
		assert.Equal(t, "11.222.333/0001-81", cnpj.Value())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"", "123", "11.222.333/0001-80", "11111111111111"} {
			_, err := domain.NewCnpj(raw)
			assert.ErrorIs(t, err, domain.ErrInvalidCnpj, raw)
		}
	})

	t.Run("Equal", func(t *testing.T) {
		a, _ := domain.NewCnpj("11222333000181")
		b, _ := domain.NewCnpj("11.222.333/0001-81")
		assert.True(t, a.Equal(b))
	})
}

func TestNewDriverLicense(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		license, err := domain.NewDriverLicense("12345678900", domain.LicenseTypeAB)
		assert.NoError(t, err)
		assert.Equal(t, "12345678900", license.Number())
		assert.Equal(t, domain.LicenseTypeAB, license.Category())
		assert.True(t, license.CanDriveMotorcycle())
	})

	t.Run("Category B Cannot Drive Motorcycles", func(t *testing.T) {
		license, err := domain.NewDriverLicense("12345678900", domain.LicenseTypeB)
		assert.NoError(t, err)
		assert.False(t, license.CanDriveMotorcycle())
	})

	t.Run("Invalid Number", func(t *testing.T) {
		for _, raw := range []string{"", "1234567890", "123456789012", "1234567890a"} {
			_, err := domain.NewDriverLicense(raw, domain.LicenseTypeA)
			assert.ErrorIs(t, err, domain.ErrInvalidDriverLicense, raw)
		}
	})

	t.Run("Invalid Category", func(t *testing.T) {
		_, err := domain.NewDriverLicense("12345678900", domain.LicenseType("C"))
		assert.ErrorIs(t, err, domain.ErrInvalidDriverLicense)
	})

	t.Run("Update Image Path", func(t *testing.T) {
		license, err := domain.NewDriverLicense("12345678900", domain.LicenseTypeA)
		assert.NoError(t, err)
		assert.Empty(t, license.ImagePath())

		assert.NoError(t, license.UpdateImagePath("licenses/abc.png"))
		assert.Equal(t, "licenses/abc.png", license.ImagePath())

		assert.ErrorIs(t, license.UpdateImagePath("  "), domain.ErrEmptyImagePath)
	})
}

func TestNewDeliveryPerson(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		person, err := domain.NewDeliveryPerson(
			"Joao Silva", "11222333000181", date("1990-05-20"),
			"12345678900", domain.LicenseTypeA,
		)
		assert.NoError(t, err)
		assert.Equal(t, "11.222.333/0001-81", person.Cnpj.Value())
		assert.True(t, person.CanRentMotorcycle())
	})

	t.Run("Empty Name", func(t *testing.T) {
		_, err := domain.NewDeliveryPerson(
			" ", "11222333000181", date("1990-05-20"),
			"12345678900", domain.LicenseTypeA,
		)
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("Underage", func(t *testing.T) {
		birthDate := domain.Today().AddDate(-18, 0, 1)
		_, err := domain.NewDeliveryPerson(
			"Jovem Demais", "11222333000181", birthDate,
			"12345678900", domain.LicenseTypeA,
		)
		assert.ErrorIs(t, err, domain.ErrUnderage)
	})

	t.Run("Exactly Eighteen", func(t *testing.T) {
		birthDate := domain.Today().AddDate(-18, 0, 0)
		_, err := domain.NewDeliveryPerson(
			"Recem Maior", "11222333000181", birthDate,
			"12345678900", domain.LicenseTypeA,
		)
		assert.NoError(t, err)
	})

	t.Run("Category B May Register", func(t *testing.T) {
		person, err := domain.NewDeliveryPerson(
			"Maria Souza", "11222333000181", date("1985-01-15"),
			"98765432100", domain.LicenseTypeB,
		)
		assert.NoError(t, err)
		assert.False(t, person.CanRentMotorcycle())
	})

	t.Run("Update License Image", func(t *testing.T) {
		person, err := domain.NewDeliveryPerson(
			"Joao Silva", "11222333000181", date("1990-05-20"),
			"12345678900", domain.LicenseTypeA,
		)
		assert.NoError(t, err)

		assert.NoError(t, person.UpdateDriverLicenseImage("licenses/joao.bmp"))
		assert.Equal(t, "licenses/joao.bmp", person.DriverLicense.ImagePath())
	})
}
