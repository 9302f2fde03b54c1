package domain

import "errors"

// Domain rule violations. Services and handlers match these with errors.Is;
// wrapped messages carry the offending values.
var (
	// Money
	ErrInvalidAmount      = errors.New("monetary amount cannot be negative")
	ErrInvalidCurrency    = errors.New("currency must be specified")
	ErrCurrencyMismatch   = errors.New("cannot operate on values of different currencies")
	ErrNegativeResult     = errors.New("subtraction cannot produce a negative amount")
	ErrNegativeMultiplier = errors.New("multiplier cannot be negative")

	// RentalPeriod
	ErrInvalidStartDate = errors.New("start date must be at least the day after today")
	ErrDateBeforeStart  = errors.New("end date cannot be before the start date")

	// Rental
	ErrCourierIneligible = errors.New("delivery person is not licensed to ride motorcycles")
	ErrInvalidPlan       = errors.New("invalid rental plan")
	ErrAlreadyFinalized  = errors.New("rental has already been finalized")
	ErrReturnDateMissing = errors.New("return date is required to calculate the total amount")

	// Orchestration
	ErrNotFound            = errors.New("not found")
	ErrOperationNotAllowed = errors.New("operation not allowed")
	ErrIncompleteData      = errors.New("related data is missing")

	// Motorcycle
	ErrInvalidLicensePlate  = errors.New("invalid license plate format")
	ErrLicensePlateInUse    = errors.New("license plate is already registered")
	ErrInvalidModel         = errors.New("motorcycle model cannot be empty")
	ErrInvalidYear          = errors.New("motorcycle year is out of range")
	ErrMotorcycleHasRentals = errors.New("motorcycle with registered rentals cannot be removed")

	// DeliveryPerson
	ErrInvalidCnpj          = errors.New("invalid CNPJ")
	ErrCnpjInUse            = errors.New("CNPJ is already registered")
	ErrLicenseNumberInUse   = errors.New("driver license number is already registered")
	ErrInvalidDriverLicense = errors.New("invalid driver license number")
	ErrInvalidName          = errors.New("name cannot be empty")
	ErrUnderage             = errors.New("delivery person must be at least 18 years old")
	ErrEmptyImagePath       = errors.New("image path cannot be empty")
)
