package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

const deliveryPersonColumns = `id, name, cnpj, birth_date, license_number, license_type, license_image_path, created_at`

type deliveryPersonRepository struct {
	db *sql.DB
}

func NewDeliveryPersonRepository(db *sql.DB) repository.DeliveryPersonRepository {
	return &deliveryPersonRepository{db: db}
}

func (r *deliveryPersonRepository) Create(ctx context.Context, dp *domain.DeliveryPerson) error {
	query := `INSERT INTO delivery_persons (id, name, cnpj, birth_date, license_number, license_type, license_image_path, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		dp.ID, dp.Name, dp.Cnpj.Value(), dp.BirthDate,
		dp.DriverLicense.Number(), string(dp.DriverLicense.Category()), dp.DriverLicense.ImagePath(), dp.CreatedAt)
	return err
}

func (r *deliveryPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DeliveryPerson, error) {
	query := `SELECT ` + deliveryPersonColumns + ` FROM delivery_persons WHERE id = $1`
	dp, err := scanDeliveryPerson(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return dp, err
}

func (r *deliveryPersonRepository) GetByCnpj(ctx context.Context, cnpj string) (*domain.DeliveryPerson, error) {
	query := `SELECT ` + deliveryPersonColumns + ` FROM delivery_persons WHERE cnpj = $1`
	dp, err := scanDeliveryPerson(r.db.QueryRowContext(ctx, query, cnpj))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return dp, err
}

func (r *deliveryPersonRepository) GetByLicenseNumber(ctx context.Context, number string) (*domain.DeliveryPerson, error) {
	query := `SELECT ` + deliveryPersonColumns + ` FROM delivery_persons WHERE license_number = $1`
	dp, err := scanDeliveryPerson(r.db.QueryRowContext(ctx, query, number))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return dp, err
}

func (r *deliveryPersonRepository) ExistsByCnpj(ctx context.Context, cnpj string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM delivery_persons WHERE cnpj = $1)`
	err := r.db.QueryRowContext(ctx, query, cnpj).Scan(&exists)
	return exists, err
}

func (r *deliveryPersonRepository) ExistsByLicenseNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM delivery_persons WHERE license_number = $1)`
	err := r.db.QueryRowContext(ctx, query, number).Scan(&exists)
	return exists, err
}

func (r *deliveryPersonRepository) List(ctx context.Context) ([]domain.DeliveryPerson, error) {
	query := `SELECT ` + deliveryPersonColumns + ` FROM delivery_persons ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var persons []domain.DeliveryPerson
	for rows.Next() {
		dp, err := scanDeliveryPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, *dp)
	}
	return persons, rows.Err()
}

func (r *deliveryPersonRepository) Update(ctx context.Context, dp *domain.DeliveryPerson) error {
	query := `UPDATE delivery_persons SET name = $1, license_image_path = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, dp.Name, dp.DriverLicense.ImagePath(), dp.ID)
	return err
}

func (r *deliveryPersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM delivery_persons WHERE id = $1`, id)
	return err
}

func scanDeliveryPerson(row rowScanner) (*domain.DeliveryPerson, error) {
	var (
		id                         uuid.UUID
		name, cnpj                 string
		birthDate, createdAt       time.Time
		licenseNumber, licenseType string
		licenseImagePath           sql.NullString
	)
	err := row.Scan(&id, &name, &cnpj, &birthDate, &licenseNumber, &licenseType, &licenseImagePath, &createdAt)
	if err != nil {
		return nil, err
	}

	license := domain.RehydrateDriverLicense(licenseNumber, domain.LicenseType(licenseType), licenseImagePath.String)
	return domain.RehydrateDeliveryPerson(id, name, domain.RehydrateCnpj(cnpj), birthDate, license, createdAt), nil
}
