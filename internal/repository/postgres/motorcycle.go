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

type motorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) repository.MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

func (r *motorcycleRepository) Create(ctx context.Context, m *domain.Motorcycle) error {
	query := `INSERT INTO motorcycles (id, model, year, license_plate, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Model, m.Year, m.LicensePlate.Value(), m.CreatedAt)
	return err
}

func (r *motorcycleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	query := `SELECT id, model, year, license_plate, created_at FROM motorcycles WHERE id = $1`
	m, err := scanMotorcycle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return m, err
}

func (r *motorcycleRepository) GetByLicensePlate(ctx context.Context, plate string) (*domain.Motorcycle, error) {
	query := `SELECT id, model, year, license_plate, created_at FROM motorcycles WHERE license_plate = $1`
	m, err := scanMotorcycle(r.db.QueryRowContext(ctx, query, plate))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return m, err
}

func (r *motorcycleRepository) ExistsByLicensePlate(ctx context.Context, plate string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM motorcycles WHERE license_plate = $1)`
	err := r.db.QueryRowContext(ctx, query, plate).Scan(&exists)
	return exists, err
}

func (r *motorcycleRepository) List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error) {
	query := `SELECT id, model, year, license_plate, created_at FROM motorcycles`
	args := []interface{}{}
	if plateFilter != "" {
		query += ` WHERE license_plate LIKE '%' || $1 || '%'`
		args = append(args, plateFilter)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var motorcycles []domain.Motorcycle
	for rows.Next() {
		m, err := scanMotorcycle(rows)
		if err != nil {
			return nil, err
		}
		motorcycles = append(motorcycles, *m)
	}
	return motorcycles, rows.Err()
}

func (r *motorcycleRepository) Update(ctx context.Context, m *domain.Motorcycle) error {
	query := `UPDATE motorcycles SET license_plate = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, m.LicensePlate.Value(), m.ID)
	return err
}

func (r *motorcycleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM motorcycles WHERE id = $1`, id)
	return err
}

func scanMotorcycle(row rowScanner) (*domain.Motorcycle, error) {
	var (
		id                uuid.UUID
		model, plateValue string
		year              int
		createdAt         time.Time
	)
	if err := row.Scan(&id, &model, &year, &plateValue, &createdAt); err != nil {
		return nil, err
	}

	plate, err := domain.NewLicensePlate(plateValue)
	if err != nil {
		return nil, err
	}
	return domain.RehydrateMotorcycle(id, model, year, plate, createdAt), nil
}
