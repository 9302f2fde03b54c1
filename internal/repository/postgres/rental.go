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

const rentalColumns = `id, motorcycle_id, delivery_person_id, start_date, actual_end_date, plan_type, daily_rate_cents, currency, total_amount_cents, created_at`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (id, motorcycle_id, delivery_person_id, start_date, expected_end_date, plan_type, daily_rate_cents, currency, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		rt.ID, rt.MotorcycleID, rt.DeliveryPersonID,
		rt.Period.StartDate(), rt.Period.ExpectedEndDate(), int(rt.Period.PlanType()),
		rt.DailyRate.Cents(), rt.DailyRate.Currency(), rt.CreatedAt)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rt, err
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY created_at DESC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByMotorcycle(ctx context.Context, motorcycleID uuid.UUID) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE motorcycle_id = $1 ORDER BY created_at DESC`
	return r.queryRentals(ctx, query, motorcycleID)
}

func (r *rentalRepository) ListByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE delivery_person_id = $1 ORDER BY created_at DESC`
	return r.queryRentals(ctx, query, deliveryPersonID)
}

func (r *rentalRepository) GetActiveByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE delivery_person_id = $1 AND total_amount_cents IS NULL`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, deliveryPersonID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rt, err
}

func (r *rentalRepository) ExistsActiveForMotorcycle(ctx context.Context, motorcycleID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM rentals WHERE motorcycle_id = $1 AND total_amount_cents IS NULL)`
	err := r.db.QueryRowContext(ctx, query, motorcycleID).Scan(&exists)
	return exists, err
}

func (r *rentalRepository) ExistsForMotorcycle(ctx context.Context, motorcycleID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM rentals WHERE motorcycle_id = $1)`
	err := r.db.QueryRowContext(ctx, query, motorcycleID).Scan(&exists)
	return exists, err
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE total_amount_cents IS NULL AND expected_end_date < $1 ORDER BY expected_end_date`
	return r.queryRentals(ctx, query, asOf)
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	var actualEnd sql.NullTime
	if end := rt.Period.ActualEndDate(); end != nil {
		actualEnd = sql.NullTime{Time: *end, Valid: true}
	}
	var totalCents sql.NullInt64
	if rt.TotalAmount != nil {
		totalCents = sql.NullInt64{Int64: rt.TotalAmount.Cents(), Valid: true}
	}
	query := `UPDATE rentals SET actual_end_date = $1, total_amount_cents = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, actualEnd, totalCents, rt.ID)
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	return err
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	var (
		id, motorcycleID, deliveryPersonID uuid.UUID
		startDate, createdAt               time.Time
		actualEnd                          sql.NullTime
		planType                           int
		dailyRateCents                     int64
		currency                           string
		totalCents                         sql.NullInt64
	)
	err := row.Scan(&id, &motorcycleID, &deliveryPersonID, &startDate, &actualEnd,
		&planType, &dailyRateCents, &currency, &totalCents, &createdAt)
	if err != nil {
		return nil, err
	}

	var actualEndDate *time.Time
	if actualEnd.Valid {
		actualEndDate = &actualEnd.Time
	}
	period := domain.RehydrateRentalPeriod(startDate, actualEndDate, domain.PlanType(planType))

	var totalAmount *domain.Money
	if totalCents.Valid {
		total := domain.MoneyFromCents(totalCents.Int64, currency)
		totalAmount = &total
	}

	dailyRate := domain.MoneyFromCents(dailyRateCents, currency)
	return domain.RehydrateRental(id, motorcycleID, deliveryPersonID, period, dailyRate, totalAmount, createdAt), nil
}
