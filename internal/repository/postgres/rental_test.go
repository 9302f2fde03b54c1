package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository/postgres"
)

var rentalColumns = []string{
	"id", "motorcycle_id", "delivery_person_id", "start_date", "actual_end_date",
	"plan_type", "daily_rate_cents", "currency", "total_amount_cents", "created_at",
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	assert.NoError(t, err)
	return d
}

func TestRentalGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Active Rental", func(t *testing.T) {
		id := uuid.New()
		motorcycleID := uuid.New()
		personID := uuid.New()
		start := mustDate(t, "2026-03-10")

		rows := sqlmock.NewRows(rentalColumns).AddRow(
			id, motorcycleID, personID, start, nil,
			7, int64(3000), "BRL", nil, start,
		)
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(id).WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, id, rental.ID)
		assert.Equal(t, motorcycleID, rental.MotorcycleID)
		assert.False(t, rental.IsFinalized())
		assert.Equal(t, start, rental.Period.StartDate())
		assert.Equal(t, start.AddDate(0, 0, 6), rental.Period.ExpectedEndDate())
		assert.Equal(t, int64(3000), rental.DailyRate.Cents())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Finalized Rental", func(t *testing.T) {
		id := uuid.New()
		start := mustDate(t, "2026-03-10")
		end := mustDate(t, "2026-03-16")

		rows := sqlmock.NewRows(rentalColumns).AddRow(
			id, uuid.New(), uuid.New(), start, end,
			7, int64(3000), "BRL", int64(21000), start,
		)
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(id).WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.True(t, rental.IsFinalized())
		assert.Equal(t, 210.00, rental.TotalAmount.Amount())
		assert.NotNil(t, rental.Period.ActualEndDate())
		assert.Equal(t, end, *rental.Period.ActualEndDate())
	})

	t.Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(id).WillReturnRows(sqlmock.NewRows(rentalColumns))

		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentalCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := postgres.NewRentalRepository(db)

	start := mustDate(t, "2026-03-10")
	rate, err := domain.PlanSevenDays.DailyRate()
	assert.NoError(t, err)
	rental := domain.RehydrateRental(
		uuid.New(), uuid.New(), uuid.New(),
		domain.RehydrateRentalPeriod(start, nil, domain.PlanSevenDays),
		rate, nil, start,
	)

	mock.ExpectExec(`INSERT INTO rentals`).
		WithArgs(rental.ID, rental.MotorcycleID, rental.DeliveryPersonID,
			start, start.AddDate(0, 0, 6), 7, int64(3000), "BRL", start).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), rental))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := postgres.NewRentalRepository(db)

	start := mustDate(t, "2026-03-10")
	rate, err := domain.PlanSevenDays.DailyRate()
	assert.NoError(t, err)
	rental := domain.RehydrateRental(
		uuid.New(), uuid.New(), uuid.New(),
		domain.RehydrateRentalPeriod(start, nil, domain.PlanSevenDays),
		rate, nil, start,
	)
	assert.NoError(t, rental.ReturnMotorcycle(mustDate(t, "2026-03-16")))

	mock.ExpectExec(`UPDATE rentals SET actual_end_date = \$1, total_amount_cents = \$2 WHERE id = \$3`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), rental.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(context.Background(), rental))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalExistsActiveForMotorcycle(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	motorcycleID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM rentals WHERE motorcycle_id = \$1 AND total_amount_cents IS NULL\)`).
		WithArgs(motorcycleID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	inUse, err := repo.ExistsActiveForMotorcycle(context.Background(), motorcycleID)
	assert.NoError(t, err)
	assert.True(t, inUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	asOf := mustDate(t, "2026-03-20")
	start := mustDate(t, "2026-03-10")

	rows := sqlmock.NewRows(rentalColumns).AddRow(
		uuid.New(), uuid.New(), uuid.New(), start, nil,
		7, int64(3000), "BRL", nil, start,
	)
	mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE total_amount_cents IS NULL AND expected_end_date < \$1`).
		WithArgs(asOf).WillReturnRows(rows)

	overdue, err := repo.ListOverdue(context.Background(), asOf)
	assert.NoError(t, err)
	assert.Len(t, overdue, 1)
	assert.False(t, overdue[0].IsFinalized())
	assert.NoError(t, mock.ExpectationsWereMet())
}
