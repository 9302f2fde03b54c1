package postgres

import (
	"context"
	"database/sql"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.MotorcycleNotification) error {
	query := `INSERT INTO motorcycle_notifications (id, motorcycle_id, license_plate, year, model, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, n.ID, n.MotorcycleID, n.LicensePlate, n.Year, n.Model, n.CreatedAt)
	return err
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.MotorcycleNotification, error) {
	query := `SELECT id, motorcycle_id, license_plate, year, model, created_at FROM motorcycle_notifications ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.MotorcycleNotification
	for rows.Next() {
		var n domain.MotorcycleNotification
		if err := rows.Scan(&n.ID, &n.MotorcycleID, &n.LicensePlate, &n.Year, &n.Model, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
