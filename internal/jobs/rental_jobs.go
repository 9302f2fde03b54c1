package jobs

import (
	"context"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
)

// SendOverdueRentalReport emails the admin a summary of active rentals that
// are past their expected end date.
func (jr *JobRunner) SendOverdueRentalReport() {
	jr.runWithRecovery("SendOverdueRentalReport", func() {
		ctx := context.Background()

		overdue, err := jr.rentalRepo.ListOverdue(ctx, domain.Today())
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}
		if len(overdue) == 0 {
			logger.Info("No overdue rentals found")
			return
		}

		for _, rt := range overdue {
			logger.Debug("Overdue rental",
				"rentalID", rt.ID,
				"motorcycleID", rt.MotorcycleID,
				"deliveryPersonID", rt.DeliveryPersonID,
				"expectedEndDate", domain.FormatDate(rt.Period.ExpectedEndDate()))
		}

		adminEmail := jr.config.Email.AdminEmail
		if adminEmail == "" {
			logger.Warn("No admin email configured, skipping overdue report", "overdueCount", len(overdue))
			return
		}
		if err := jr.email.SendOverdueRentalReport(ctx, adminEmail, overdue); err != nil {
			logger.Error("Failed to send overdue rental report", "error", err)
			return
		}
		logger.Info("Sent overdue rental report", "overdueCount", len(overdue), "to", adminEmail)
	})
}
