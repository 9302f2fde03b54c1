package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
)

type emailService struct {
	client   *sendgrid.Client
	fromName string
	from     string
}

func NewEmailService(apiKey, fromName, fromEmail string) EmailService {
	return &emailService{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		from:     fromEmail,
	}
}

func (s *emailService) SendOverdueRentalReport(ctx context.Context, toEmail string, rentals []domain.Rental) error {
	var body strings.Builder
	fmt.Fprintf(&body, "The following %d rental(s) are past their expected end date:\n\n", len(rentals))
	for _, rt := range rentals {
		fmt.Fprintf(&body, "- rental %s: motorcycle %s, delivery person %s, expected back %s\n",
			rt.ID, rt.MotorcycleID, rt.DeliveryPersonID,
			domain.FormatDate(rt.Period.ExpectedEndDate()))
	}
	body.WriteString("\nPlease follow up with the delivery persons involved.\n")

	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail("", toEmail)
	subject := fmt.Sprintf("Overdue rental report: %d rental(s) outstanding", len(rentals))
	message := mail.NewSingleEmail(from, subject, to, body.String(), "")

	logger.ExternalServiceCall("sendgrid", "Send", "to", toEmail, "rentals", len(rentals))
	resp, err := s.client.SendWithContext(ctx, message)
	logger.ExternalServiceResult("sendgrid", "Send", err, "to", toEmail)
	if err != nil {
		return fmt.Errorf("failed to send overdue report: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected overdue report: status %d", resp.StatusCode)
	}
	return nil
}
