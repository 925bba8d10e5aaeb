package services

import (
	"context"
	"fmt"
	"log/slog"

	"fyyur/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendShowBooked sends the booking notification using the "show_booked" template.
func (s *emailService) SendShowBooked(ctx context.Context, data *domain.ShowBookedEmailData) error {
	if data == nil {
		return fmt.Errorf("show booked email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("show_booked", data)
	if err != nil {
		return fmt.Errorf("failed to render show_booked template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send show booked email: %w", err)
	}
	s.logger.InfoContext(ctx, "show booked email sent", "to", data.To, "show_id", data.ShowID)
	return nil
}
