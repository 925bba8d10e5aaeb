package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ShowBookedEmailData holds data for the booking notification email.
type ShowBookedEmailData struct {
	To         string
	ShowID     int64
	ArtistName string
	VenueName  string
	VenueCity  string
	StartTime  string
	EndTime    string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendShowBooked(ctx context.Context, data *ShowBookedEmailData) error
}
