package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/domain"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestTemplateRenderer_ShowBooked(t *testing.T) {
	data := &domain.ShowBookedEmailData{
		To:         "ops@fyyur.example",
		ShowID:     11,
		ArtistName: "Guns N Petals",
		VenueName:  "The Musical Hop",
		VenueCity:  "San Francisco",
		StartTime:  "2035-04-01 20:00:00",
		EndTime:    "2035-04-01 22:00:00",
	}

	subject, html, text, err := NewTemplateRenderer().Render("show_booked", data)
	require.NoError(t, err)
	assert.Equal(t, "New show: Guns N Petals at The Musical Hop", subject)
	assert.Contains(t, html, "<strong>Guns N Petals</strong>")
	assert.Contains(t, html, "in San Francisco")
	assert.Contains(t, text, "Starts: 2035-04-01 20:00:00")
	assert.Contains(t, text, "Show #11")
}

func TestTemplateRenderer_EscapesHTML(t *testing.T) {
	data := &domain.ShowBookedEmailData{ArtistName: "<script>x</script>", VenueName: "V"}
	_, html, text, err := NewTemplateRenderer().Render("show_booked", data)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, text, "<script>x</script>")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("missing", nil)
	require.Error(t, err)
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "bookings@fyyur.example", "Fyyur", discard)

	require.NoError(t, m.Send(context.Background(), "ops@fyyur.example", "subj", "<p>hi</p>", ""))
	require.NotNil(t, client.input)
	assert.Equal(t, "Fyyur <bookings@fyyur.example>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"ops@fyyur.example"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Nil(t, client.input.Message.Body.Text)

	client.err = errors.New("throttled")
	err := m.Send(context.Background(), "ops@fyyur.example", "subj", "", "hi")
	require.ErrorContains(t, err, "throttled")
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, discard)
	require.NoError(t, err)
	require.NoError(t, m.Send(context.Background(), "a@b.c", "s", "", ""))

	_, err = NewMailer(MailerConfig{Provider: "ses"}, discard)
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{Provider: "ses", FromAddress: "a@b.c", SES: SESConfig{Region: "us-east-1"}}, discard)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)

	m, err = NewMailer(MailerConfig{Provider: "pigeon"}, discard)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
}
