package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	appErrors "github.com/samar-703/Vyapaar/internal/errors"
)

// Mailer sends one transactional email; tests swap in a stub.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ResendMailer delivers through the Resend API.
type ResendMailer struct {
	apiKey string
	from   string
	client *resend.Client
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		apiKey: apiKey,
		from:   from,
		client: resend.NewClient(apiKey),
	}
}

// Send dispatches a single email. No retry here; the caller owns retry policy.
func (m *ResendMailer) Send(ctx context.Context, to, subject, html string) error {
	if m.apiKey == "" {
		return appErrors.NewMissingCredential("RESEND_API_KEY")
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

var _ Mailer = (*ResendMailer)(nil)
