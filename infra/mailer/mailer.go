// Package mailer delivers OTP codes over an authenticated SMTP submission.
package mailer

import (
	"context"
	"fmt"

	"github.com/gvbank/teller/pkg/config"
	"github.com/gvbank/teller/pkg/domain"
	"github.com/wneessen/go-mail"
)

// SMTPMailer sends the OTP message through the configured mail relay,
// STARTTLS with the sender credential. Delivery failures abort the login
// attempt; nothing is retried.
type SMTPMailer struct {
	cfg config.SMTP
	otp config.OTP
}

// New creates a mailer for the given SMTP and OTP message configuration.
func New(cfg config.SMTP, otp config.OTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, otp: otp}
}

// Deliver sends the code to the account holder's email address. Any
// transport or credential error is reported as domain.ErrDeliveryFailed.
func (m *SMTPMailer) Deliver(ctx context.Context, email, code string) error {
	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("%w: sender %q: %v", domain.ErrDeliveryFailed, m.cfg.From, err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("%w: recipient %q: %v", domain.ErrDeliveryFailed, email, err)
	}
	msg.Subject(m.otp.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.otp.BodyPrefix+code)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	return nil
}
