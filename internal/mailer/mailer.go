// Package mailer sends operator notifications over SMTP. Delivery is
// best-effort: a failed or unconfigured transport never blocks the
// submission that triggered it.
package mailer

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

// Mailer delivers a single HTML notification to the operator address.
type Mailer interface {
	Send(ctx context.Context, subject, htmlBody string) error
	Configured() bool
}

// Options carries the SMTP transport settings.
type Options struct {
	Host   string
	Port   int
	Secure bool // implicit TLS instead of STARTTLS
	User   string
	Pass   string
	From   string
	To     string
}

// SMTPMailer is the production Mailer backed by an SMTP transport.
type SMTPMailer struct {
	client *mail.Client
	from   string
	to     string
}

// NewSMTPMailer builds a Mailer from the given transport options.
func NewSMTPMailer(opts Options) (*SMTPMailer, error) {
	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(opts.User),
		mail.WithPassword(opts.Pass),
	}
	if opts.Secure {
		clientOpts = append(clientOpts, mail.WithSSL())
	} else {
		clientOpts = append(clientOpts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: create client: %w", err)
	}
	return &SMTPMailer{client: client, from: opts.From, to: opts.To}, nil
}

var _ Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) Send(ctx context.Context, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mailer: from address: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("mailer: to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

func (m *SMTPMailer) Configured() bool { return true }

// Disabled is the Mailer used when no SMTP transport is configured.
// Sends report an error so callers record the attempt as skipped, not sent.
type Disabled struct{}

var _ Mailer = Disabled{}

func (Disabled) Send(context.Context, string, string) error {
	return fmt.Errorf("mailer: not configured")
}

func (Disabled) Configured() bool { return false }
