package email

import (
	"context"
	"fmt"
	"regexp"
)

// EmailSender abstracts outbound email delivery. Implementations include
// SMTP and Postmark clients plus a development sender that writes to disk.
// From this package's perspective sending is fire-and-forget: callers log
// failures but never fail the surrounding operation because of them.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes a single outbound message.
type SendEmailParams struct {
	// SendTo is the recipient address.
	SendTo string
	// SendToName is the recipient display name, e.g. a team name.
	SendToName string
	// Subject is the message subject line.
	Subject string
	// BodyHTML is the HTML message body.
	BodyHTML string
	// Tag classifies the message for tracking ("signup", "password_reset").
	Tag string
}

// emailRegex is a pragmatic address check; full RFC 5322 validation is not
// the goal, catching obvious garbage before the provider rejects it is.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks the parameters before handing them to a provider.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" || !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.BodyHTML == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// IsValidAddress reports whether the string looks like an email address.
func IsValidAddress(addr string) bool {
	return emailRegex.MatchString(addr)
}
