package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/authkit/core/email"
)

// Client delivers mail over SMTP. Safe for concurrent use; every send
// opens its own connection.
type Client struct {
	cfg  Config
	auth smtp.Auth
}

// New creates an SMTP-backed email sender.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", email.ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be between 1 and 65535", email.ErrInvalidConfig)
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: Username and Password are required", email.ErrInvalidConfig)
	}
	switch cfg.TLSMode {
	case "starttls", "tls", "plain":
	default:
		return nil, fmt.Errorf("%w: TLSMode must be starttls, tls, or plain", email.ErrInvalidConfig)
	}
	if !email.IsValidAddress(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.ReplyTo != "" && !email.IsValidAddress(cfg.ReplyTo) {
		return nil, fmt.Errorf("%w: ReplyTo must be a valid email address", email.ErrInvalidConfig)
	}

	return &Client{
		cfg:  cfg,
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}, nil
}

// MustNew is New that panics on invalid config, for wiring at startup.
func MustNew(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements email.EmailSender.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	message := c.buildMessage(params)
	addr := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))

	var err error
	switch c.cfg.TLSMode {
	case "tls":
		err = c.sendTLS(addr, params.SendTo, message)
	case "starttls":
		err = c.sendSTARTTLS(addr, params.SendTo, message)
	case "plain":
		err = c.sendPlain(addr, params.SendTo, message)
	}
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	return nil
}

func (c *Client) buildMessage(params email.SendEmailParams) []byte {
	from := mail.Address{Name: c.cfg.SenderName, Address: c.cfg.SenderEmail}
	to := mail.Address{Name: params.SendToName, Address: params.SendTo}

	var b strings.Builder
	writeHeader := func(key, value string) {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\r\n")
	}
	writeHeader("From", from.String())
	writeHeader("To", to.String())
	if c.cfg.ReplyTo != "" {
		writeHeader("Reply-To", c.cfg.ReplyTo)
	}
	writeHeader("Subject", params.Subject)
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", fmt.Sprintf("<%d@%s>", time.Now().UnixNano(), c.cfg.Host))
	if params.Tag != "" {
		writeHeader("X-Tag", params.Tag)
	}
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/html; charset="UTF-8"`)
	b.WriteString("\r\n")
	b.WriteString(params.BodyHTML)

	return []byte(b.String())
}

func (c *Client) sendTLS(addr, rcpt string, message []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: c.cfg.Host})
	if err != nil {
		return fmt.Errorf("tls dial: %w", err)
	}
	defer conn.Close() //nolint:errcheck

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	return c.transact(client, rcpt, message)
}

func (c *Client) sendSTARTTLS(addr, rcpt string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close() //nolint:errcheck

	if err := client.StartTLS(&tls.Config{ServerName: c.cfg.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	return c.transact(client, rcpt, message)
}

func (c *Client) sendPlain(addr, rcpt string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close() //nolint:errcheck

	return c.transact(client, rcpt, message)
}

func (c *Client) transact(client *smtp.Client, rcpt string, message []byte) error {
	if err := client.Auth(c.auth); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := client.Mail(c.cfg.SenderEmail); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(rcpt); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		_ = w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data: %w", err)
	}

	// Some servers drop the connection right after DATA; the message is
	// already accepted at that point.
	_ = client.Quit()
	return nil
}
