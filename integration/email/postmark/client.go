package postmark

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/authkit/core/email"
)

// Config holds Postmark API credentials and sender identity.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN" envDefault:""`
	SenderEmail  string `env:"POSTMARK_SENDER_EMAIL,required"`
	// MessageStream selects the Postmark stream; "outbound" is the
	// transactional default.
	MessageStream string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
}

// Client implements email.EmailSender on the Postmark API.
type Client struct {
	cfg    Config
	client *postmark.Client
}

// New creates a Postmark-backed email sender.
func New(cfg Config) (*Client, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", email.ErrInvalidConfig)
	}
	if !email.IsValidAddress(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	return &Client{
		cfg:    cfg,
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
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
	if err := params.Validate(); err != nil {
		return err
	}

	to := params.SendTo
	if params.SendToName != "" {
		to = fmt.Sprintf("%s <%s>", params.SendToName, params.SendTo)
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:          c.cfg.SenderEmail,
		To:            to,
		Subject:       params.Subject,
		HTMLBody:      params.BodyHTML,
		Tag:           params.Tag,
		TrackOpens:    true,
		MessageStream: c.cfg.MessageStream,
	})
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode != 0 {
		return fmt.Errorf("%w: postmark error %d: %s",
			email.ErrFailedToSendEmail, resp.ErrorCode, resp.Message)
	}
	return nil
}
