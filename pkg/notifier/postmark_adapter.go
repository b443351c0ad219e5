package notifier

import (
	"context"
	"fmt"
	"regexp"

	"github.com/mrz1836/postmark"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// PostmarkConfig configures the Postmark-backed notifier.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail  string `env:"SENDER_EMAIL,required"`
	Subject      string `env:"NOTIFICATION_SUBJECT" envDefault:"Notification"`
	Tag          string `env:"NOTIFICATION_TAG"`
}

// PostmarkClient is the subset of *postmark.Client the adapter calls.
type PostmarkClient interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkAdapter exposes Postmark's transactional email API as a Notifier.
type PostmarkAdapter struct {
	client PostmarkClient
	cfg    PostmarkConfig
}

// PostmarkOption configures a PostmarkAdapter.
type PostmarkOption func(*PostmarkAdapter)

// WithPostmarkClient replaces the client built from the config tokens.
func WithPostmarkClient(c PostmarkClient) PostmarkOption {
	return func(a *PostmarkAdapter) {
		if c != nil {
			a.client = c
		}
	}
}

// NewPostmarkAdapter validates cfg and creates the adapter. The server token
// is required unless a client is injected with WithPostmarkClient.
func NewPostmarkAdapter(cfg PostmarkConfig, opts ...PostmarkOption) (*PostmarkAdapter, error) {
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.Subject == "" {
		cfg.Subject = "Notification"
	}

	a := &PostmarkAdapter{cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}

	if a.client == nil {
		if cfg.ServerToken == "" {
			return nil, fmt.Errorf("%w: ServerToken is required", ErrInvalidConfig)
		}
		a.client = postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	}
	return a, nil
}

// MustNewPostmarkAdapter is like NewPostmarkAdapter but panics on invalid config.
func MustNewPostmarkAdapter(cfg PostmarkConfig, opts ...PostmarkOption) *PostmarkAdapter {
	a, err := NewPostmarkAdapter(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Send delivers message as a plain-text email to recipient. Malformed
// recipients are rejected before calling Postmark; transport errors and any
// non-zero Postmark error code are failures.
func (a *PostmarkAdapter) Send(ctx context.Context, recipient, message string) bool {
	if !emailRegex.MatchString(recipient) || message == "" {
		return false
	}

	resp, err := a.client.SendEmail(ctx, postmark.Email{
		From:     a.cfg.SenderEmail,
		To:       recipient,
		Subject:  a.cfg.Subject,
		Tag:      a.cfg.Tag,
		TextBody: message,
	})
	if err != nil {
		return false
	}
	return resp.ErrorCode == 0
}
