package email

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidConfig = errors.New("email: invalid config")
	ErrInvalidParams = errors.New("email: invalid params")
	ErrSendFailed    = errors.New("email: send failed")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Sender delivers a single transactional email.
type Sender interface {
	Send(ctx context.Context, params Params) error
}

// Params describes one outbound message.
type Params struct {
	To       string
	Subject  string
	BodyHTML string
	// Tag groups messages in the provider's dashboard (e.g. "welcome").
	Tag string
}

func (p Params) Validate() error {
	if p.To == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.BodyHTML == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// Config holds email delivery configuration. Postmark tokens are optional
// so development environments can run with the logging sender instead.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	AdminEmail           string `env:"ADMIN_EMAIL,required"`
}
