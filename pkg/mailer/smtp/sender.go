// Package smtp implements mailer.Sender over an SMTP STARTTLS relay.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"

	mail "github.com/wneessen/go-mail"

	"github.com/dmitrymomot/ouramail/pkg/mailer"
)

// session is one open relay connection. Production sessions wrap go-mail's
// client; tests substitute a fake to exercise the release-on-failure path.
type session interface {
	Send(msgs ...*mail.Msg) error
	Close() error
}

// dialFunc opens an authenticated session to the relay.
type dialFunc func(ctx context.Context) (session, error)

// Sender implements mailer.Sender using SMTP with mandatory STARTTLS.
type Sender struct {
	dial   dialFunc
	config Config
}

// New creates a new SMTP sender. The sender address defaults to the
// authenticating username.
func New(cfg Config) (*Sender, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}

	return &Sender{
		config: cfg,
		dial: func(ctx context.Context) (session, error) {
			if err := client.DialWithContext(ctx); err != nil {
				return nil, err
			}
			return client, nil
		},
	}, nil
}

// Send implements mailer.Sender. The session is closed regardless of outcome.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := s.message(email)
	if err != nil {
		return err
	}

	sess, err := s.dial(ctx)
	if err != nil {
		return classifyDialError(err)
	}
	defer sess.Close()

	if err := sess.Send(msg); err != nil {
		return errors.Join(ErrDelivery, err)
	}

	return nil
}

// message converts a mailer.Email into a multipart/alternative go-mail message.
func (s *Sender) message(email *mailer.Email) (*mail.Msg, error) {
	from := email.From
	if from == "" {
		from = s.config.Username
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("%w: sender %q: %v", ErrInvalidMessage, from, err)
	}
	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("%w: recipients %v: %v", ErrInvalidMessage, email.To, err)
	}
	msg.Subject(email.Subject)

	if email.Text != "" {
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	} else {
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	}

	return msg, nil
}

// classifyDialError separates credential rejections from transport failures.
// SMTP reports bad AUTH credentials with reply codes 534/535.
func classifyDialError(err error) error {
	var proto *textproto.Error
	if errors.As(err, &proto) && (proto.Code == 534 || proto.Code == 535) {
		return errors.Join(ErrAuth, err)
	}
	return errors.Join(ErrTransport, err)
}
