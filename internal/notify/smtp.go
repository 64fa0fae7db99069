// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// implicitTLSPort is the SMTPS port; any other port uses STARTTLS when TLS is
// enabled.
const implicitTLSPort = 465

// SMTPNotifier mails codes through an SMTP relay using go-mail. A new
// connection is dialled per message.
type SMTPNotifier struct {
	cfg    config.Mail
	logger *logger.Logger

	// send transmits a built message; replaced in tests.
	send func(ctx context.Context, msg *mail.Msg) error
}

// NewSMTPNotifier validates cfg and returns an [SMTPNotifier].
func NewSMTPNotifier(cfg config.Mail, logger *logger.Logger) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, ErrMissingHost
	}
	if cfg.From == "" {
		return nil, ErrMissingFrom
	}

	n := &SMTPNotifier{
		cfg:    cfg,
		logger: logger,
	}
	n.send = n.dialAndSend

	return n, nil
}

func (n *SMTPNotifier) SendActivationCode(ctx context.Context, email, code string) error {
	return n.deliver(ctx, kindActivation, email, code)
}

func (n *SMTPNotifier) SendResetCode(ctx context.Context, email, code string) error {
	return n.deliver(ctx, kindReset, email, code)
}

func (n *SMTPNotifier) deliver(ctx context.Context, k kind, email, code string) error {
	log := logger.FromContext(ctx)

	msg, err := n.buildMessage(k, email, code)
	if err != nil {
		log.Err(err).Str("func", "*SMTPNotifier.deliver").Str("email", email).Msg("error building message")
		return err
	}

	if err = n.send(ctx, msg); err != nil {
		log.Err(err).Str("func", "*SMTPNotifier.deliver").Str("email", email).Stringer("kind", k).Msg("error sending message")
		return fmt.Errorf("%w: %w", ErrSendingMessage, err)
	}

	log.Info().Str("email", email).Stringer("kind", k).Msg("code delivered")
	return nil
}

// buildMessage assembles the plain-text message for one code.
func (n *SMTPNotifier) buildMessage(k kind, to, code string) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if n.cfg.FromName != "" {
		if err := msg.FromFormat(n.cfg.FromName, n.cfg.From); err != nil {
			return nil, fmt.Errorf("%w: setting from address: %w", ErrBuildingMessage, err)
		}
	} else {
		if err := msg.From(n.cfg.From); err != nil {
			return nil, fmt.Errorf("%w: setting from address: %w", ErrBuildingMessage, err)
		}
	}

	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("%w: setting to address: %w", ErrBuildingMessage, err)
	}

	msg.Subject(subjectFor(k))
	msg.SetBodyString(mail.TypeTextPlain, bodyFor(k, code))

	return msg, nil
}

// clientOptions translates cfg into go-mail client options.
func (n *SMTPNotifier) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
	}

	if n.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		if n.cfg.Port == implicitTLSPort {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if n.cfg.Username != "" && n.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}

	return opts
}

func (n *SMTPNotifier) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(n.cfg.Host, n.clientOptions()...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}
