package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"jobapply-server/internal/common/config"
	"jobapply-server/internal/common/logger"
)

// SMTPDispatcher delivers messages over SMTP, upgrading the connection with
// STARTTLS when configured.
type SMTPDispatcher struct {
	config config.SMTPConfig
	logger logger.Logger
}

func NewSMTPDispatcher(cfg config.SMTPConfig, log logger.Logger) *SMTPDispatcher {
	return &SMTPDispatcher{config: cfg, logger: log}
}

func (d *SMTPDispatcher) addr() string {
	return fmt.Sprintf("%s:%d", d.config.Host, d.config.Port)
}

func (d *SMTPDispatcher) auth() smtp.Auth {
	if d.config.Username == "" || d.config.Password == "" {
		return nil
	}
	return smtp.PlainAuth("", d.config.Username, d.config.Password, d.config.Host)
}

func (d *SMTPDispatcher) Send(ctx context.Context, msg *Message) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled before sending email: %w", err)
	}

	messageID, raw := BuildMIME(msg, d.config.Host)

	var err error
	if d.config.UseTLS {
		err = d.sendWithTLS(msg.From, msg.To, raw)
	} else {
		err = smtp.SendMail(d.addr(), d.auth(), msg.From, []string{msg.To}, raw)
	}
	if err != nil {
		return nil, err
	}

	return &Receipt{
		MessageID: messageID,
		Provider:  "smtp",
		SentAt:    time.Now(),
	}, nil
}

func (d *SMTPDispatcher) sendWithTLS(from, to string, raw []byte) error {
	client, err := smtp.Dial(d.addr())
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName:         d.config.Host,
		InsecureSkipVerify: false,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth := d.auth(); auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err = w.Write(raw); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

// TestConnection verifies the SMTP server is reachable and, when TLS is
// configured, that the upgrade succeeds. Used at startup.
func (d *SMTPDispatcher) TestConnection(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	client, err := smtp.Dial(d.addr())
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	if d.config.UseTLS {
		tlsConfig := &tls.Config{
			ServerName:         d.config.Host,
			InsecureSkipVerify: false,
		}
		if err = client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	return client.Quit()
}
