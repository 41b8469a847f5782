package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/spec-kit/business-site-service/internal/config"
)

// Sender delivers outgoing mail. Delivery is best-effort: callers log
// failures and move on, there are no retries.
type Sender interface {
	Send(to, subject, bodyHTML string) error
}

// SMTPSender sends mail through a configured SMTP relay.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	fromName string
	secure   bool
}

// NewSMTPSender builds a sender from config.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		fromName: cfg.FromName,
		secure:   cfg.Secure,
	}
}

// Configured reports whether an SMTP relay has been set up.
func (s *SMTPSender) Configured() bool {
	return s.host != ""
}

// Send sends an HTML email with the given subject.
func (s *SMTPSender) Send(to, subject, bodyHTML string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.username)
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			wrapTemplate(s.fromName, bodyHTML),
	)

	serverAddr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	if !s.secure {
		// Port 587, STARTTLS negotiated by the smtp package.
		if err := smtp.SendMail(serverAddr, auth, s.username, []string{to}, msg); err != nil {
			return fmt.Errorf("send mail failed: %w", err)
		}
		return nil
	}

	// Port 465, implicit TLS.
	conn, err := tls.Dial("tcp", serverAddr, &tls.Config{ServerName: s.host})
	if err != nil {
		return fmt.Errorf("tls dial failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("smtp client failed: %w", err)
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("auth failed: %w", err)
	}
	if err := client.Mail(s.username); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return nil
}

// wrapTemplate wraps body content in a minimal branded layout.
func wrapTemplate(brand, content string) string {
	header := fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8" />
		<style>
			body { font-family: Arial, sans-serif; background-color: #f6f8fa; padding: 30px; }
			.container { max-width: 600px; margin: auto; background: #fff; border-radius: 8px; overflow: hidden; }
			.header { background: #1a5632; color: white; text-align: center; padding: 18px; font-size: 20px; font-weight: bold; }
			.body { padding: 24px; color: #333; line-height: 1.6; }
			.footer { background: #f1f1f1; color: #555; text-align: center; padding: 12px; font-size: 12px; }
		</style>
	</head>
	<body>
	<div class="container">
		<div class="header">%s</div>
		<div class="body">
	`, brand)

	footer := fmt.Sprintf(`
		</div>
		<div class="footer">%s</div>
	</div>
	</body>
	</html>
	`, brand)

	return header + strings.TrimSpace(content) + footer
}
