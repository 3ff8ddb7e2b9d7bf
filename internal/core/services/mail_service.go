package services

import (
	"fmt"
	"log"

	"rolehub/internal/config"

	"gopkg.in/gomail.v2"
)

// MailService delivers account email over SMTP. When SMTP is not
// configured the service logs and drops messages instead of failing,
// so local development works without a mail account.
type MailService struct {
	cfg     *config.Config
	enabled bool
}

// NewMailService creates a new mail service
func NewMailService(cfg *config.Config) *MailService {
	enabled := cfg.Mail.Host != "" && cfg.Mail.Username != ""
	if !enabled {
		log.Println("⚠️ SMTP not configured, outbound mail disabled")
	}
	return &MailService{cfg: cfg, enabled: enabled}
}

// IsEnabled checks if mail delivery is enabled
func (s *MailService) IsEnabled() bool {
	return s.enabled
}

// SendVerificationCode emails a password-reset code to a user
func (s *MailService) SendVerificationCode(to, firstName, code string) error {
	subject := "Your password reset code"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your verification code is: <strong>%s</strong></p>
		<p>The code expires in 10 minutes. If you did not request a
		password reset, you can ignore this email.</p>`,
		firstName, code)

	return s.send(to, subject, body)
}

func (s *MailService) send(to, subject, htmlBody string) error {
	if !s.enabled {
		log.Printf("⚠️ Mail disabled, dropping %q to %s", subject, to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Mail.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Mail.Host, s.cfg.Mail.Port, s.cfg.Mail.Username, s.cfg.Mail.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}

	log.Printf("📧 Sent %q to %s", subject, to)
	return nil
}
