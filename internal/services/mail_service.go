package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"omahaestates/internal/config"
)

// Mailer is the outbound mail transport behind the contact and inquiry
// forms. Dispatch is synchronous; a failed send fails the request.
type Mailer interface {
	Send(to, subject, body string) error
}

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService(cfg config.SMTPConfig) *MailService {
	enabled := cfg.Host != "" && cfg.Port != "" && cfg.Username != "" && cfg.Password != "" && cfg.From != ""
	if !enabled {
		log.Println("MailService disabled: missing SMTP environment variables")
	}

	return &MailService{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
		Enabled:  enabled,
	}
}

func (s *MailService) Send(to, subject, body string) error {
	if !s.Enabled {
		return fmt.Errorf("mail transport not configured")
	}

	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: Omaha Estates <%s>\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
		"\r\n%s", to, s.From, subject, body))

	if err := smtp.SendMail(addr, auth, s.From, []string{to}, msg); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return err
	}
	log.Printf("Email sent to %s: %s", to, subject)
	return nil
}

// InquiryBody renders the plain-text message for a contact submission.
// Extra lines (listing URL, listing id) follow the submitter fields.
func InquiryBody(name, email, phone, message string, extra ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", email)
	if phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", phone)
	}
	fmt.Fprintf(&b, "\n%s\n", message)
	for _, line := range extra {
		fmt.Fprintf(&b, "\n%s", line)
	}
	return b.String()
}
