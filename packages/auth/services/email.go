package services

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"

	"github.com/go-mail/mail/v2"
)

// EmailService sends transactional mail for the API
type EmailService interface {
	SendPasswordResetEmail(to, resetURL string) error
	SendContactNotification(name, email, message string) error
}

// LogEmailService logs outgoing mail instead of sending it (development)
type LogEmailService struct{}

func NewLogEmailService() *LogEmailService {
	return &LogEmailService{}
}

func (s *LogEmailService) SendPasswordResetEmail(to, resetURL string) error {
	logEmail(to, "Reset your password", passwordResetBody(resetURL))
	return nil
}

func (s *LogEmailService) SendContactNotification(name, email, message string) error {
	to := contactInbox()
	logEmail(to, "New contact message from "+name, contactBody(name, email, message))
	return nil
}

func logEmail(to, subject, body string) {
	log.Printf("=== EMAIL SENT ===")
	log.Printf("To: %s", to)
	log.Printf("Subject: %s", subject)
	log.Printf("Body: %s", body)
	log.Printf("=================")
}

// SMTPEmailService sends real mail through an SMTP relay
type SMTPEmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPEmailService builds the SMTP sender from the MAIL_DSN env variable
func NewSMTPEmailService() (*SMTPEmailService, error) {
	mailDSN := os.Getenv("MAIL_DSN")
	if mailDSN == "" {
		return nil, fmt.Errorf("MAIL_DSN environment variable is required")
	}

	u, err := url.Parse(mailDSN)
	if err != nil {
		return nil, fmt.Errorf("invalid MAIL_DSN format: %v", err)
	}

	port := 25
	if u.Port() != "" {
		port, err = strconv.Atoi(u.Port())
		if err != nil {
			return nil, fmt.Errorf("invalid port in MAIL_DSN: %v", err)
		}
	}

	username := ""
	password := ""
	if u.User != nil {
		username = u.User.Username()
		password, _ = u.User.Password()
	}

	from := "noreply@example.com"
	if envSender := os.Getenv("MAILER_ENVELOPE_SENDER"); envSender != "" {
		from = envSender
	} else if username != "" {
		from = username
	}

	return &SMTPEmailService{
		host:     u.Hostname(),
		port:     port,
		username: username,
		password: password,
		from:     from,
	}, nil
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, resetURL string) error {
	return s.send(to, "Reset your password", passwordResetBody(resetURL))
}

func (s *SMTPEmailService) SendContactNotification(name, email, message string) error {
	return s.send(contactInbox(), "New contact message from "+name, contactBody(name, email, message))
}

func (s *SMTPEmailService) send(to, subject, body string) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := mail.NewDialer(s.host, s.port, s.username, s.password)

	// Local relays like Mailpit have no TLS
	if s.host == "localhost" || s.host == "127.0.0.1" {
		d.TLSConfig = nil
	}

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}

	log.Printf("Email sent to %s via SMTP (%s:%d)", to, s.host, s.port)
	return nil
}

// NewEmailService picks SMTP when MAIL_DSN is configured, log fallback otherwise
func NewEmailService() EmailService {
	if os.Getenv("MAIL_DSN") != "" {
		smtp, err := NewSMTPEmailService()
		if err == nil {
			log.Println("Using SMTP email service")
			return smtp
		}
		log.Printf("Failed to initialize SMTP email service: %v, falling back to log", err)
	}
	return NewLogEmailService()
}

func contactInbox() string {
	if inbox := os.Getenv("CONTACT_INBOX"); inbox != "" {
		return inbox
	}
	return "info@cueclub.local"
}

func passwordResetBody(resetURL string) string {
	return fmt.Sprintf(`Hello,

You requested a password reset for your admin account.
Follow this link to choose a new password:

%s

The link is valid for 2 hours.

If you did not make this request, ignore this message.`, resetURL)
}

func contactBody(name, email, message string) string {
	return fmt.Sprintf(`A visitor sent a message through the website contact form.

Name: %s
Email: %s

%s`, name, email, message)
}
