package mailer

import (
	"log"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

type Service interface {
	Send(msg Message) error
}

// NewFromEnv returns the SendGrid sender when SENDGRID_API_KEY is set,
// otherwise a console sender so local development needs no key.
func NewFromEnv() Service {
	key := strings.TrimSpace(os.Getenv("SENDGRID_API_KEY"))
	fromName := strings.TrimSpace(os.Getenv("MAIL_FROM_NAME"))
	fromEmail := strings.TrimSpace(os.Getenv("MAIL_FROM_EMAIL"))
	if fromName == "" {
		fromName = "sar.ai"
	}
	if key == "" || fromEmail == "" {
		return &consoleService{}
	}
	return &sendgridService{key: key, from: sgmail.NewEmail(fromName, fromEmail)}
}

type sendgridService struct {
	key  string
	from *sgmail.Email
}

func (s *sendgridService) Send(msg Message) error {
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
	m := sgmail.NewSingleEmail(s.from, msg.Subject, to, msg.Text, msg.HTML)
	client := sendgrid.NewSendClient(s.key)
	resp, err := client.Send(m)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[ERROR] sendgrid status=%d body=%s", resp.StatusCode, resp.Body)
	}
	return nil
}

type consoleService struct{}

func (s *consoleService) Send(msg Message) error {
	log.Printf("[MAIL] to=%s subject=%q\n%s", msg.ToEmail, msg.Subject, msg.Text)
	return nil
}
