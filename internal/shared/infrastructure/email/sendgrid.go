package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

// ErrEmptyMessage is returned for messages without recipients or content.
var ErrEmptyMessage = errors.New("email: message has no recipients or content")

// SendGridSender delivers through the SendGrid v3 API.
type SendGridSender struct {
	key        string
	host       string
	from       *sgmail.Email
	subjPrefix string
	api        func(rest.Request) (*rest.Response, error)
}

var _ Sender = (*SendGridSender)(nil)

func NewSendGridSender(key, appName, fromEmail string) *SendGridSender {
	return &SendGridSender{
		key:        key,
		host:       sendGridHost,
		from:       sgmail.NewEmail(appName, fromEmail),
		subjPrefix: "[" + appName + "] ",
		api:        sendgrid.API,
	}
}

func (s *SendGridSender) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = s.subjPrefix + msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	if msg.Text != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}
	return m
}

// Send posts msg to SendGrid. The request honours ctx only up to the point it is
// handed to the SendGrid client, which does not take a context.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if !msg.HasRecipients() || !msg.HasContent() {
		return ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	req := sendgrid.GetRequest(s.key, sendGridEndpoint, s.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := s.api(req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
