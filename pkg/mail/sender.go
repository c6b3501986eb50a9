package mail

import (
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

type Message struct {
	To          []string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

type Sender interface {
	Send(msg Message) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	from   string
	dialer Dialer
}

func (s *sender) Send(msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("mail.Send: no recipients")
	}
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	// plain text first so clients that understand html prefer the last part
	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	for _, attachment := range msg.Attachments {
		if attachment.Name == "" || len(attachment.Data) == 0 {
			continue
		}
		data := attachment.Data
		settings := []mail.FileSetting{mail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})}
		if attachment.ContentType != "" {
			settings = append(settings, mail.SetHeader(map[string][]string{"Content-Type": {attachment.ContentType}}))
		}
		m.Attach(attachment.Name, settings...)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("mail.Send: %w", err)
	}
	return nil
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		from:   email,
		dialer: mail.NewDialer(host, port, email, password),
	}
}
