// Package mail implements service.EmailSender with Mailjet, SendGrid or a log-only sender.
package mail

import (
	"html"
	"strings"

	"pescastur/internal/domain/entity"
	"pescastur/internal/errors"
)

// Sender identity stamped on every message.
type Sender struct {
	Email string
	Name  string
}

// htmlEnvelope renders the HTML alternative part of a plain text body.
func htmlEnvelope(body string) string {
	escaped := html.EscapeString(body)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")

	return "<html><body><p>" + escaped + "</p></body></html>"
}

func validateMessage(sender Sender, message *entity.EmailMessage) error {
	if sender.Email == "" {
		return errors.New("sender address is empty")
	}
	if message.To == "" {
		return errors.New("recipient address is empty")
	}

	return nil
}
