// Package gmail sends notification e-mails through the Gmail API.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/notify"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// SendScope is the OAuth scope needed to send mail.
const SendScope = gmail.GmailSendScope

// Sender delivers messages from one mailbox.
type Sender struct {
	from string
	send func(ctx context.Context, msg *gmail.Message) error
}

var _ notify.Sender = (*Sender)(nil)

// NewSender creates a Gmail sender using an authenticated HTTP client. from
// is the address shown to recipients.
func NewSender(ctx context.Context, client *http.Client, from string) (*Sender, error) {
	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Gmail client: %w", err)
	}

	return &Sender{
		from: from,
		send: func(ctx context.Context, msg *gmail.Message) error {
			_, err := srv.Users.Messages.Send("me", msg).Context(ctx).Do()
			return err
		},
	}, nil
}

// Send delivers e.
func (s *Sender) Send(ctx context.Context, e model.Email) error {
	if e.To == "" {
		return fmt.Errorf("gmail: message %q has no recipient", e.Subject)
	}
	msg := &gmail.Message{Raw: EncodeMessage(s.from, e)}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("gmail: failed to send to %s: %w", e.To, err)
	}
	return nil
}

// EncodeMessage renders e as an RFC 2822 message in the URL-safe base64
// form the Gmail API expects.
func EncodeMessage(from string, e model.Email) string {
	to := e.To
	if e.Name != "" {
		to = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", e.Name), e.To)
	}

	var b strings.Builder
	if from != "" {
		b.WriteString("From: " + from + "\r\n")
	}
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", e.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(e.Body, "\n", "\r\n"))

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}
