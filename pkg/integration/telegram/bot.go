// Package telegram relays notification e-mails to a Telegram chat.
package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/notify"
)

// MaxMessageLength is the Telegram limit for one text message.
const MaxMessageLength = 4096

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Sender posts every message to one chat.
type Sender struct {
	api    botAPI
	chatID int64
}

var _ notify.Sender = (*Sender)(nil)

// NewSender creates a Telegram sender for chatID.
func NewSender(token string, chatID int64) (*Sender, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("error creating Telegram bot: %w", err)
	}
	return &Sender{api: api, chatID: chatID}, nil
}

// Send posts e to the chat.
func (s *Sender) Send(_ context.Context, e model.Email) error {
	msg := tgbotapi.NewMessage(s.chatID, FormatMessage(e, MaxMessageLength))
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("telegram: failed to send %q: %w", e.Subject, err)
	}
	return nil
}

// FormatMessage renders e as plain chat text of at most limit runes.
func FormatMessage(e model.Email, limit int) string {
	var b strings.Builder
	b.WriteString("To: ")
	if e.Name != "" {
		b.WriteString(e.Name + " ")
	}
	b.WriteString("<" + e.To + ">\n")
	b.WriteString("Subject: " + e.Subject + "\n\n")
	b.WriteString(e.Body)
	return notify.Truncate(b.String(), limit)
}
