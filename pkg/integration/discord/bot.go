// Package discord relays notification e-mails to a Discord channel.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/notify"
)

// MaxMessageLength is the Discord limit for one message.
const MaxMessageLength = 2000

type channelAPI interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Sender posts every message to one channel through the REST API. No
// gateway connection is opened.
type Sender struct {
	api       channelAPI
	channelID string
}

var _ notify.Sender = (*Sender)(nil)

// NewSender creates a Discord sender for channelID.
func NewSender(token, channelID string) (*Sender, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return &Sender{api: dg, channelID: channelID}, nil
}

// Send posts e to the channel.
func (s *Sender) Send(ctx context.Context, e model.Email) error {
	content := FormatMessage(e)
	if _, err := s.api.ChannelMessageSend(s.channelID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: failed to send %q: %w", e.Subject, err)
	}
	return nil
}

// FormatMessage renders e as Discord markdown within the message limit.
func FormatMessage(e model.Email) string {
	header := fmt.Sprintf("**%s**\nTo: %s <%s>\n", e.Subject, e.Name, e.To)
	return notify.Truncate(header+"```\n"+e.Body+"\n```", MaxMessageLength)
}
