// Package notify delivers e-mail drafts through one or more channels.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, e model.Email) error
}

// LogSender writes messages to the process log instead of delivering them.
type LogSender struct{}

// Send logs the message.
func (LogSender) Send(_ context.Context, e model.Email) error {
	log.Printf("notify: to=%s <%s> subject=%q\n%s", e.Name, e.To, e.Subject, e.Body)
	return nil
}

// Multi fans a message out to every sender and joins their errors.
type Multi []Sender

// Send delivers e through every sender, even after one fails.
func (m Multi) Send(ctx context.Context, e model.Email) error {
	var errs []error
	for _, s := range m {
		if err := s.Send(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SendAll delivers every message and reports how many failed.
func SendAll(ctx context.Context, s Sender, emails []model.Email) error {
	var errs []error
	for _, e := range emails {
		if err := s.Send(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", e.To, err))
		}
	}
	return errors.Join(errs...)
}

// Truncate shortens s to at most limit runes, ending with "..." when cut.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= 3 {
		return string([]rune(s)[:limit])
	}
	return string([]rune(s)[:limit-3]) + "..."
}
