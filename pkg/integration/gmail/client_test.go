package gmail

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/mklimuk/minutes-pilot/pkg/model"
	"google.golang.org/api/gmail/v1"
)

func TestEncodeMessage(t *testing.T) {
	raw := EncodeMessage("minutes@company.com", model.Email{
		To:      "babak@company.com",
		Name:    "Babak Rastegar",
		Subject: "Meeting tasks: Sales review",
		Body:    "Dear Mr. Rastegar,\n\n- Prepare report",
	})

	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("raw is not URL-safe base64: %v", err)
	}
	msg := string(data)
	for _, want := range []string{
		"From: minutes@company.com\r\n",
		"To: Babak Rastegar <babak@company.com>\r\n",
		"Subject: Meeting tasks: Sales review\r\n",
		"\r\n\r\nDear Mr. Rastegar,\r\n\r\n- Prepare report",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSend(t *testing.T) {
	var got *gmail.Message
	s := &Sender{from: "minutes@company.com", send: func(_ context.Context, msg *gmail.Message) error {
		got = msg
		return nil
	}}

	if err := s.Send(context.Background(), model.Email{To: "a@x.com", Subject: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Raw == "" {
		t.Fatal("nothing was sent")
	}

	if err := s.Send(context.Background(), model.Email{Subject: "no recipient"}); err == nil {
		t.Error("expected error for missing recipient")
	}

	s.send = func(context.Context, *gmail.Message) error { return errors.New("quota") }
	if err := s.Send(context.Background(), model.Email{To: "a@x.com"}); err == nil {
		t.Error("expected API error to surface")
	}
}
