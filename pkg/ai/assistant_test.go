package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// stubGenerator records prompts and answers with a fixed response.
type stubGenerator struct {
	mu       sync.Mutex
	prompts  []string
	response string
	err      error
	block    chan struct{}
	started  chan struct{}
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.block != nil {
		<-s.block
	}
	return s.response, s.err
}

func TestReport(t *testing.T) {
	gen := &stubGenerator{response: "Two tasks are overdue."}
	a := NewAssistant(gen)

	d := model.Dataset{
		Contacts: []model.Contact{{ID: 1, FirstName: "Payam", Password: "123456"}},
		Tasks:    []model.Task{{ID: 7, Description: "Design banners"}},
	}
	res := a.Report(context.Background(), "Which tasks are overdue?", d)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Text != "Two tasks are overdue." {
		t.Errorf("text = %q", res.Text)
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, `"Which tasks are overdue?"`) || !strings.Contains(prompt, "Design banners") {
		t.Errorf("prompt missing query or data:\n%s", prompt)
	}
	if strings.Contains(prompt, "123456") {
		t.Error("prompt leaks contact passwords")
	}
}

func TestReportEmptyQuery(t *testing.T) {
	gen := &stubGenerator{}
	res := NewAssistant(gen).Report(context.Background(), "   ", model.Dataset{})
	if !errors.Is(res.Err, ErrEmptyQuery) || res.Text != MessageEmptyQuery {
		t.Errorf("unexpected result %+v", res)
	}
	if len(gen.prompts) != 0 {
		t.Error("generator called for an empty query")
	}
}

func TestSummarizeUsesPlaceholder(t *testing.T) {
	gen := &stubGenerator{response: "summary"}
	res := NewAssistant(gen).Summarize(context.Background(), "")
	if res.Err != nil || res.Text != "summary" {
		t.Fatalf("unexpected result %+v", res)
	}
	if !strings.Contains(gen.prompts[0], PlaceholderTranscript) {
		t.Errorf("prompt does not use the placeholder transcript:\n%s", gen.prompts[0])
	}
}

func TestFailureIsInline(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	res := NewAssistant(gen).Summarize(context.Background(), "notes")
	if res.Err == nil || res.Text != MessageFailure {
		t.Errorf("unexpected result %+v", res)
	}

	res = NewAssistant(nil).Report(context.Background(), "q", model.Dataset{})
	if !errors.Is(res.Err, ErrNotConfigured) || res.Text != MessageNotConfigured {
		t.Errorf("unexpected result without generator %+v", res)
	}
}

func TestBusyGuard(t *testing.T) {
	gen := &stubGenerator{
		response: "done",
		block:    make(chan struct{}),
		started:  make(chan struct{}, 1),
	}
	a := NewAssistant(gen)

	first := make(chan Result)
	go func() {
		first <- a.Summarize(context.Background(), "first")
	}()
	<-gen.started

	if !a.Busy(ActionSummarize) {
		t.Error("summarize should be busy")
	}
	if res := a.Summarize(context.Background(), "second"); !errors.Is(res.Err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %+v", res)
	}
	if a.Busy(ActionReport) {
		t.Error("report must not be blocked by summarize")
	}

	close(gen.block)
	if res := <-first; res.Text != "done" {
		t.Errorf("first result = %+v", res)
	}
	if a.Busy(ActionSummarize) {
		t.Error("busy flag not released")
	}
}
