package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

var (
	// ErrBusy is returned when the same action is already running.
	ErrBusy = errors.New("request already in progress")
	// ErrEmptyQuery is returned for a blank report request.
	ErrEmptyQuery = errors.New("empty query")
	// ErrNotConfigured is returned when no generator is available.
	ErrNotConfigured = errors.New("no AI provider configured")
)

// Messages shown in place of generated text.
const (
	MessageEmptyQuery    = "Please enter your request."
	MessageNotConfigured = "Error: the AI API key is not configured."
	MessageBusy          = "A request is already in progress."
	MessageFailure       = "Error communicating with the AI service."
)

// Action identifies an assistant operation for the busy guard.
type Action string

const (
	ActionReport    Action = "report"
	ActionSummarize Action = "summarize"
)

// Result carries generated text, or an inline message when Err is set.
type Result struct {
	Text string `json:"text"`
	Err  error  `json:"-"`
}

// Assistant runs report and summarize requests against a Generator. Each
// action allows one outstanding request; overlapping calls of the same
// action fail with ErrBusy instead of queueing.
type Assistant struct {
	gen Generator

	mu   sync.Mutex
	busy map[Action]bool
}

// NewAssistant returns an assistant. gen may be nil when no provider is
// configured; every request then fails with ErrNotConfigured.
func NewAssistant(gen Generator) *Assistant {
	return &Assistant{
		gen:  gen,
		busy: make(map[Action]bool),
	}
}

// Busy reports whether action has a request in flight.
func (a *Assistant) Busy(action Action) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy[action]
}

// Report answers query from the dataset. Shared secrets never leave the
// process.
func (a *Assistant) Report(ctx context.Context, query string, d model.Dataset) Result {
	if strings.TrimSpace(query) == "" {
		return Result{Text: MessageEmptyQuery, Err: ErrEmptyQuery}
	}
	prompt, err := ReportPrompt(query, d.WithoutPasswords())
	if err != nil {
		return Result{Text: MessageFailure, Err: err}
	}
	return a.run(ctx, ActionReport, prompt)
}

// Summarize condenses a meeting transcript. An empty transcript is replaced
// by PlaceholderTranscript.
func (a *Assistant) Summarize(ctx context.Context, transcript string) Result {
	if strings.TrimSpace(transcript) == "" {
		transcript = PlaceholderTranscript
	}
	return a.run(ctx, ActionSummarize, SummarizePrompt(transcript))
}

func (a *Assistant) run(ctx context.Context, action Action, prompt string) Result {
	if a.gen == nil {
		return Result{Text: MessageNotConfigured, Err: ErrNotConfigured}
	}
	if !a.acquire(action) {
		return Result{Text: MessageBusy, Err: ErrBusy}
	}
	defer a.release(action)

	text, err := a.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("assistant: %s failed: %v", action, err)
		return Result{Text: MessageFailure, Err: fmt.Errorf("%s: %w", action, err)}
	}
	return Result{Text: text}
}

func (a *Assistant) acquire(action Action) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.busy[action] {
		return false
	}
	a.busy[action] = true
	return true
}

func (a *Assistant) release(action Action) {
	a.mu.Lock()
	a.busy[action] = false
	a.mu.Unlock()
}
