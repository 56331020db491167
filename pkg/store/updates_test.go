package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

func TestUpdateTaskStatus(t *testing.T) {
	tests := []struct {
		name       string
		update     SetStatus
		wantStatus model.TaskStatus
		wantNote   string
	}{
		{"leaving waiting clears note", SetStatus{Status: model.StatusDone, WaitingFor: "ignored"}, model.StatusDone, ""},
		{"waiting keeps supplied note", SetStatus{Status: model.StatusWaiting, WaitingFor: "legal sign-off"}, model.StatusWaiting, "legal sign-off"},
		{"waiting defaults to empty note", SetStatus{Status: model.StatusWaiting}, model.StatusWaiting, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)

			// task 4 starts waiting with a note
			got, err := s.UpdateTask(4, tt.update)
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if got.Status != tt.wantStatus || got.WaitingFor != tt.wantNote {
				t.Errorf("got status=%q note=%q, want %q %q", got.Status, got.WaitingFor, tt.wantStatus, tt.wantNote)
			}
			stored, _ := s.TaskByID(4)
			if !reflect.DeepEqual(stored, got) {
				t.Errorf("stored task %+v differs from returned %+v", stored, got)
			}
		})
	}
}

func TestUpdateTaskClaimedStatusAndNotes(t *testing.T) {
	s, _ := newTestStore(t)

	got, err := s.UpdateTask(3, SetClaimedStatus{Status: model.StatusInProgress}, SetNotes{Notes: "drafts ready"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ClaimedStatus != model.StatusInProgress || got.Notes != "drafts ready" {
		t.Errorf("unexpected task %+v", got)
	}
	if got.Status != model.StatusNotDone {
		t.Errorf("authoritative status changed to %q", got.Status)
	}
	if got.EffectiveStatus() != model.StatusInProgress {
		t.Errorf("effective status = %q", got.EffectiveStatus())
	}

	got, err = s.UpdateTask(3, SetClaimedStatus{})
	if err != nil {
		t.Fatalf("clear claim: %v", err)
	}
	if got.ClaimedStatus != "" {
		t.Errorf("claim not cleared: %q", got.ClaimedStatus)
	}
}

func TestUpdateTaskErrors(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.UpdateTask(999, SetNotes{Notes: "x"}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}

	var verr *ValidationError
	if _, err := s.UpdateTask(1, SetStatus{Status: "finished"}); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for unknown status, got %v", err)
	}
	if _, err := s.UpdateTask(1, SetWaitingFor{Note: "x"}); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for note on non-waiting task, got %v", err)
	}
}

func TestUpdateTaskIsAtomic(t *testing.T) {
	s, kv := newTestStore(t)
	before, _ := s.TaskByID(1)

	_, err := s.UpdateTask(1, SetNotes{Notes: "partial"}, SetClaimedStatus{Status: "bogus"})
	if err == nil {
		t.Fatal("expected an error")
	}
	after, _ := s.TaskByID(1)
	if !reflect.DeepEqual(after, before) {
		t.Errorf("task changed despite the failed update: %+v", after)
	}
	if kv.puts != 0 {
		t.Error("failed update was persisted")
	}
}

func TestSetWaitingFor(t *testing.T) {
	s, _ := newTestStore(t)

	got, err := s.UpdateTask(4, SetWaitingFor{Note: "vendor quote"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.WaitingFor != "vendor quote" {
		t.Errorf("note = %q", got.WaitingFor)
	}
}
