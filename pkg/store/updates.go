package store

import (
	"fmt"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// TaskUpdate is one field-level change to a task. The set of updates is
// closed: only the types in this file implement it.
type TaskUpdate interface {
	apply(t *model.Task) error
}

// SetStatus changes the authoritative status. Moving away from waiting
// clears the waiting-for note; moving to waiting stores WaitingFor (possibly
// empty).
type SetStatus struct {
	Status     model.TaskStatus
	WaitingFor string
}

func (u SetStatus) apply(t *model.Task) error {
	if !u.Status.Valid() {
		return &ValidationError{Problems: []string{fmt.Sprintf("unknown status %q", u.Status)}}
	}
	t.Status = u.Status
	if u.Status == model.StatusWaiting {
		t.WaitingFor = u.WaitingFor
	} else {
		t.WaitingFor = ""
	}
	return nil
}

// SetClaimedStatus records the status reported by the assignee. An empty
// status withdraws the claim.
type SetClaimedStatus struct {
	Status model.TaskStatus
}

func (u SetClaimedStatus) apply(t *model.Task) error {
	if u.Status != "" && !u.Status.Valid() {
		return &ValidationError{Problems: []string{fmt.Sprintf("unknown status %q", u.Status)}}
	}
	t.ClaimedStatus = u.Status
	return nil
}

// SetWaitingFor edits the note of a task that is waiting on someone else.
type SetWaitingFor struct {
	Note string
}

func (u SetWaitingFor) apply(t *model.Task) error {
	if t.Status != model.StatusWaiting {
		return &ValidationError{Problems: []string{"waiting-for note applies only to waiting tasks"}}
	}
	t.WaitingFor = u.Note
	return nil
}

// SetNotes replaces the assignee's free-text notes.
type SetNotes struct {
	Notes string
}

func (u SetNotes) apply(t *model.Task) error {
	t.Notes = u.Notes
	return nil
}

// UpdateTask applies updates in order to the task with the given id. Either
// all of them take effect or, on the first error, none does.
func (s *Store) UpdateTask(id int64, updates ...TaskUpdate) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		updated := copyTask(s.tasks[i])
		for _, u := range updates {
			if err := u.apply(&updated); err != nil {
				return model.Task{}, err
			}
		}
		s.tasks[i] = updated
		s.persist(KeyTasks, s.tasks)
		return copyTask(updated), nil
	}
	return model.Task{}, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
}
