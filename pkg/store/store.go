// Package store holds the contact, meeting and task collections in memory and
// mirrors each of them, as one JSON document, to a durable key-value area.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// Keys under which the collections are persisted.
const (
	KeyContacts = "contacts"
	KeyMeetings = "meetings"
	KeyTasks    = "tasks"
)

// KV is the durable key-value area the store mirrors its collections to.
// db.Repository implements it.
type KV interface {
	GetValue(key string) (string, bool, error)
	PutValue(key, value string) error
	DeleteValue(key string) error
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to generate identifiers.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is the single source of truth for all entities.
type Store struct {
	kv  KV
	now func() time.Time

	mu       sync.RWMutex
	contacts []model.Contact
	meetings []model.Meeting
	tasks    []model.Task
	lastID   int64
}

// New creates an empty Store. Call Load before use.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads every collection from the key-value area. A missing or
// unreadable collection falls back to the built-in seed.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = loadCollection(s.kv, KeyContacts, seedContacts)
	s.meetings = loadCollection(s.kv, KeyMeetings, seedMeetings)
	s.tasks = loadCollection(s.kv, KeyTasks, seedTasks)
	s.resetIDFloor()
}

// Reset forgets everything persisted and reloads the seed dataset.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyContacts, KeyMeetings, KeyTasks} {
		if err := s.kv.DeleteValue(key); err != nil {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}
	s.contacts = seedContacts()
	s.meetings = seedMeetings()
	s.tasks = seedTasks()
	s.resetIDFloor()
	return nil
}

// Flush writes all three collections and reports the first failure.
func (s *Store) Flush() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := writeCollection(s.kv, KeyContacts, s.contacts); err != nil {
		return err
	}
	if err := writeCollection(s.kv, KeyMeetings, s.meetings); err != nil {
		return err
	}
	return writeCollection(s.kv, KeyTasks, s.tasks)
}

// Contacts returns a copy of all contacts.
func (s *Store) Contacts() []model.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Contact(nil), s.contacts...)
}

// Meetings returns a copy of all meetings.
func (s *Store) Meetings() []model.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMeetings(s.meetings)
}

// Tasks returns a copy of all tasks.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTasks(s.tasks)
}

// Snapshot returns a consistent copy of every collection.
func (s *Store) Snapshot() model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Dataset{
		Contacts: append([]model.Contact(nil), s.contacts...),
		Meetings: copyMeetings(s.meetings),
		Tasks:    copyTasks(s.tasks),
	}
}

// ContactByID looks up a contact.
func (s *Store) ContactByID(id int64) (model.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return model.Contact{}, false
}

// MeetingByID looks up a meeting.
func (s *Store) MeetingByID(id int64) (model.Meeting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.meetings {
		if m.ID == id {
			return copyMeeting(m), true
		}
	}
	return model.Meeting{}, false
}

// TaskByID looks up a task.
func (s *Store) TaskByID(id int64) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return copyTask(t), true
		}
	}
	return model.Task{}, false
}

// TasksForMeeting returns the tasks of one meeting in creation order.
func (s *Store) TasksForMeeting(meetingID int64) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Task
	for _, t := range s.tasks {
		if t.MeetingID == meetingID {
			out = append(out, copyTask(t))
		}
	}
	return out
}

// nextID returns a fresh identifier: the current Unix millisecond, bumped
// past the last one handed out. Callers hold s.mu.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) resetIDFloor() {
	s.lastID = 0
	for _, c := range s.contacts {
		s.lastID = max(s.lastID, c.ID)
	}
	for _, m := range s.meetings {
		s.lastID = max(s.lastID, m.ID)
	}
	for _, t := range s.tasks {
		s.lastID = max(s.lastID, t.ID)
	}
}

// persist writes one collection. Failures are logged only: memory stays
// authoritative and the next successful write catches up.
func (s *Store) persist(key string, v any) {
	if err := writeCollection(s.kv, key, v); err != nil {
		log.Printf("store: %v", err)
	}
}

func loadCollection[T any](kv KV, key string, seed func() []T) []T {
	raw, ok, err := kv.GetValue(key)
	if err != nil {
		log.Printf("store: error reading %q, using built-in data: %v", key, err)
		return seed()
	}
	if !ok {
		return seed()
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("store: error decoding %q, using built-in data: %v", key, err)
		return seed()
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func writeCollection(kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	if err := kv.PutValue(key, string(data)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func copyMeeting(m model.Meeting) model.Meeting {
	m.AttendeeIDs = append([]int64(nil), m.AttendeeIDs...)
	return m
}

func copyMeetings(in []model.Meeting) []model.Meeting {
	out := make([]model.Meeting, len(in))
	for i, m := range in {
		out[i] = copyMeeting(m)
	}
	return out
}

func copyTask(t model.Task) model.Task {
	if t.Attachments != nil {
		t.Attachments = append([]string(nil), t.Attachments...)
	}
	return t
}

func copyTasks(in []model.Task) []model.Task {
	out := make([]model.Task, len(in))
	for i, t := range in {
		out[i] = copyTask(t)
	}
	return out
}
