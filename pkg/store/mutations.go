package store

import (
	"strconv"
	"strings"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// ContactInput carries the editable fields of a new contact.
type ContactInput struct {
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	Phone         string       `json:"phone"`
	OrgEmail      string       `json:"orgEmail"`
	PersonalEmail string       `json:"personalEmail"`
	Gender        model.Gender `json:"gender"`
	Role          model.Role   `json:"role"`
	Position      string       `json:"position"`
}

// MeetingInput carries the fields of a meeting about to be created.
type MeetingInput struct {
	Title       string  `json:"title"`
	SecretaryID int64   `json:"secretaryId"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	AttendeeIDs []int64 `json:"attendeeIds"`
}

// TaskInput carries the fields of a task created together with its meeting.
type TaskInput struct {
	Description string           `json:"description"`
	ActionType  model.ActionType `json:"actionType"`
	AssigneeID  int64            `json:"assigneeId"`
	DueDate     string           `json:"dueDate"`
}

// AddContact appends a contact with a fresh id and the default password.
func (s *Store) AddContact(in ContactInput) model.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Contact{
		ID:            s.nextID(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Phone:         in.Phone,
		OrgEmail:      in.OrgEmail,
		PersonalEmail: in.PersonalEmail,
		Gender:        in.Gender,
		Role:          in.Role,
		Position:      in.Position,
		Password:      model.DefaultPassword,
	}
	if c.Gender == "" {
		c.Gender = model.GenderMale
	}
	if c.Role == "" {
		c.Role = model.RoleNormal
	}
	s.contacts = append(s.contacts, c)
	s.persist(KeyContacts, s.contacts)
	return c
}

// UpdateContact replaces the contact with the same id. It reports false and
// changes nothing when no such contact exists.
func (s *Store) UpdateContact(c model.Contact) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == c.ID {
			s.contacts[i] = c
			s.persist(KeyContacts, s.contacts)
			return true
		}
	}
	return false
}

// DeleteContact removes a contact. Meetings and tasks referring to it are
// left untouched.
func (s *Store) DeleteContact(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(s.contacts) {
		return false
	}
	s.contacts = kept
	s.persist(KeyContacts, s.contacts)
	return true
}

// ValidateContact checks the fields an operator supplies for a contact.
// Empty gender and role are allowed and take their defaults on creation.
func ValidateContact(in ContactInput) error {
	verr := &ValidationError{}
	if strings.TrimSpace(in.FirstName) == "" {
		verr.add("first name is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		verr.add("last name is required")
	}
	if strings.TrimSpace(in.OrgEmail) == "" {
		verr.add("organizational e-mail is required")
	}
	if in.Gender != "" && !in.Gender.Valid() {
		verr.add("unknown gender " + string(in.Gender))
	}
	if in.Role != "" && !in.Role.Valid() {
		verr.add("unknown role " + string(in.Role))
	}
	return verr.orNil()
}

// ValidateMeeting checks a meeting and its tasks without touching the store.
func ValidateMeeting(m MeetingInput, tasks []TaskInput) error {
	verr := &ValidationError{}
	if strings.TrimSpace(m.Title) == "" {
		verr.add("title is required")
	}
	if m.SecretaryID == 0 {
		verr.add("secretary is required")
	}
	if strings.TrimSpace(m.Date) == "" {
		verr.add("date is required")
	}
	if len(m.AttendeeIDs) == 0 {
		verr.add("at least one attendee is required")
	}
	for i, t := range tasks {
		if strings.TrimSpace(t.Description) == "" {
			verr.add(taskProblem(i, "description is required"))
		}
		if t.AssigneeID == 0 {
			verr.add(taskProblem(i, "assignee is required"))
		}
		if strings.TrimSpace(t.DueDate) == "" {
			verr.add(taskProblem(i, "due date is required"))
		}
		if t.ActionType != "" && !t.ActionType.Valid() {
			verr.add(taskProblem(i, "unknown action type "+string(t.ActionType)))
		}
	}
	return verr.orNil()
}

// AddMeetingAndTasks creates a meeting and all of its tasks in one step. On
// a validation error neither the meeting nor any task is stored.
func (s *Store) AddMeetingAndTasks(in MeetingInput, tasks []TaskInput) (model.Meeting, []model.Task, error) {
	if err := ValidateMeeting(in, tasks); err != nil {
		return model.Meeting{}, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	meeting := model.Meeting{
		ID:            id,
		Title:         in.Title,
		SecretaryID:   in.SecretaryID,
		Company:       in.Company,
		Location:      in.Location,
		Date:          in.Date,
		AttendeeIDs:   dedupe(in.AttendeeIDs),
		MeetingNumber: model.MeetingNumber(in.Date, id),
	}

	created := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		actionType := t.ActionType
		if actionType == "" {
			actionType = model.ActionForAction
		}
		created = append(created, model.Task{
			ID:          s.nextID(),
			MeetingID:   id,
			Description: t.Description,
			ActionType:  actionType,
			AssigneeID:  t.AssigneeID,
			DueDate:     t.DueDate,
			Status:      model.StatusNotDone,
		})
	}

	s.meetings = append(s.meetings, meeting)
	s.tasks = append(s.tasks, created...)
	s.persist(KeyMeetings, s.meetings)
	s.persist(KeyTasks, s.tasks)

	return copyMeeting(meeting), copyTasks(created), nil
}

// CopyMeeting turns an existing meeting and its tasks into a creation draft.
func (s *Store) CopyMeeting(meetingID int64) (MeetingInput, []TaskInput, error) {
	m, ok := s.MeetingByID(meetingID)
	if !ok {
		return MeetingInput{}, nil, ErrMeetingNotFound
	}
	draft := MeetingInput{
		Title:       m.Title,
		SecretaryID: m.SecretaryID,
		Company:     m.Company,
		Location:    m.Location,
		Date:        m.Date,
		AttendeeIDs: m.AttendeeIDs,
	}
	var tasks []TaskInput
	for _, t := range s.TasksForMeeting(meetingID) {
		tasks = append(tasks, TaskInput{
			Description: t.Description,
			ActionType:  t.ActionType,
			AssigneeID:  t.AssigneeID,
			DueDate:     t.DueDate,
		})
	}
	return draft, tasks, nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func taskProblem(i int, msg string) string {
	return "task " + strconv.Itoa(i+1) + ": " + msg
}
