package model

import "strings"

// Role determines elevated access.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSecretary Role = "secretary"
	RoleNormal    Role = "normal"
)

// AllRoles lists every role in display order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleSecretary, RoleNormal}
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, v := range AllRoles() {
		if r == v {
			return true
		}
	}
	return false
}

// Gender of a contact, used for salutations.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ActionType says what the assignee is expected to do with a task.
type ActionType string

const (
	ActionForAction   ActionType = "for-action"
	ActionForInfo     ActionType = "for-info"
	ActionForFollowUp ActionType = "for-follow-up"
)

// Valid reports whether a is a known action type.
func (a ActionType) Valid() bool {
	return a == ActionForAction || a == ActionForInfo || a == ActionForFollowUp
}

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	StatusNotDone    TaskStatus = "not-done"
	StatusInProgress TaskStatus = "in-progress"
	StatusSuspended  TaskStatus = "suspended"
	StatusWaiting    TaskStatus = "waiting"
	StatusDone       TaskStatus = "done"
)

// AllStatuses lists every status in display order.
func AllStatuses() []TaskStatus {
	return []TaskStatus{StatusDone, StatusInProgress, StatusSuspended, StatusWaiting, StatusNotDone}
}

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	for _, v := range AllStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// DefaultPassword is assigned to every newly created contact.
const DefaultPassword = "123456"

// Contact is a person usable as attendee, assignee or secretary.
type Contact struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	OrgEmail      string `json:"orgEmail"` // login identifier
	PersonalEmail string `json:"personalEmail"`
	Gender        Gender `json:"gender"`
	Role          Role   `json:"role"`
	Position      string `json:"position"`
	Password      string `json:"password,omitempty"`
}

// FullName returns "First Last".
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// IsAdminOrSecretary reports whether the contact has elevated access.
func (c Contact) IsAdminOrSecretary() bool {
	return c.Role == RoleAdmin || c.Role == RoleSecretary
}

// Meeting is a recorded session.
type Meeting struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	SecretaryID   int64   `json:"secretaryId"`
	Company       string  `json:"company"`
	Location      string  `json:"location"`
	Date          string  `json:"date"` // Shamsi, YYYY/MM/DD
	AttendeeIDs   []int64 `json:"attendeeIds"`
	MeetingNumber string  `json:"meetingNumber"`
}

// Task is a unit of work tied to one meeting and one assignee.
type Task struct {
	ID            int64      `json:"id"`
	MeetingID     int64      `json:"meetingId"`
	Description   string     `json:"description"`
	ActionType    ActionType `json:"actionType"`
	AssigneeID    int64      `json:"assigneeId"`
	DueDate       string     `json:"dueDate"` // Shamsi, YYYY/MM/DD
	Status        TaskStatus `json:"status"`
	ClaimedStatus TaskStatus `json:"claimedStatus,omitempty"` // set by the assignee
	WaitingFor    string     `json:"waitingFor,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Attachments   []string   `json:"attachments,omitempty"`
}

// EffectiveStatus returns the claimed status when present, otherwise the
// authoritative status.
func (t Task) EffectiveStatus() TaskStatus {
	if t.ClaimedStatus != "" {
		return t.ClaimedStatus
	}
	return t.Status
}

// MeetingNumber derives the display number of a meeting from its date and id.
func MeetingNumber(date string, id int64) string {
	return strings.ReplaceAll(date, "/", "") + "-" + formatID(id)
}

// Email is an outgoing message draft.
type Email struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
