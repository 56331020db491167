// Package derive computes the read-only views shown to users: enriched task
// lists, personal task groups, dashboard figures and e-mail drafts. Every
// function works on a snapshot and recomputes from scratch.
package derive

import (
	"strings"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// Placeholder stands in for a meeting or contact that no longer resolves.
const Placeholder = "N/A"

// TaskView is a task joined with its meeting and assignee.
type TaskView struct {
	model.Task
	MeetingTitle      string `json:"meetingTitle"`
	MeetingNumber     string `json:"meetingNumber"`
	MeetingDate       string `json:"meetingDate"`
	MeetingLocation   string `json:"meetingLocation"`
	SecretaryName     string `json:"secretaryName"`
	AttendeeCount     int    `json:"attendeeCount"`
	TotalMeetingTasks int    `json:"totalMeetingTasks"`
	AssigneeName      string `json:"assigneeName"`
}

// Enrich joins every task of the snapshot to its meeting and people.
func Enrich(d model.Dataset) []TaskView {
	perMeeting := make(map[int64]int)
	for _, t := range d.Tasks {
		perMeeting[t.MeetingID]++
	}

	views := make([]TaskView, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		v := TaskView{
			Task:              t,
			MeetingTitle:      Placeholder,
			MeetingNumber:     Placeholder,
			MeetingDate:       Placeholder,
			MeetingLocation:   Placeholder,
			SecretaryName:     Placeholder,
			TotalMeetingTasks: perMeeting[t.MeetingID],
			AssigneeName:      Placeholder,
		}
		if m, ok := d.Meeting(t.MeetingID); ok {
			v.MeetingTitle = orPlaceholder(m.Title)
			v.MeetingNumber = orPlaceholder(m.MeetingNumber)
			v.MeetingDate = orPlaceholder(m.Date)
			v.MeetingLocation = orPlaceholder(m.Location)
			v.AttendeeCount = len(m.AttendeeIDs)
			if sec, ok := d.Contact(m.SecretaryID); ok {
				v.SecretaryName = sec.FullName()
			}
		}
		if a, ok := d.Contact(t.AssigneeID); ok {
			v.AssigneeName = a.FullName()
		}
		views = append(views, v)
	}
	return views
}

// Filter keeps the views whose description, meeting title, assignee name,
// status or claimed status contains query, ignoring case. An empty query
// keeps everything.
func Filter(views []TaskView, query string) []TaskView {
	if query == "" {
		return views
	}
	q := strings.ToLower(query)
	var out []TaskView
	for _, v := range views {
		if matches(v, q) {
			out = append(out, v)
		}
	}
	return out
}

func matches(v TaskView, q string) bool {
	for _, field := range []string{
		v.Description,
		v.MeetingTitle,
		v.AssigneeName,
		string(v.Status),
		string(v.ClaimedStatus),
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
