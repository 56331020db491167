package derive

import (
	"fmt"
	"strings"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

const subjectPreview = 30

// AssignmentEmails drafts one message per distinct assignee of tasks, in the
// order each assignee first appears, listing only that assignee's tasks.
// Assignees that no longer resolve are skipped.
func AssignmentEmails(m model.Meeting, tasks []model.Task, contacts []model.Contact) []model.Email {
	var order []int64
	byAssignee := make(map[int64][]model.Task)
	for _, t := range tasks {
		if _, ok := byAssignee[t.AssigneeID]; !ok {
			order = append(order, t.AssigneeID)
		}
		byAssignee[t.AssigneeID] = append(byAssignee[t.AssigneeID], t)
	}

	var emails []model.Email
	for _, id := range order {
		assignee, ok := findContact(contacts, id)
		if !ok {
			continue
		}
		var list strings.Builder
		for _, t := range byAssignee[id] {
			fmt.Fprintf(&list, "- %s (due: %s)\n", t.Description, t.DueDate)
		}
		body := fmt.Sprintf("Dear %s,\n\nThe following tasks from the meeting %q held on %s have been assigned to you:\n\n%s\nThank you.",
			salutation(assignee), m.Title, m.Date, list.String())
		emails = append(emails, model.Email{
			To:      assignee.OrgEmail,
			Name:    assignee.FullName(),
			Subject: "Meeting tasks: " + m.Title,
			Body:    body,
		})
	}
	return emails
}

// FollowUpEmail drafts a reminder to the assignee of an enriched task.
func FollowUpEmail(v TaskView, assignee model.Contact) model.Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", salutation(assignee))
	fmt.Fprintf(&b, "As a reminder, here are the details of the task assigned to you in the meeting %q:\n\n", v.MeetingTitle)
	fmt.Fprintf(&b, "- Meeting number: %s\n", v.MeetingNumber)
	fmt.Fprintf(&b, "- Meeting date: %s\n", v.MeetingDate)
	fmt.Fprintf(&b, "- Secretary: %s\n\n", v.SecretaryName)
	fmt.Fprintf(&b, "- Task: %s\n", v.Description)
	fmt.Fprintf(&b, "- Due date: %s\n", v.DueDate)
	fmt.Fprintf(&b, "- Current status: %s\n\n", v.Status)
	b.WriteString("Please let us know if you need help or run into problems.\n\nThank you.")

	return model.Email{
		To:      assignee.OrgEmail,
		Name:    assignee.FullName(),
		Subject: "Task follow-up: " + preview(v.Description),
		Body:    b.String(),
	}
}

// StatusReportEmail drafts the assignee's progress report to the meeting
// secretary.
func StatusReportEmail(v TaskView, secretary model.Contact, assigneeName string) model.Email {
	notes := v.Notes
	if notes == "" {
		notes = "(no notes recorded)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", salutation(secretary))
	fmt.Fprintf(&b, "Here is the status of the following task from meeting %s:\n\n", v.MeetingNumber)
	fmt.Fprintf(&b, "Task: %s\n", v.Description)
	fmt.Fprintf(&b, "Current status: %s\n", v.EffectiveStatus())
	fmt.Fprintf(&b, "Due date: %s\n\n", v.DueDate)
	fmt.Fprintf(&b, "My notes:\n%s\n\n", notes)
	fmt.Fprintf(&b, "Regards,\n%s", assigneeName)

	return model.Email{
		To:      secretary.OrgEmail,
		Name:    secretary.FullName(),
		Subject: "Task status report: " + preview(v.Description),
		Body:    b.String(),
	}
}

func salutation(c model.Contact) string {
	switch c.Gender {
	case model.GenderFemale:
		return "Ms. " + c.LastName
	case model.GenderMale:
		return "Mr. " + c.LastName
	}
	return "Mr./Ms. " + c.LastName
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= subjectPreview {
		return s
	}
	return string(r[:subjectPreview]) + "..."
}

func findContact(contacts []model.Contact, id int64) (model.Contact, bool) {
	for _, c := range contacts {
		if c.ID == id {
			return c, true
		}
	}
	return model.Contact{}, false
}
