package derive

import (
	"slices"
	"strings"

	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/shamsi"
)

// UnknownAssignee labels tasks whose assignee no longer exists.
const UnknownAssignee = "Unknown"

// FilterAll disables a dashboard filter, as does an empty value.
const FilterAll = "all"

// DashboardFilter narrows the dashboard to one month (YYYY/MM) and/or one
// meeting number.
type DashboardFilter struct {
	Month         string `json:"month"`
	MeetingNumber string `json:"meeting"`
}

// Count is one bar or slice of a chart.
type Count struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Stats are the dashboard figures.
type Stats struct {
	TotalMeetings int     `json:"totalMeetings"`
	TotalTasks    int     `json:"totalTasks"`
	OverdueTasks  int     `json:"overdueTasks"`
	ByStatus      []Count `json:"byStatus"`
	ByAssignee    []Count `json:"byAssignee"`
}

// Dashboard aggregates the tasks user may see. Normal users only see their
// own tasks. today is the current Shamsi date.
//
// Overdue compares due dates as separator-free text, so a stored date that
// is not zero-padded may be misclassified.
func Dashboard(d model.Dataset, user model.Contact, f DashboardFilter, today string) Stats {
	month := activeFilter(f.Month)
	number := activeFilter(f.MeetingNumber)

	var visible []model.Task
	for _, t := range d.Tasks {
		if user.Role == model.RoleNormal && t.AssigneeID != user.ID {
			continue
		}
		var meetingDate, meetingNumber string
		if m, ok := d.Meeting(t.MeetingID); ok {
			meetingDate, meetingNumber = m.Date, m.MeetingNumber
		}
		if month != "" && !strings.HasPrefix(meetingDate, month) {
			continue
		}
		if number != "" && meetingNumber != number {
			continue
		}
		visible = append(visible, t)
	}

	stats := Stats{TotalTasks: len(visible)}
	for _, m := range d.Meetings {
		if month == "" || strings.HasPrefix(m.Date, month) {
			stats.TotalMeetings++
		}
	}

	todayKey := shamsi.Compact(today)
	var byStatus, byAssignee counter
	for _, t := range visible {
		if shamsi.Compact(t.DueDate) < todayKey && t.Status != model.StatusDone {
			stats.OverdueTasks++
		}
		byStatus.inc(string(t.EffectiveStatus()))
		name := UnknownAssignee
		if c, ok := d.Contact(t.AssigneeID); ok && c.LastName != "" {
			name = c.LastName
		}
		byAssignee.inc(name)
	}
	stats.ByStatus = byStatus.list()
	stats.ByAssignee = byAssignee.list()
	return stats
}

// AvailableMonths lists the distinct YYYY/MM prefixes of meeting dates, most
// recent first.
func AvailableMonths(meetings []model.Meeting) []string {
	seen := make(map[string]bool)
	var months []string
	for _, m := range meetings {
		month := shamsi.Month(m.Date)
		if month == "" || seen[month] {
			continue
		}
		seen[month] = true
		months = append(months, month)
	}
	slices.Sort(months)
	slices.Reverse(months)
	return months
}

func activeFilter(v string) string {
	if v == FilterAll {
		return ""
	}
	return v
}

// counter keeps counts in first-appearance order.
type counter struct {
	counts []Count
	index  map[string]int
}

func (c *counter) inc(name string) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	i, ok := c.index[name]
	if !ok {
		i = len(c.counts)
		c.index[name] = i
		c.counts = append(c.counts, Count{Name: name})
	}
	c.counts[i].Value++
}

// list returns the counts, never nil.
func (c *counter) list() []Count {
	if c.counts == nil {
		return []Count{}
	}
	return c.counts
}
