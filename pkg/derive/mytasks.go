package derive

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// MyTasks returns the tasks assigned to user, latest due date first. Due
// dates compare as text.
func MyTasks(d model.Dataset, user model.Contact) []TaskView {
	var mine []TaskView
	for _, v := range Enrich(d) {
		if v.AssigneeID == user.ID {
			mine = append(mine, v)
		}
	}
	slices.SortStableFunc(mine, func(a, b TaskView) int {
		return strings.Compare(b.DueDate, a.DueDate)
	})
	return mine
}

// GroupBy selects how a personal task list is grouped.
type GroupBy string

const (
	GroupNone    GroupBy = "none"
	GroupMeeting GroupBy = "meeting"
	GroupStatus  GroupBy = "status"
)

// AllTasksGroup is the name of the single group used by GroupNone.
const AllTasksGroup = "All tasks"

// ParseGroupBy accepts none, meeting or status. Empty means none.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(strings.ToLower(s)) {
	case "", GroupNone:
		return GroupNone, nil
	case GroupMeeting:
		return GroupMeeting, nil
	case GroupStatus:
		return GroupStatus, nil
	}
	return "", fmt.Errorf("unknown grouping %q", s)
}

// Group is a named slice of task views.
type Group struct {
	Name  string     `json:"name"`
	Tasks []TaskView `json:"tasks"`
}

// GroupTasks splits views by meeting number or effective status. Groups
// appear in the order their first member does.
func GroupTasks(views []TaskView, by GroupBy) []Group {
	if by == GroupNone || by == "" {
		return []Group{{Name: AllTasksGroup, Tasks: views}}
	}
	var groups []Group
	index := make(map[string]int)
	for _, v := range views {
		key := v.MeetingNumber
		if by == GroupStatus {
			key = string(v.EffectiveStatus())
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Name: key})
		}
		groups[i].Tasks = append(groups[i].Tasks, v)
	}
	return groups
}
