package derive

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey names a sortable TaskView field.
type SortKey string

const (
	SortByID                SortKey = "id"
	SortByDescription       SortKey = "description"
	SortByMeetingTitle      SortKey = "meetingTitle"
	SortByMeetingNumber     SortKey = "meetingNumber"
	SortByMeetingDate       SortKey = "meetingDate"
	SortByAssigneeName      SortKey = "assigneeName"
	SortBySecretaryName     SortKey = "secretaryName"
	SortByDueDate           SortKey = "dueDate"
	SortByStatus            SortKey = "status"
	SortByClaimedStatus     SortKey = "claimedStatus"
	SortByActionType        SortKey = "actionType"
	SortByAttendeeCount     SortKey = "attendeeCount"
	SortByTotalMeetingTasks SortKey = "totalMeetingTasks"
	SortByMeetingLocation   SortKey = "meetingLocation"
)

var sortKeys = []SortKey{
	SortByID, SortByDescription, SortByMeetingTitle, SortByMeetingNumber, SortByMeetingDate,
	SortByAssigneeName, SortBySecretaryName, SortByDueDate, SortByStatus, SortByClaimedStatus,
	SortByActionType, SortByAttendeeCount, SortByTotalMeetingTasks, SortByMeetingLocation,
}

// ParseSortKey accepts any SortKey name, case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range sortKeys {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Direction orders a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts asc/ascending and desc/descending. Empty means
// ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// Sort returns a sorted copy of views. The sort is stable: views with equal
// keys keep their relative order. Text compares bytewise, counts and ids
// numerically.
func Sort(views []TaskView, key SortKey, dir Direction) []TaskView {
	out := slices.Clone(views)
	num, isNum := numericField(key)
	str := stringField(key)
	slices.SortStableFunc(out, func(a, b TaskView) int {
		var c int
		if isNum {
			c = cmp.Compare(num(a), num(b))
		} else {
			c = strings.Compare(str(a), str(b))
		}
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}

func numericField(key SortKey) (func(TaskView) int64, bool) {
	switch key {
	case SortByID:
		return func(v TaskView) int64 { return v.ID }, true
	case SortByAttendeeCount:
		return func(v TaskView) int64 { return int64(v.AttendeeCount) }, true
	case SortByTotalMeetingTasks:
		return func(v TaskView) int64 { return int64(v.TotalMeetingTasks) }, true
	}
	return nil, false
}

func stringField(key SortKey) func(TaskView) string {
	switch key {
	case SortByDescription:
		return func(v TaskView) string { return v.Description }
	case SortByMeetingTitle:
		return func(v TaskView) string { return v.MeetingTitle }
	case SortByMeetingNumber:
		return func(v TaskView) string { return v.MeetingNumber }
	case SortByMeetingDate:
		return func(v TaskView) string { return v.MeetingDate }
	case SortByAssigneeName:
		return func(v TaskView) string { return v.AssigneeName }
	case SortBySecretaryName:
		return func(v TaskView) string { return v.SecretaryName }
	case SortByDueDate:
		return func(v TaskView) string { return v.DueDate }
	case SortByStatus:
		return func(v TaskView) string { return string(v.Status) }
	case SortByClaimedStatus:
		return func(v TaskView) string { return string(v.ClaimedStatus) }
	case SortByActionType:
		return func(v TaskView) string { return string(v.ActionType) }
	case SortByMeetingLocation:
		return func(v TaskView) string { return v.MeetingLocation }
	}
	return func(TaskView) string { return "" }
}
