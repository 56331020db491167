package derive

import (
	"slices"
	"testing"

	"github.com/mklimuk/minutes-pilot/pkg/model"
	"pgregory.net/rapid"
)

func genViews(rt *rapid.T) []TaskView {
	n := rapid.IntRange(0, 25).Draw(rt, "n")
	views := make([]TaskView, n)
	for i := range views {
		views[i] = TaskView{
			Task: model.Task{
				ID:          int64(i + 1),
				Description: rapid.StringMatching(`[a-z]{3,10}`).Draw(rt, "description"),
				DueDate:     rapid.StringMatching(`140[0-4]/0[1-9]/[12][0-9]`).Draw(rt, "due"),
				Status:      rapid.SampledFrom(model.AllStatuses()).Draw(rt, "status"),
			},
			AttendeeCount: rapid.IntRange(0, 10).Draw(rt, "attendees"),
		}
	}
	return views
}

// TestPropertySortReversal verifies that ascending and descending sorts on a
// key without duplicates are exact reverses of each other.
func TestPropertySortReversal(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		views := genViews(rt)
		asc := ids(Sort(views, SortByID, Ascending))
		desc := ids(Sort(views, SortByID, Descending))
		slices.Reverse(desc)
		if !slices.Equal(asc, desc) {
			rt.Fatalf("asc %v is not the reverse of desc", asc)
		}
	})
}

// TestPropertySortStable verifies that views with equal keys keep their
// original relative order.
func TestPropertySortStable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		views := genViews(rt)
		sorted := Sort(views, SortByAttendeeCount, rapid.SampledFrom([]Direction{Ascending, Descending}).Draw(rt, "dir"))
		for i := 1; i < len(sorted); i++ {
			if sorted[i-1].AttendeeCount == sorted[i].AttendeeCount && sorted[i-1].ID > sorted[i].ID {
				rt.Fatalf("ties out of order at %d: %d before %d", i, sorted[i-1].ID, sorted[i].ID)
			}
		}
	})
}

// TestPropertyFilterUniqueDescription verifies that filtering by a substring
// found in exactly one description returns exactly that task.
func TestPropertyFilterUniqueDescription(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		views := genViews(rt)
		marker := "ZZQX"
		target := rapid.IntRange(0, len(views)).Draw(rt, "target")
		extra := TaskView{Task: model.Task{ID: 999, Description: "needs " + marker + " here", Status: model.StatusDone}}
		views = slices.Insert(views, target, extra)

		got := Filter(views, "zzqx")
		if len(got) != 1 || got[0].ID != 999 {
			rt.Fatalf("Filter returned %v", ids(got))
		}
	})
}

// TestPropertyGroupPartition verifies that grouping never loses or
// duplicates a task.
func TestPropertyGroupPartition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		views := genViews(rt)
		by := rapid.SampledFrom([]GroupBy{GroupNone, GroupMeeting, GroupStatus}).Draw(rt, "by")
		var all []int64
		for _, g := range GroupTasks(views, by) {
			all = append(all, ids(g.Tasks)...)
		}
		slices.Sort(all)
		if !slices.Equal(all, ids(views)) {
			rt.Fatalf("grouping changed membership: %v", all)
		}
	})
}
