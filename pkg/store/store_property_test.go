package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/mklimuk/minutes-pilot/pkg/model"
	"pgregory.net/rapid"
)

// TestPropertyIDsUnique verifies that identifiers stay unique within each
// collection across any mix of contact and meeting creations, even when the
// clock stands still or moves backwards, and that every new identifier lies
// above the loaded ones.
func TestPropertyIDsUnique(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := time.Date(2024, 7, 31, 9, 0, 0, 0, time.UTC)
		offsets := rapid.SliceOfN(rapid.IntRange(-5, 5), 1, 30).Draw(rt, "clock_offsets")
		step := 0
		clock := func() time.Time {
			d := offsets[step%len(offsets)]
			step++
			return base.Add(time.Duration(d) * time.Millisecond)
		}
		s := New(newMemKV(), WithClock(clock))
		s.Load()

		var floor int64
		loaded := s.Snapshot()
		for _, c := range loaded.Contacts {
			floor = max(floor, c.ID)
		}
		for _, m := range loaded.Meetings {
			floor = max(floor, m.ID)
		}
		for _, task := range loaded.Tasks {
			floor = max(floor, task.ID)
		}

		var created []int64
		ops := rapid.IntRange(1, 15).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			if rapid.Bool().Draw(rt, "contact") {
				c := s.AddContact(ContactInput{FirstName: "c"})
				created = append(created, c.ID)
				continue
			}
			n := rapid.IntRange(0, 4).Draw(rt, "tasks")
			tasks := make([]TaskInput, n)
			for j := range tasks {
				tasks[j] = TaskInput{Description: "t", AssigneeID: 3, DueDate: "1403/05/20"}
			}
			m, ts, err := s.AddMeetingAndTasks(validMeeting(), tasks)
			if err != nil {
				rt.Fatalf("AddMeetingAndTasks: %v", err)
			}
			created = append(created, m.ID)
			for _, task := range ts {
				created = append(created, task.ID)
			}
		}

		fresh := map[int64]bool{}
		for _, id := range created {
			if id <= floor {
				rt.Fatalf("new id %d not above loaded ids (max %d)", id, floor)
			}
			if fresh[id] {
				rt.Fatalf("id %d handed out twice", id)
			}
			fresh[id] = true
		}

		snap := s.Snapshot()
		checkUnique := func(kind string, ids []int64) {
			seen := map[int64]bool{}
			for _, id := range ids {
				if seen[id] {
					rt.Fatalf("duplicate %s id %d", kind, id)
				}
				seen[id] = true
			}
		}
		var contactIDs, meetingIDs, taskIDs []int64
		for _, c := range snap.Contacts {
			contactIDs = append(contactIDs, c.ID)
		}
		for _, m := range snap.Meetings {
			meetingIDs = append(meetingIDs, m.ID)
		}
		for _, task := range snap.Tasks {
			taskIDs = append(taskIDs, task.ID)
		}
		checkUnique("contact", contactIDs)
		checkUnique("meeting", meetingIDs)
		checkUnique("task", taskIDs)
	})
}

// TestPropertyWaitingNoteOnlyWhenWaiting verifies that after any sequence of
// status changes a non-waiting task carries no waiting-for note.
func TestPropertyWaitingNoteOnlyWhenWaiting(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s, _ := newTestStore(t)
		id := rapid.Int64Range(1, 7).Draw(rt, "task")

		n := rapid.IntRange(1, 10).Draw(rt, "updates")
		for i := 0; i < n; i++ {
			st := rapid.SampledFrom(model.AllStatuses()).Draw(rt, "status")
			note := rapid.StringMatching(`[a-z ]{0,12}`).Draw(rt, "note")
			got, err := s.UpdateTask(id, SetStatus{Status: st, WaitingFor: note})
			if err != nil {
				rt.Fatalf("UpdateTask: %v", err)
			}
			if got.Status != model.StatusWaiting && got.WaitingFor != "" {
				rt.Fatalf("status %q carries note %q", got.Status, got.WaitingFor)
			}
			if got.Status == model.StatusWaiting && got.WaitingFor != note {
				rt.Fatalf("waiting note = %q, want %q", got.WaitingFor, note)
			}
		}
	})
}

// TestPropertyReloadRoundTrip verifies that whatever the store persisted is
// read back unchanged by a fresh store over the same key-value area.
func TestPropertyReloadRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kv := newMemKV()
		s := New(kv, WithClock(fixedClock()))
		s.Load()

		n := rapid.IntRange(1, 5).Draw(rt, "contacts")
		for i := 0; i < n; i++ {
			s.AddContact(ContactInput{
				FirstName: rapid.StringMatching(`[A-Z][a-z]{1,8}`).Draw(rt, "first"),
				LastName:  rapid.StringMatching(`[A-Z][a-z]{1,8}`).Draw(rt, "last"),
				Role:      rapid.SampledFrom(model.AllRoles()).Draw(rt, "role"),
			})
		}
		if _, err := s.UpdateTask(1, SetNotes{Notes: rapid.StringMatching(`[a-zA-Z0-9 .,]{0,40}`).Draw(rt, "notes")}); err != nil {
			rt.Fatalf("UpdateTask: %v", err)
		}

		reloaded := New(kv)
		reloaded.Load()
		if !reflect.DeepEqual(reloaded.Contacts(), s.Contacts()) {
			rt.Fatalf("contacts differ after reload")
		}
		if !reflect.DeepEqual(reloaded.Tasks(), s.Tasks()) {
			rt.Fatalf("tasks differ after reload")
		}
	})
}
