package api

import (
	"net/http"

	"github.com/mklimuk/minutes-pilot/pkg/derive"
	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/store"
)

type setStatusRequest struct {
	Status     model.TaskStatus `json:"status"`
	WaitingFor string           `json:"waitingFor"`
}

type waitingForRequest struct {
	WaitingFor string `json:"waitingFor"`
}

type updateMyTaskRequest struct {
	ClaimedStatus *model.TaskStatus `json:"claimedStatus"`
	Notes         *string           `json:"notes"`
}

// HandleListMinutes handles GET /minutes?q=&sort=&dir=
func (h *Handler) HandleListMinutes(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	q := r.URL.Query()
	views := derive.Filter(derive.Enrich(h.Store.Snapshot()), q.Get("q"))

	if sortBy := q.Get("sort"); sortBy != "" {
		key, err := derive.ParseSortKey(sortBy)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		dir, err := derive.ParseDirection(q.Get("dir"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		views = derive.Sort(views, key, dir)
	}
	if views == nil {
		views = []derive.TaskView{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": views})
}

// HandleSetTaskStatus handles PATCH /minutes/tasks/{id}/status
func (h *Handler) HandleSetTaskStatus(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req setStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.Store.UpdateTask(id, store.SetStatus{Status: req.Status, WaitingFor: req.WaitingFor})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// HandleSetWaitingFor handles PATCH /minutes/tasks/{id}/waiting-for. Only a
// task that is already waiting has a note to edit.
func (h *Handler) HandleSetWaitingFor(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req waitingForRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.Store.UpdateTask(id, store.SetWaitingFor{Note: req.WaitingFor})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// HandleFollowUp handles POST /minutes/tasks/{id}/follow-up by sending the
// assignee a reminder.
func (h *Handler) HandleFollowUp(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	snap := h.Store.Snapshot()
	v, found := findView(derive.Enrich(snap), id)
	if !found {
		http.Error(w, store.ErrTaskNotFound.Error(), http.StatusNotFound)
		return
	}
	assignee, found := snap.Contact(v.AssigneeID)
	if !found {
		http.Error(w, "task assignee no longer exists", http.StatusUnprocessableEntity)
		return
	}

	email := derive.FollowUpEmail(v, assignee)
	h.sendEmails([]model.Email{email})
	writeJSON(w, http.StatusAccepted, email)
}

// HandleMyTasks handles GET /my-tasks?group=
func (h *Handler) HandleMyTasks(w http.ResponseWriter, r *http.Request, u model.Contact) {
	by, err := derive.ParseGroupBy(r.URL.Query().Get("group"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	groups := derive.GroupTasks(derive.MyTasks(h.Store.Snapshot(), u), by)
	writeJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

// HandleUpdateMyTask handles PATCH /my-tasks/{id}. Only the assignee may
// claim a status or edit notes.
func (h *Handler) HandleUpdateMyTask(w http.ResponseWriter, r *http.Request, u model.Contact) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateMyTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, found := h.Store.TaskByID(id)
	if !found {
		http.Error(w, store.ErrTaskNotFound.Error(), http.StatusNotFound)
		return
	}
	if t.AssigneeID != u.ID {
		http.Error(w, "task is assigned to someone else", http.StatusForbidden)
		return
	}

	var updates []store.TaskUpdate
	if req.ClaimedStatus != nil {
		updates = append(updates, store.SetClaimedStatus{Status: *req.ClaimedStatus})
	}
	if req.Notes != nil {
		updates = append(updates, store.SetNotes{Notes: *req.Notes})
	}
	if len(updates) == 0 {
		http.Error(w, "nothing to update", http.StatusBadRequest)
		return
	}

	t, err := h.Store.UpdateTask(id, updates...)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// HandleReportTask handles POST /my-tasks/{id}/report by e-mailing the
// task's status to the meeting secretary.
func (h *Handler) HandleReportTask(w http.ResponseWriter, r *http.Request, u model.Contact) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	snap := h.Store.Snapshot()
	v, found := findView(derive.Enrich(snap), id)
	if !found {
		http.Error(w, store.ErrTaskNotFound.Error(), http.StatusNotFound)
		return
	}
	if v.AssigneeID != u.ID {
		http.Error(w, "task is assigned to someone else", http.StatusForbidden)
		return
	}

	m, found := snap.Meeting(v.MeetingID)
	if !found {
		http.Error(w, "task meeting no longer exists", http.StatusUnprocessableEntity)
		return
	}
	secretary, found := snap.Contact(m.SecretaryID)
	if !found {
		http.Error(w, "meeting secretary no longer exists", http.StatusUnprocessableEntity)
		return
	}

	email := derive.StatusReportEmail(v, secretary, u.FullName())
	h.sendEmails([]model.Email{email})
	writeJSON(w, http.StatusAccepted, email)
}

func findView(views []derive.TaskView, id int64) (derive.TaskView, bool) {
	for _, v := range views {
		if v.ID == id {
			return v, true
		}
	}
	return derive.TaskView{}, false
}
