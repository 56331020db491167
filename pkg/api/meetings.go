package api

import (
	"context"
	"log"
	"net/http"

	"github.com/mklimuk/minutes-pilot/pkg/derive"
	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/notify"
	"github.com/mklimuk/minutes-pilot/pkg/session"
	"github.com/mklimuk/minutes-pilot/pkg/store"
)

// CreateMeetingRequest is the body of POST /meetings.
type CreateMeetingRequest struct {
	Meeting store.MeetingInput `json:"meeting"`
	Tasks   []store.TaskInput  `json:"tasks"`
}

type createMeetingResponse struct {
	Meeting  model.Meeting `json:"meeting"`
	Tasks    []model.Task  `json:"tasks"`
	Notified int           `json:"notified"`
}

// HandleCreateMeeting handles POST /meetings. With notify=true every
// assignee receives an e-mail listing their tasks.
func (h *Handler) HandleCreateMeeting(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	var req CreateMeetingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, tasks, err := h.Store.AddMeetingAndTasks(req.Meeting, req.Tasks)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("api: meeting %s created with %d tasks", m.MeetingNumber, len(tasks))

	contacts := h.Store.Contacts()
	h.publishMeeting(m, tasks, contacts)

	resp := createMeetingResponse{Meeting: m, Tasks: tasks}
	if r.URL.Query().Get("notify") == "true" {
		emails := derive.AssignmentEmails(m, tasks, contacts)
		h.sendEmails(emails)
		resp.Notified = len(emails)
	}
	writeJSON(w, http.StatusCreated, resp)
}

// publishMeeting writes the minutes note, commits it and publishes the
// calendar event, all in the background.
func (h *Handler) publishMeeting(m model.Meeting, tasks []model.Task, contacts []model.Contact) {
	if h.Archive != nil {
		h.background("archive", func() error {
			path, err := h.Archive.WriteMeeting(m, tasks, contacts)
			if err != nil {
				return err
			}
			log.Printf("api: minutes written to %s", path)
			if h.Git == nil {
				return nil
			}
			return h.Git.Sync("Add minutes " + m.MeetingNumber + ": " + m.Title)
		})
	}
	if h.Calendar != nil {
		h.background("calendar", func() error {
			_, err := h.Calendar.Publish(context.Background(), m, contacts)
			return err
		})
	}
}

func (h *Handler) sendEmails(emails []model.Email) {
	if len(emails) == 0 {
		return
	}
	h.background("notify", func() error {
		return notify.SendAll(context.Background(), h.Notifier, emails)
	})
}

// HandleListMeetings handles GET /meetings
func (h *Handler) HandleListMeetings(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	writeJSON(w, http.StatusOK, map[string]any{"meetings": h.Store.Meetings()})
}

// HandleCopyMeeting handles GET /meetings/{id}/copy. It returns a creation
// draft when the user may edit the meeting.
func (h *Handler) HandleCopyMeeting(w http.ResponseWriter, r *http.Request, u model.Contact) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, found := h.Store.MeetingByID(id)
	if !found {
		http.Error(w, store.ErrMeetingNotFound.Error(), http.StatusNotFound)
		return
	}
	if !session.CanEditMeeting(u, m, h.Today()) {
		http.Error(w, "meeting can no longer be edited", http.StatusForbidden)
		return
	}

	draft, tasks, err := h.Store.CopyMeeting(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CreateMeetingRequest{Meeting: draft, Tasks: tasks})
}

// HandleMeetingEmails handles GET /meetings/{id}/emails
func (h *Handler) HandleMeetingEmails(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, found := h.Store.MeetingByID(id)
	if !found {
		http.Error(w, store.ErrMeetingNotFound.Error(), http.StatusNotFound)
		return
	}
	emails := derive.AssignmentEmails(m, h.Store.TasksForMeeting(id), h.Store.Contacts())
	writeJSON(w, http.StatusOK, map[string]any{"emails": emails})
}
