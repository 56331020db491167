package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mklimuk/minutes-pilot/pkg/ai"
	"github.com/mklimuk/minutes-pilot/pkg/integration/calendar"
	"github.com/mklimuk/minutes-pilot/pkg/integration/drive"
	"github.com/mklimuk/minutes-pilot/pkg/minutes"
	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/notify"
	"github.com/mklimuk/minutes-pilot/pkg/session"
	"github.com/mklimuk/minutes-pilot/pkg/store"
	"github.com/mklimuk/minutes-pilot/pkg/sync"
)

// Handler holds dependencies for API handlers. Archive, Git, Calendar and
// Backup are optional.
type Handler struct {
	Store     *store.Store
	Session   *session.Session
	Assistant *ai.Assistant
	Notifier  notify.Sender
	Archive   *minutes.Archive
	Git       *sync.GitManager
	Calendar  *calendar.Publisher
	Backup    *drive.Backup
	Today     func() string // current Shamsi date

	background func(name string, fn func() error)
}

// runInBackground runs fn without waiting for it. Failures are only logged.
func runInBackground(name string, fn func() error) {
	go func() {
		if err := fn(); err != nil {
			log.Printf("api: %s failed: %v", name, err)
		}
	}()
}

type userHandler func(w http.ResponseWriter, r *http.Request, u model.Contact)

// requireUser sends anonymous requests to the login page.
func (h *Handler) requireUser(next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := h.Session.User()
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r, u)
	}
}

// requireAdmin additionally sends users without elevated access to their
// own task list.
func (h *Handler) requireAdmin(next userHandler) http.HandlerFunc {
	return h.requireUser(func(w http.ResponseWriter, r *http.Request, u model.Contact) {
		if !u.IsAdminOrSecretary() {
			http.Redirect(w, r, "/my-tasks", http.StatusSeeOther)
			return
		}
		next(w, r, u)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: failed to encode response: %v", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := model.ParseID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeStoreError maps store errors to responses.
func writeStoreError(w http.ResponseWriter, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verr.Problems})
	case errors.Is(err, store.ErrTaskNotFound), errors.Is(err, store.ErrMeetingNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// publicContact strips the shared secret before a contact leaves the process.
func publicContact(c model.Contact) model.Contact {
	c.Password = ""
	return c
}

func publicContacts(cs []model.Contact) []model.Contact {
	out := make([]model.Contact, len(cs))
	for i, c := range cs {
		out[i] = publicContact(c)
	}
	return out
}
