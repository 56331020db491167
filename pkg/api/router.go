package api

import (
	"net/http"
	"time"

	"github.com/mklimuk/minutes-pilot/pkg/ai"
	"github.com/mklimuk/minutes-pilot/pkg/notify"
	"github.com/mklimuk/minutes-pilot/pkg/session"
	"github.com/mklimuk/minutes-pilot/pkg/shamsi"
)

// NewRouter creates a new HTTP router. Unset optional dependencies of h get
// working defaults.
func NewRouter(h *Handler) *http.ServeMux {
	if h.Session == nil {
		h.Session = session.New()
	}
	if h.Assistant == nil {
		h.Assistant = ai.NewAssistant(nil)
	}
	if h.Notifier == nil {
		h.Notifier = notify.LogSender{}
	}
	if h.Today == nil {
		h.Today = func() string { return shamsi.Today(time.Now(), nil) }
	}
	if h.background == nil {
		h.background = runInBackground
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleHome)
	mux.HandleFunc("GET /login", h.HandleLoginStatus)
	mux.HandleFunc("POST /login", h.HandleLogin)
	mux.HandleFunc("POST /logout", h.HandleLogout)
	mux.HandleFunc("GET /me", h.requireUser(h.HandleMe))

	mux.HandleFunc("GET /contacts", h.requireAdmin(h.HandleListContacts))
	mux.HandleFunc("POST /contacts", h.requireAdmin(h.HandleCreateContact))
	mux.HandleFunc("PUT /contacts/{id}", h.requireAdmin(h.HandleUpdateContact))
	mux.HandleFunc("DELETE /contacts/{id}", h.requireAdmin(h.HandleDeleteContact))

	mux.HandleFunc("POST /meetings", h.requireAdmin(h.HandleCreateMeeting))
	mux.HandleFunc("GET /meetings", h.requireUser(h.HandleListMeetings))
	mux.HandleFunc("GET /meetings/{id}/copy", h.requireAdmin(h.HandleCopyMeeting))
	mux.HandleFunc("GET /meetings/{id}/emails", h.requireAdmin(h.HandleMeetingEmails))

	mux.HandleFunc("GET /minutes", h.requireAdmin(h.HandleListMinutes))
	mux.HandleFunc("PATCH /minutes/tasks/{id}/status", h.requireAdmin(h.HandleSetTaskStatus))
	mux.HandleFunc("PATCH /minutes/tasks/{id}/waiting-for", h.requireAdmin(h.HandleSetWaitingFor))
	mux.HandleFunc("POST /minutes/tasks/{id}/follow-up", h.requireAdmin(h.HandleFollowUp))

	mux.HandleFunc("GET /my-tasks", h.requireUser(h.HandleMyTasks))
	mux.HandleFunc("PATCH /my-tasks/{id}", h.requireUser(h.HandleUpdateMyTask))
	mux.HandleFunc("POST /my-tasks/{id}/report", h.requireUser(h.HandleReportTask))

	mux.HandleFunc("GET /dashboard", h.requireUser(h.HandleDashboard))
	mux.HandleFunc("GET /dashboard/months", h.requireUser(h.HandleDashboardMonths))

	mux.HandleFunc("POST /assistant/report", h.requireAdmin(h.HandleAssistantReport))
	mux.HandleFunc("POST /assistant/summarize", h.requireAdmin(h.HandleAssistantSummarize))

	mux.HandleFunc("POST /archive/backup", h.requireAdmin(h.HandleArchiveBackup))

	return mux
}
