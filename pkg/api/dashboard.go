package api

import (
	"net/http"

	"github.com/mklimuk/minutes-pilot/pkg/derive"
	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// HandleDashboard handles GET /dashboard?month=&meeting=
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request, u model.Contact) {
	q := r.URL.Query()
	f := derive.DashboardFilter{Month: q.Get("month"), MeetingNumber: q.Get("meeting")}
	writeJSON(w, http.StatusOK, derive.Dashboard(h.Store.Snapshot(), u, f, h.Today()))
}

// HandleDashboardMonths handles GET /dashboard/months
func (h *Handler) HandleDashboardMonths(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	months := derive.AvailableMonths(h.Store.Meetings())
	if months == nil {
		months = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"months": months})
}
