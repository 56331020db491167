package api

import (
	"net/http"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// HandleArchiveBackup handles POST /archive/backup
func (h *Handler) HandleArchiveBackup(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	if h.Backup == nil {
		http.Error(w, "drive backup is not configured", http.StatusServiceUnavailable)
		return
	}
	report, err := h.Backup.RunOnce(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
