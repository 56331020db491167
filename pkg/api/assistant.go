package api

import (
	"errors"
	"net/http"

	"github.com/mklimuk/minutes-pilot/pkg/ai"
	"github.com/mklimuk/minutes-pilot/pkg/model"
)

type reportRequest struct {
	Query string `json:"query"`
}

type summarizeRequest struct {
	Transcript string `json:"transcript"`
}

// HandleAssistantReport handles POST /assistant/report
func (h *Handler) HandleAssistantReport(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeResult(w, h.Assistant.Report(r.Context(), req.Query, h.Store.Snapshot()))
}

// HandleAssistantSummarize handles POST /assistant/summarize
func (h *Handler) HandleAssistantSummarize(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	var req summarizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeResult(w, h.Assistant.Summarize(r.Context(), req.Transcript))
}

// writeResult always carries the result text; the status tells callers
// whether it is generated or an inline message.
func writeResult(w http.ResponseWriter, res ai.Result) {
	status := http.StatusOK
	switch {
	case res.Err == nil:
	case errors.Is(res.Err, ai.ErrEmptyQuery):
		status = http.StatusBadRequest
	case errors.Is(res.Err, ai.ErrBusy):
		status = http.StatusTooManyRequests
	case errors.Is(res.Err, ai.ErrNotConfigured):
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, res)
}
