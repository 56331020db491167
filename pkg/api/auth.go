package api

import (
	"errors"
	"net/http"

	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type meResponse struct {
	User               model.Contact `json:"user"`
	IsAdminOrSecretary bool          `json:"isAdminOrSecretary"`
	Home               string        `json:"home"`
}

func homeFor(u model.Contact) string {
	if u.IsAdminOrSecretary() {
		return "/dashboard"
	}
	return "/my-tasks"
}

// HandleHome handles GET / by redirecting to the page that fits the user.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	u, ok := h.Session.User()
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, homeFor(u), http.StatusSeeOther)
}

// HandleLoginStatus handles GET /login
func (h *Handler) HandleLoginStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": h.Session.IsAuthenticated()})
}

// HandleLogin handles POST /login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.Session.Login(h.Store.Contacts(), req.Email, req.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid e-mail or password"})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		User:               publicContact(u),
		IsAdminOrSecretary: u.IsAdminOrSecretary(),
		Home:               homeFor(u),
	})
}

// HandleLogout handles POST /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe handles GET /me
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request, u model.Contact) {
	writeJSON(w, http.StatusOK, meResponse{
		User:               publicContact(u),
		IsAdminOrSecretary: u.IsAdminOrSecretary(),
		Home:               homeFor(u),
	})
}
