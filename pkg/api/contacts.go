package api

import (
	"net/http"

	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/store"
)

// HandleListContacts handles GET /contacts
func (h *Handler) HandleListContacts(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	writeJSON(w, http.StatusOK, map[string]any{"contacts": publicContacts(h.Store.Contacts())})
}

// HandleCreateContact handles POST /contacts
func (h *Handler) HandleCreateContact(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	var req store.ContactInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := store.ValidateContact(req); err != nil {
		writeStoreError(w, err)
		return
	}

	c := h.Store.AddContact(req)
	writeJSON(w, http.StatusCreated, publicContact(c))
}

// HandleUpdateContact handles PUT /contacts/{id}. An empty password keeps
// the current one.
func (h *Handler) HandleUpdateContact(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.Contact
	if !decodeJSON(w, r, &req) {
		return
	}

	existing, found := h.Store.ContactByID(id)
	if !found {
		http.Error(w, "contact not found", http.StatusNotFound)
		return
	}
	err := store.ValidateContact(store.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		OrgEmail:  req.OrgEmail,
		Gender:    req.Gender,
		Role:      req.Role,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	req.ID = id
	if req.Password == "" {
		req.Password = existing.Password
	}
	if req.Gender == "" {
		req.Gender = existing.Gender
	}
	if req.Role == "" {
		req.Role = existing.Role
	}
	if !h.Store.UpdateContact(req) {
		http.Error(w, "contact not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, publicContact(req))
}

// HandleDeleteContact handles DELETE /contacts/{id}
func (h *Handler) HandleDeleteContact(w http.ResponseWriter, r *http.Request, _ model.Contact) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !h.Store.DeleteContact(id) {
		http.Error(w, "contact not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
