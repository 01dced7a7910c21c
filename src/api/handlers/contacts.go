package handlers

import (
	"net/http"
	"strconv"

	"crm/src/schemas"
	"crm/src/utils"
)

func (h *Handler) GetAllContacts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	page, err := utils.NewPaginate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var accountID *uint
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.HandleErrors(w, utils.BadRequest("account_id must be a positive integer"))
			return
		}
		value := uint(id)
		accountID = &value
	}

	contacts, err := h.Controller.Contacts.GetAllContacts(ctx, accountID, page)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, contacts, http.StatusOK)
}

func (h *Handler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	contact, err := h.Controller.Contacts.GetContactByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, contact, http.StatusOK)
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.CreateContactRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.Contacts.CreateContact(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateContactRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	req.ID = id

	updated, err := h.Controller.Contacts.UpdateContact(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.Contacts.DeleteContact(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, nil, http.StatusNoContent)
}
