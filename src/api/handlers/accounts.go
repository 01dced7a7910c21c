package handlers

import (
	"net/http"

	"crm/src/schemas"
	"crm/src/utils"
)

func (h *Handler) GetAllAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	page, err := utils.NewPaginate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	accounts, err := h.Controller.Accounts.GetAllAccounts(ctx, page)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, accounts, http.StatusOK)
}

func (h *Handler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	account, err := h.Controller.Accounts.GetAccountByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, account, http.StatusOK)
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.CreateAccountRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.Accounts.CreateAccount(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.Logger.WithField("account_id", created.ID).Info("Account saved")
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateAccountRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	req.ID = id

	updated, err := h.Controller.Accounts.UpdateAccount(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.Accounts.DeleteAccount(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, nil, http.StatusNoContent)
}

// GetLookups returns the options the create forms offer.
func (h *Handler) GetLookups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	lookups, err := h.Controller.Accounts.GetLookups(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, lookups, http.StatusOK)
}
