package handlers

import (
	"net/http"

	"crm/src/schemas"
	"crm/src/utils"
)

func (h *Handler) GetAllQuotes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	page, err := utils.NewPaginate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	quotes, err := h.Controller.Quotes.GetAllQuotes(ctx, page)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, quotes, http.StatusOK)
}

func (h *Handler) GetQuoteByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	quote, err := h.Controller.Quotes.GetQuoteByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, quote, http.StatusOK)
}

func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.CreateQuoteRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.Quotes.CreateQuote(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.Logger.WithField("quote_number", created.QuoteNumber).Info("Quote saved")
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateQuoteRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	req.ID = id

	updated, err := h.Controller.Quotes.UpdateQuote(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.Quotes.DeleteQuote(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, nil, http.StatusNoContent)
}

func (h *Handler) GetQuoteItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	items, err := h.Controller.Quotes.GetQuoteItems(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, items, http.StatusOK)
}

func (h *Handler) AddQuoteItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.CreateQuoteItemRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	req.QuoteID = id

	item, err := h.Controller.Quotes.AddQuoteItem(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, item, http.StatusCreated)
}

func (h *Handler) DeleteQuoteItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	itemID, err := parseID(r, "itemId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.Quotes.DeleteQuoteItem(ctx, id, itemID); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, nil, http.StatusNoContent)
}
