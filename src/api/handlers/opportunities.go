package handlers

import (
	"net/http"

	"crm/src/schemas"
	"crm/src/utils"
)

func (h *Handler) GetAllOpportunities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	page, err := utils.NewPaginate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	opportunities, err := h.Controller.Opportunities.GetAllOpportunities(ctx, page)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, opportunities, http.StatusOK)
}

// GetOpportunityBoard groups the opportunities into stage columns.
func (h *Handler) GetOpportunityBoard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	board, err := h.ReportService.Board(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, board, http.StatusOK)
}

func (h *Handler) GetOpportunityByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	opportunity, err := h.Controller.Opportunities.GetOpportunityByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, opportunity, http.StatusOK)
}

func (h *Handler) CreateOpportunity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.CreateOpportunityRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.Opportunities.CreateOpportunity(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateOpportunity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateOpportunityRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	req.ID = id

	updated, err := h.Controller.Opportunities.UpdateOpportunity(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.Opportunities.DeleteOpportunity(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, nil, http.StatusNoContent)
}
