package handlers

import (
	"net/http"
	"strconv"

	"crm/src/schemas"
	"crm/src/utils"
)

// GetAllActivities lists activities; ?open=true keeps the incomplete ones
// ordered by due date.
func (h *Handler) GetAllActivities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	page, err := utils.NewPaginate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	openOnly := false
	if raw := r.URL.Query().Get("open"); raw != "" {
		openOnly, err = strconv.ParseBool(raw)
		if err != nil {
			h.HandleErrors(w, utils.BadRequest("open must be true or false"))
			return
		}
	}

	activities, err := h.Controller.Activities.GetAllActivities(ctx, openOnly, page)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, activities, http.StatusOK)
}

func (h *Handler) GetActivityByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	activity, err := h.Controller.Activities.GetActivityByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, activity, http.StatusOK)
}

func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.CreateActivityRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.Activities.CreateActivity(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateActivityRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	req.ID = id

	updated, err := h.Controller.Activities.UpdateActivity(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := parseID(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.Activities.DeleteActivity(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, nil, http.StatusNoContent)
}
