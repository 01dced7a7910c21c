package handlers

import (
	"fmt"
	"net/http"

	"crm/src/database"
	"crm/src/utils"
)

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "Im alive!")
}

// Ready reports whether the database answers a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := database.Ping(ctx, h.DB); err != nil {
		h.Logger.WithError(err).Warn("Readiness check failed")
		h.HandleErrors(w, utils.ServiceUnavailable("database unavailable"))
		return
	}
	h.respond(w, r, map[string]string{"status": "ready", "backend": string(h.Backend.Kind)}, http.StatusOK)
}
