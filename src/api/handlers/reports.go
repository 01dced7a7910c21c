package handlers

import (
	"bytes"
	"net/http"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	dashboard, err := h.ReportService.Dashboard(ctx, h.Title, h.today())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, dashboard, http.StatusOK)
}

func (h *Handler) GetPipelineReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	pipeline, err := h.ReportService.Pipeline(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, pipeline, http.StatusOK)
}

// GetPipelineChart serves the pipeline as an HTML bar chart.
func (h *Handler) GetPipelineChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var buf bytes.Buffer
	if err := h.ReportService.RenderPipelineChart(ctx, &buf); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) GetOverdueReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	overdue, err := h.ReportService.Overdue(ctx, h.today())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, overdue, http.StatusOK)
}
