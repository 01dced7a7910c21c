package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"crm/src/services"
	"crm/src/utils"

	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportTableCSV downloads one table as <table>.csv.
func (h *Handler) ExportTableCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	table := chi.URLParam(r, "table")
	if !services.IsExportTable(table) {
		h.HandleErrors(w, utils.NotFound(fmt.Sprintf("unknown table %q", table)))
		return
	}

	// Buffered so a failure halfway through still yields a JSON error.
	var buf bytes.Buffer
	if err := h.ExportService.ExportCSV(ctx, table, &buf); err != nil {
		if errors.Is(err, services.ErrUnknownTable) {
			err = utils.NotFound(err.Error())
		}
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", table+".csv"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// ExportWorkbook downloads every table as one XLSX workbook.
func (h *Handler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	f, err := h.ExportService.ExportWorkbook(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.WorkbookFileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
