package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"crm/src/api/controllers"
	"crm/src/config"
	"crm/src/database"
	"crm/src/repositories"
	"crm/src/services"
	"crm/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	Controller    *controllers.Controller
	ReportService services.ReportServiceI
	ExportService services.ExportServiceI
	DB            *gorm.DB
	Backend       *database.Backend
	Logger        *logrus.Logger
	Title         string
	Timeout       time.Duration
	Clock         controllers.Clock
}

func NewHandler(db *gorm.DB, backend *database.Backend, cfg *config.Config, logger *logrus.Logger) *Handler {
	clock := controllers.Clock(time.Now)
	return &Handler{
		Controller: controllers.NewController(db, clock),
		ReportService: services.NewReportService(
			repositories.NewAccountRepository(db),
			repositories.NewOpportunityRepository(db),
			repositories.NewActivityRepository(db),
		),
		ExportService: services.NewExportService(db),
		DB:            db,
		Backend:       backend,
		Logger:        logger,
		Title:         cfg.App.Title,
		Timeout:       cfg.Service.RequestTimeout,
		Clock:         clock,
	}
}

// WithClock replaces the clock behind date defaults and the overdue report.
func (h *Handler) WithClock(clock controllers.Clock) *Handler {
	h.Clock = clock
	h.Controller = controllers.NewController(h.DB, clock)
	return h
}

// requestContext bounds a request by the configured timeout and carries the
// logger for the layers below.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	return utils.WithLogger(ctx, h.Logger), cancel
}

func (h *Handler) today() time.Time {
	return utils.DateOnly(h.Clock())
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	case errors.As(err, &httpErr):
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	case err != nil:
		h.Logger.WithError(err).Error("Unhandled error")
		h.respond(w, nil, map[string]string{"error": "Internal Server Error"}, http.StatusInternalServerError)
	default:
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

func parseID(r *http.Request, param string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.UnprocessableEntity(param + " must be a positive integer")
	}
	return uint(id), nil
}

func decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.BadRequest("invalid JSON body: " + err.Error())
	}
	return nil
}
