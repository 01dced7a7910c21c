package api

import (
	"net/http"
	"time"

	"crm/src/api/handlers"
	"crm/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Metrics *Metrics
}

func NewServer(handler *handlers.Handler, allowedOrigins []string) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
		Metrics: NewMetrics(),
	}
	server.InitMiddleware(allowedOrigins)
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitMiddleware(allowedOrigins []string) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.RealIP)
	s.Router.Use(requestLogger(s.Handler.Logger))
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(s.Metrics.Instrument)
	s.Router.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}).Handler)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Get("/ready", s.Handler.Ready)
	s.Router.Method(http.MethodGet, "/metrics", s.Metrics.Handler())

	s.Router.Route("/api", func(r chi.Router) {
		r.Get("/settings", s.Handler.GetSettings)
		r.Get("/dashboard", s.Handler.GetDashboard)
		r.Get("/lookups", s.Handler.GetLookups)

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllAccounts)
			r.Post("/", s.Handler.CreateAccount)
			r.Get("/{id}", s.Handler.GetAccountByID)
			r.Put("/{id}", s.Handler.UpdateAccount)
			r.Delete("/{id}", s.Handler.DeleteAccount)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllContacts)
			r.Post("/", s.Handler.CreateContact)
			r.Get("/{id}", s.Handler.GetContactByID)
			r.Put("/{id}", s.Handler.UpdateContact)
			r.Delete("/{id}", s.Handler.DeleteContact)
		})

		r.Route("/opportunities", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllOpportunities)
			r.Post("/", s.Handler.CreateOpportunity)
			r.Get("/board", s.Handler.GetOpportunityBoard)
			r.Get("/{id}", s.Handler.GetOpportunityByID)
			r.Put("/{id}", s.Handler.UpdateOpportunity)
			r.Delete("/{id}", s.Handler.DeleteOpportunity)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllQuotes)
			r.Post("/", s.Handler.CreateQuote)
			r.Get("/{id}", s.Handler.GetQuoteByID)
			r.Put("/{id}", s.Handler.UpdateQuote)
			r.Delete("/{id}", s.Handler.DeleteQuote)
			r.Get("/{id}/items", s.Handler.GetQuoteItems)
			r.Post("/{id}/items", s.Handler.AddQuoteItem)
			r.Delete("/{id}/items/{itemId}", s.Handler.DeleteQuoteItem)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllActivities)
			r.Post("/", s.Handler.CreateActivity)
			r.Get("/{id}", s.Handler.GetActivityByID)
			r.Put("/{id}", s.Handler.UpdateActivity)
			r.Delete("/{id}", s.Handler.DeleteActivity)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/pipeline", s.Handler.GetPipelineReport)
			r.Get("/pipeline/chart", s.Handler.GetPipelineChart)
			r.Get("/overdue", s.Handler.GetOverdueReport)
		})

		r.Route("/export", func(r chi.Router) {
			r.Get("/workbook.xlsx", s.Handler.ExportWorkbook)
			r.Get("/{table}.csv", s.Handler.ExportTableCSV)
		})
	})
}

func NewHTTPServer(server *Server, cfg config.ServiceConfig) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Handler:      server,
	}
}

func requestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			entry := logger.WithFields(logrus.Fields{
				"request_id":  middleware.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      statusOf(ww),
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": r.RemoteAddr,
			})
			if statusOf(ww) >= http.StatusInternalServerError {
				entry.Warn("Request failed")
				return
			}
			entry.Debug("Request handled")
		})
	}
}
