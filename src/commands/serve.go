package commands

import (
	"context"
	"net/http"
	"time"

	"crm/migrations"
	"crm/src/api"
	"crm/src/api/handlers"
	"crm/src/database"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type ServeCommand struct {
	Options *Options
}

func (cmd ServeCommand) Command(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the CRM HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.main(ctx)
		},
	}
}

func (cmd ServeCommand) main(ctx context.Context) error {
	cfg, logger, backend, err := cmd.Options.bootstrap()
	if err != nil {
		return err
	}

	db, err := database.Open(backend, cfg.Databases.SQL, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.Databases.SQL.AutoMigrate {
		migrator, err := migrations.NewMigrator(db, backend.Kind, logger)
		if err != nil {
			return err
		}
		if err := migrator.Up(); err != nil {
			return err
		}
	}

	handler := handlers.NewHandler(db, backend, cfg, logger)
	httpServer := api.NewHTTPServer(api.NewServer(handler, cfg.Service.AllowedOrigins), cfg.Service)

	errC := make(chan error, 1)
	go func() {
		logger.WithFields(map[string]interface{}{
			"port":     cfg.Service.Port,
			"backend":  backend.Kind,
			"database": backend.Description,
		}).Info("Starting server")

		// ListenAndServe always returns a non-nil error; after Shutdown it is ErrServerClosed.
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}
	logger.Info("Server stopped")
	return nil
}
