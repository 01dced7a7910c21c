package commands

import (
	"context"

	"crm/migrations"
	"crm/src/database"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type MigrateCommand struct {
	Options *Options
}

func (cmd MigrateCommand) Command(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "apply, roll back or inspect the schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.main(ctx, args[0])
		},
	}
}

func (cmd MigrateCommand) main(_ context.Context, command string) error {
	cfg, logger, backend, err := cmd.Options.bootstrap()
	if err != nil {
		return err
	}

	db, err := database.Open(backend, cfg.Databases.SQL, logger)
	if err != nil {
		return errors.Wrap(err, "migrate : failed to connect to database")
	}
	defer database.Close(db)

	migrator, err := migrations.NewMigrator(db, backend.Kind, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(command); err != nil {
		return err
	}

	version, err := migrator.Version()
	if err != nil {
		return err
	}
	logger.WithFields(map[string]interface{}{"command": command, "version": version, "backend": backend.Kind}).Info("Migration finished")
	return nil
}
