package commands

import (
	"context"
	"fmt"

	"crm/src/database"

	"github.com/spf13/cobra"
)

// BackendCommand prints which database the current configuration selects.
type BackendCommand struct {
	Options *Options
}

func (cmd BackendCommand) Command(ctx context.Context) *cobra.Command {
	var ping bool

	c := &cobra.Command{
		Use:   "backend",
		Short: "show the database backend selected by the configuration",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, logger, backend, err := cmd.Options.bootstrap()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%s\t%s\n", backend.Kind, backend.Description)
			if !ping {
				return nil
			}

			db, err := database.Open(backend, cfg.Databases.SQL, logger)
			if err != nil {
				return err
			}
			defer database.Close(db)
			if err := database.Ping(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), "reachable")
			return nil
		},
	}
	c.Flags().BoolVar(&ping, "ping", false, "also connect and ping the database")
	return c
}
