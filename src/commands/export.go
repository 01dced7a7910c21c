package commands

import (
	"context"
	"fmt"

	"crm/src/database"
	"crm/src/services"
	"crm/src/utils"

	"github.com/spf13/cobra"
)

type ExportCommand struct {
	Options *Options
}

func (cmd ExportCommand) Command(ctx context.Context) *cobra.Command {
	var dir string
	var withWorkbook bool

	c := &cobra.Command{
		Use:   "export",
		Short: "write every CRM table as CSV into a directory",
		RunE: func(c *cobra.Command, _ []string) error {
			written, err := cmd.main(ctx, dir, withWorkbook)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintln(c.OutOrStdout(), path)
			}
			return nil
		},
	}
	c.Flags().StringVar(&dir, "dir", "export", "output directory")
	c.Flags().BoolVar(&withWorkbook, "xlsx", false, "also write "+services.WorkbookFileName)
	return c
}

func (cmd ExportCommand) main(ctx context.Context, dir string, withWorkbook bool) ([]string, error) {
	cfg, logger, backend, err := cmd.Options.bootstrap()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(backend, cfg.Databases.SQL, logger)
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	ctx = utils.WithLogger(ctx, logger)
	return services.NewExportService(db).ExportToDir(ctx, dir, withWorkbook)
}
