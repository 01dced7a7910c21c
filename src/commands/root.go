package commands

import (
	"context"
	"os"

	"crm/src/config"
	"crm/src/database"
	"crm/src/utils"
	aws_handler "crm/src/utils/aws"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Options are the flags shared by every sub-command.
type Options struct {
	Settings string
	Env      string
}

func NewRootCommand(ctx context.Context) *cobra.Command {
	opts := &Options{}
	root := &cobra.Command{
		Use:           "crm",
		Short:         "Rockland Concrete CRM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.Settings, "settings", "./settings", "directory holding appsettings.yaml")
	root.PersistentFlags().StringVar(&opts.Env, "env", os.Getenv("ENV"), "environment suffix of the settings overlay, e.g. TESTING")

	root.AddCommand(
		ServeCommand{Options: opts}.Command(ctx),
		MigrateCommand{Options: opts}.Command(ctx),
		ExportCommand{Options: opts}.Command(ctx),
		BackendCommand{Options: opts}.Command(ctx),
	)
	return root
}

// bootstrap loads the configuration, builds the logger and resolves which
// database backend this process uses.
func (o *Options) bootstrap() (*config.Config, *logrus.Logger, *database.Backend, error) {
	cfg, err := config.LoadConfig(o.Settings, o.Env)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to load config")
	}
	logger := utils.NewLoggerFromConfig(cfg.Service.LogLevel, cfg.Service.LogFile)

	if cfg.Databases.SQL.PostgresURL == "" && cfg.Secrets.AWS.PostgresURLSecretID != "" {
		handler, err := aws_handler.NewAWSHandler(cfg.Secrets.AWS.Region)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "failed to create AWS session")
		}
		used, err := aws_handler.ResolvePostgresURL(cfg, handler.SecretManager)
		if err != nil {
			return nil, nil, nil, err
		}
		if used {
			logger.WithField("secret_id", cfg.Secrets.AWS.PostgresURLSecretID).Info("PostgreSQL connection string read from Secrets Manager")
		}
	}

	backend, err := database.ResolveBackend(cfg.Databases.SQL)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, backend, nil
}
