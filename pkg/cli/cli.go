package cli

import (
	"context"
	"errors"
	"io/fs"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgmigrate/pkg/cli/config"
	"github.com/m-mizutani/orgmigrate/pkg/utils/errutil"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

// LoadDotEnv is exported for testing purposes
var LoadDotEnv = loadDotEnv

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string

		sentry config.Sentry
	)

	// .env is read before flags so that env sources see its values
	if err := LoadDotEnv(); err != nil {
		logging.Default().Error("failed to load .env", "error", err)
		return err
	}

	app := &cli.Command{
		Name:  "orgmigrate",
		Usage: "Migrate repositories, branches, tags and issues from one organization to another",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [trace|debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("ORGMIGRATE_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("ORGMIGRATE_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("ORGMIGRATE_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		}, sentry.Flags()),
		Commands: []*cli.Command{
			fetchCommand(),
			cloneCommand(),
			provisionCommand(),
			pushCommand(),
			issuesCommand(),
			migrateCommand(),
			serveCommand(),
			deleteCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if err := sentry.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, argv); err != nil {
		if errutil.IsDeletionDeclined(err) {
			logging.Default().Info("deletion declined by operator")
			return nil
		}

		errutil.HandleError(ctx, "fatal error", err)
		sentry.Flush()
		return err
	}

	return nil
}
