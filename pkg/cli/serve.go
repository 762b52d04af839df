package cli

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgmigrate/pkg/cli/config"
	"github.com/m-mizutani/orgmigrate/pkg/controller/server"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/infra/prompt"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr      string
		secret    types.WebhookSecret
		queueSize int64

		source   config.Source
		target   config.Target
		storage  config.Storage
		throttle config.Throttle
		retry    config.Retry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("ORGMIGRATE_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "Secret of the source organization webhook",
			Sources:     cli.EnvVars("ORGMIGRATE_WEBHOOK_SECRET"),
			Destination: (*string)(&secret),
		},
		&cli.Int64Flag{
			Name:        "queue-size",
			Usage:       "Number of repositories waiting for sync",
			Value:       server.DefaultQueueSize,
			Sources:     cli.EnvVars("ORGMIGRATE_QUEUE_SIZE"),
			Destination: &queueSize,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Keep the target in sync by mirroring repositories reported by source webhooks",
		Flags: slice.Flatten(
			serveFlags,
			source.Flags(),
			target.Flags(),
			storage.Flags(),
			throttle.Flags(),
			retry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithRun(ctx, c.Name)
			logging.From(ctx).Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Secret", secret),
				slog.Any("Source", &source),
				slog.Any("Target", &target),
				slog.Any("Storage", &storage),
				slog.Any("Throttle", &throttle),
				slog.Any("Retry", &retry),
			)
			if secret == "" {
				logging.From(ctx).Warn("webhook signature is not validated without --webhook-secret")
			}

			srcClient, err := source.New()
			if err != nil {
				return err
			}
			dstClient, err := target.New()
			if err != nil {
				return err
			}

			// nobody can answer a retry prompt in server mode
			prompter := prompt.NewStatic(false)
			clients, err := newClients(ctx, &storage,
				infra.WithSource(srcClient),
				infra.WithTarget(dstClient),
				infra.WithPrompter(prompter),
			)
			if err != nil {
				return err
			}

			uc := newUseCase(clients, &storage, append(throttle.Options(),
				usecase.WithRetryPolicy(retry.Policy(prompter)),
			)...)
			input := config.MigrationInput(&source, &target)
			if err := input.Validate(); err != nil {
				return err
			}

			s := server.New(uc, input,
				server.WithWebhookSecret(secret),
				server.WithQueueSize(int(queueSize)),
			)

			workerCtx, stopWorker := context.WithCancel(ctx)
			defer stopWorker()
			workerDone := make(chan struct{})
			go func() {
				defer close(workerDone)
				s.Run(workerCtx)
			}()

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			select {
			case err := <-serverErr:
				return err

			case <-ctx.Done():
				logging.Default().Info("shutting down server", "cause", context.Cause(ctx))

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}

				// the repository being mirrored is abandoned at its next
				// cancellation point
				stopWorker()
				<-workerDone
			}

			return nil
		},
	}
}
