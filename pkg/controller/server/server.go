package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/errutil"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

const DefaultQueueSize = 256

// Server receives webhooks of the source organization and mirrors changed
// repositories to the target one at a time.
type Server struct {
	mux   *chi.Mux
	uc    interfaces.UseCase
	input *model.MigrationInput
	queue *queue
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	secret    types.WebhookSecret
	queueSize int
}

type Option func(*config)

func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.secret = secret
	}
}

func WithQueueSize(size int) Option {
	return func(cfg *config) {
		cfg.queueSize = size
	}
}

func New(uc interfaces.UseCase, input *model.MigrationInput, options ...Option) *Server {
	cfg := &config{
		queueSize: DefaultQueueSize,
	}
	for _, opt := range options {
		opt(cfg)
	}

	x := &Server{
		uc:    uc,
		input: input,
		queue: newQueue(cfg.queueSize),
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Post("/webhook/github", func(w http.ResponseWriter, r *http.Request) {
		name, err := parseWebhook(r, cfg.secret, input.SourceOrg)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to validate GitHub webhook", err)
			safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
			return
		}

		if name == "" {
			safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"no sync required"}`))
			return
		}

		switch x.queue.push(name) {
		case enqueued:
			safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"sync enqueued"}`))
		case alreadyPending:
			safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"sync already pending"}`))
		case queueFull:
			logging.From(r.Context()).Warn("sync queue is full", slog.Any("repo", name))
			safeWrite(w, http.StatusServiceUnavailable, []byte(`{"status":"error","message":"sync queue is full"}`))
		}
	})

	x.mux = r
	return x
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

// Run mirrors queued repositories until ctx is done. Repositories are
// processed one by one because working copies are not safe for concurrent
// use and the target applies secondary rate limits.
func (x *Server) Run(ctx context.Context) {
	for {
		name, ok := x.queue.pop(ctx)
		if !ok {
			return
		}
		x.mirror(ctx, name)
	}
}

func (x *Server) mirror(ctx context.Context, name types.RepoName) {
	logger := logging.From(ctx).With(slog.Any("repo", name))
	logger.Info("starting repository mirror")

	report, err := x.uc.MirrorRepository(ctx, x.input, name)
	if err != nil {
		errutil.HandleError(ctx, "failed to mirror repository", err)
		return
	}

	logger.Info("repository mirrored",
		slog.Bool("up_to_date", report.UpToDate()),
		slog.Int("branches", len(report.Branches)),
		slog.Int("pull_failures", len(report.PullFailures)),
	)
}
