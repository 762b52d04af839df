package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	gt.V(t, logging.From(newCtx)).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRunID(t *testing.T) {
	t.Run("get new run ID from context", func(t *testing.T) {
		runID, ctx := logging.CtxRunID(context.Background())
		gt.V(t, runID).NotEqual("")

		retrieved, _ := logging.CtxRunID(ctx)
		gt.V(t, retrieved).Equal(runID)
	})

	t.Run("WithRun keeps existing run ID", func(t *testing.T) {
		runID, ctx := logging.CtxRunID(context.Background())
		ctx = logging.WithRun(ctx, "push")

		retrieved, _ := logging.CtxRunID(ctx)
		gt.V(t, retrieved).Equal(runID)
		gt.V(t, logging.From(ctx)).NotEqual(logging.Default())
	})
}

func TestCtxWithTime(t *testing.T) {
	ctx := logging.CtxWithTime(context.Background(), func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	})

	gt.V(t, logging.CtxTime(ctx).Year()).Equal(2024)
	gt.False(t, logging.CtxTime(context.Background()).IsZero())
}
