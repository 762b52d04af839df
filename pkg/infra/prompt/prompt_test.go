package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/infra/prompt"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()

	yes := prompt.NewStatic(true)
	gt.True(t, gt.R1(yes.Confirm(ctx, "delete?")).NoError(t))

	no := prompt.NewStatic(false)
	gt.False(t, gt.R1(no.Confirm(ctx, "delete?")).NoError(t))
}

func TestSurveyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := prompt.NewSurvey().Confirm(ctx, "delete?")
	gt.False(t, ok)
	gt.True(t, errors.Is(err, types.ErrInterrupted))
}
