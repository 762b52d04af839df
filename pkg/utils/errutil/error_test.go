package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := goerr.New("test error", goerr.V("repo", "alpha"))

		// Should not panic
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", nil)
	})
}

func TestIsDeletionDeclined(t *testing.T) {
	gt.True(t, errutil.IsDeletionDeclined(goerr.Wrap(types.ErrDeletionDeclined, "declined")))
	gt.False(t, errutil.IsDeletionDeclined(errors.New("other")))
	gt.False(t, errutil.IsDeletionDeclined(nil))
}
