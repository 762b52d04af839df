package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/mock"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
	"github.com/m-mizutani/orgmigrate/pkg/utils/errutil"
)

func TestRetryPolicies(t *testing.T) {
	ctx := context.Background()
	errPush := errors.New("rejected")

	t.Run("AbortImmediately never retries", func(t *testing.T) {
		d, err := usecase.AbortImmediately().Attempt(ctx, 1, errPush)
		gt.NoError(t, err)
		gt.V(t, d).Equal(types.Abort)
	})

	t.Run("MaxAttempts(2) retries once", func(t *testing.T) {
		policy := usecase.MaxAttempts(2)
		d, err := policy.Attempt(ctx, 1, errPush)
		gt.NoError(t, err)
		gt.V(t, d).Equal(types.Retry)

		d, err = policy.Attempt(ctx, 2, errPush)
		gt.NoError(t, err)
		gt.V(t, d).Equal(types.Abort)
	})

	t.Run("PromptRetry follows the answer", func(t *testing.T) {
		answer := true
		prompter := &mock.PrompterMock{
			ConfirmFunc: func(ctx context.Context, message string) (bool, error) {
				gt.S(t, message).Contains("rejected")
				return answer, nil
			},
		}
		policy := usecase.PromptRetry(prompter)

		d, err := policy.Attempt(ctx, 1, errPush)
		gt.NoError(t, err)
		gt.V(t, d).Equal(types.Retry)

		answer = false
		d, err = policy.Attempt(ctx, 2, errPush)
		gt.NoError(t, err)
		gt.V(t, d).Equal(types.Abort)
	})

	t.Run("PromptRetry aborts on prompt failure", func(t *testing.T) {
		prompter := &mock.PrompterMock{
			ConfirmFunc: func(ctx context.Context, message string) (bool, error) {
				return false, types.ErrInterrupted
			},
		}
		d, err := usecase.PromptRetry(prompter).Attempt(ctx, 1, errPush)
		gt.True(t, errors.Is(err, types.ErrPushAborted))
		gt.False(t, errutil.IsDeletionDeclined(err))
		gt.V(t, d).Equal(types.Abort)
	})
}
