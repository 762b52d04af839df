package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
)

// RetryPolicy decides whether a failed push is attempted again. attempt is
// the number of failed attempts so far, starting from 1.
type RetryPolicy interface {
	Attempt(ctx context.Context, attempt int, err error) (types.RetryDecision, error)
}

type RetryPolicyFunc func(ctx context.Context, attempt int, err error) (types.RetryDecision, error)

func (f RetryPolicyFunc) Attempt(ctx context.Context, attempt int, err error) (types.RetryDecision, error) {
	return f(ctx, attempt, err)
}

// AbortImmediately never retries
func AbortImmediately() RetryPolicy {
	return RetryPolicyFunc(func(ctx context.Context, attempt int, err error) (types.RetryDecision, error) {
		return types.Abort, nil
	})
}

// MaxAttempts allows n attempts in total
func MaxAttempts(n int) RetryPolicy {
	return RetryPolicyFunc(func(ctx context.Context, attempt int, err error) (types.RetryDecision, error) {
		if attempt < n {
			return types.Retry, nil
		}
		return types.Abort, nil
	})
}

// PromptRetry asks the operator after every failure. A prompt that cannot be
// answered aborts the push.
func PromptRetry(prompter interfaces.Prompter) RetryPolicy {
	return RetryPolicyFunc(func(ctx context.Context, attempt int, err error) (types.RetryDecision, error) {
		msg := fmt.Sprintf("Push failed (attempt %d): %s\nRetry?", attempt, err.Error())
		ok, perr := prompter.Confirm(ctx, msg)
		if perr != nil {
			return types.Abort, goerr.Wrap(types.ErrPushAborted, "failed to ask for retry",
				goerr.V("attempt", attempt),
				goerr.V("cause", err.Error()),
				goerr.V("prompt_error", perr.Error()),
			)
		}
		if ok {
			return types.Retry, nil
		}
		return types.Abort, nil
	})
}
