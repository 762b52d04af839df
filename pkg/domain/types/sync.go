package types

import (
	"github.com/google/uuid"
)

// PushResult classifies the outcome of a push against the target remote.
type PushResult int

const (
	PushUpToDate PushResult = iota
	PushUpdated
)

func (x PushResult) String() string {
	switch x {
	case PushUpToDate:
		return "already up to date"
	case PushUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// RetryDecision is returned by a retry policy after a failed push.
type RetryDecision int

const (
	Abort RetryDecision = iota
	Retry
)

func (x RetryDecision) String() string {
	if x == Retry {
		return "retry"
	}
	return "abort"
}

type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string {
	return string(x)
}
