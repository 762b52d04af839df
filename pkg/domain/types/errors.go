package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")

	// ErrNotFound is returned by remote clients when the resource does not exist.
	ErrNotFound = goerr.New("not found")

	// ErrPushAborted is returned when a branch push failed and the retry policy gave up.
	ErrPushAborted = goerr.New("push aborted")

	// ErrDeletionDeclined is returned when the operator answered no to the
	// deletion confirmation. It is the only error a run ends successfully with.
	ErrDeletionDeclined = goerr.New("deletion declined by operator")

	// ErrInterrupted is returned when a prompt was interrupted by Ctrl-C or
	// the context was done before asking.
	ErrInterrupted = goerr.New("prompt interrupted")
)
