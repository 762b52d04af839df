package server

import (
	"context"
	"sync"

	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
)

type pushResult int

const (
	enqueued pushResult = iota
	alreadyPending
	queueFull
)

// queue holds repositories waiting to be mirrored. A repository is queued at
// most once until a worker takes it.
type queue struct {
	mu      sync.Mutex
	pending map[types.RepoName]struct{}
	ch      chan types.RepoName
}

func newQueue(size int) *queue {
	return &queue{
		pending: make(map[types.RepoName]struct{}),
		ch:      make(chan types.RepoName, size),
	}
}

func (x *queue) push(name types.RepoName) pushResult {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.pending[name]; ok {
		return alreadyPending
	}

	select {
	case x.ch <- name:
		x.pending[name] = struct{}{}
		return enqueued
	default:
		return queueFull
	}
}

func (x *queue) pop(ctx context.Context) (types.RepoName, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case name := <-x.ch:
		x.mu.Lock()
		delete(x.pending, name)
		x.mu.Unlock()
		return name, true
	}
}
