package repository

import (
	"context"
	"sync"
)

// ExclusiveRunner serializes multi-step mutations against the key-value
// store. The store offers no cross-key transactions, so the engine runs as
// a single writer: every mutation acquires the lock, runs to completion,
// and performs explicit compensating actions on partial failure.
type ExclusiveRunner interface {
	RunExclusive(ctx context.Context, fn func(ctx context.Context) error) error
}

type exclusiveRunner struct {
	mu sync.Mutex
}

func NewExclusiveRunner() ExclusiveRunner {
	return &exclusiveRunner{}
}

func (r *exclusiveRunner) RunExclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(ctx)
}
