// Package execqueue bounds how many submitted units of work run at once,
// queuing the overflow until a slot frees up. It shields the record store
// from unbounded concurrent query load when many queue items are handled in
// one pass.
package execqueue

import "context"

// DefaultMaxConcurrent is the slot count used when the constructor receives
// a non-positive limit.
const DefaultMaxConcurrent = 10

// Executor runs at most maxConcurrent submitted functions at a time.
// Construct one per process (or per queue) and inject it; there is no
// package-level instance.
type Executor struct {
	sem chan struct{}
}

// New creates an executor with the given concurrency limit.
func New(maxConcurrent int) *Executor {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Executor{sem: make(chan struct{}, maxConcurrent)}
}

// Do blocks until a slot is free (or ctx is cancelled), then runs fn and
// returns its error. Waiters are served roughly in submission order.
func (e *Executor) Do(ctx context.Context, fn func(context.Context) error) error {
	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-e.sem }()

	return fn(ctx)
}

// Limit returns the configured slot count.
func (e *Executor) Limit() int { return cap(e.sem) }
