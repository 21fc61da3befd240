package datalog

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

// DefaultQueryTimeout applies when a query carries no timeout_ms.
const DefaultQueryTimeout = 5 * time.Second

// DefaultMaterializeTimeout applies when materialize carries no timeout_ms.
const DefaultMaterializeTimeout = 10 * time.Second

// Pool hosts reasoner jobs on blocking workers. The reasoner cannot live in
// the cooperative scheduler, so each job builds, evaluates, and discards one
// inside a single goroutine that the caller awaits under a timeout gate. On
// timeout the worker is abandoned in place and its result is dropped.
type Pool struct {
	sem       *semaphore.Weighted
	executed  atomic.Int64
	abandoned atomic.Int64
}

// NewPool creates a pool admitting at most size concurrent reasoner jobs.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size))}
}

// PoolStats is a snapshot of the pool's lifetime counters.
type PoolStats struct {
	Executed  int64 // jobs that reached a worker
	Abandoned int64 // jobs whose caller timed out before the result arrived
}

// Stats returns the lifetime counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Executed:  p.executed.Load(),
		Abandoned: p.abandoned.Load(),
	}
}

type jobResult struct {
	verdict *Verdict
	err     error
}

// Run executes job on a pool worker and waits for its result or the timeout,
// whichever comes first. Worker panics are recovered and surface as Internal.
func (p *Pool) Run(ctx context.Context, timeout time.Duration, job func() (*Verdict, error)) (*Verdict, error) {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, enginerr.Wrap(enginerr.Internal, err)
	}

	// Buffered so an abandoned worker can still deliver and exit.
	resultCh := make(chan jobResult, 1)
	p.executed.Add(1)

	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				resultCh <- jobResult{err: enginerr.New(enginerr.Internal, "reasoner panic: %v", r)}
			}
		}()
		verdict, err := job()
		resultCh <- jobResult{verdict: verdict, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-resultCh:
		return res.verdict, res.err
	case <-timer.C:
		p.abandoned.Add(1)
		return nil, enginerr.New(enginerr.Timeout,
			"reasoner did not finish within %s", timeout)
	case <-ctx.Done():
		p.abandoned.Add(1)
		return nil, enginerr.Wrap(enginerr.Timeout, fmt.Errorf("call cancelled: %w", ctx.Err()))
	}
}
