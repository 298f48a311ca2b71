package progressview

import (
	"context"
	"sync"
)

// PendingFunc computes a progress maximum that is not known up front, such
// as the size of a directory tree. It should return promptly once ctx is
// cancelled.
type PendingFunc func(ctx context.Context) (float64, error)

// PendingState is the lifecycle of a pending maximum.
type PendingState int

const (
	Awaiting PendingState = iota
	Resolved
	Rejected
	Cancelled
)

func (s PendingState) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Rejected:
		return "rejected"
	case Cancelled:
		return "cancelled"
	default:
		return "awaiting"
	}
}

// Pending tracks one SetProgressMaxPending call. While it is Awaiting the
// progress bar animates; it ends exactly once.
type Pending struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu    sync.Mutex
	state PendingState
	value float64
	err   error
}

func newPending(cancel context.CancelFunc) *Pending {
	if cancel == nil {
		cancel = func() {}
	}
	return &Pending{cancel: cancel, done: make(chan struct{})}
}

// finish moves the operation out of Awaiting. Later calls are ignored.
func (p *Pending) finish(state PendingState, value float64, err error) {
	p.once.Do(func() {
		p.mu.Lock()
		p.state = state
		p.value = value
		p.err = err
		p.mu.Unlock()
		p.cancel()
		close(p.done)
	})
}

// Done is closed when the operation leaves Awaiting.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// State returns the current lifecycle state.
func (p *Pending) State() PendingState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Wait blocks until the operation ends or ctx is done. It returns the
// resolved maximum, or the rejection or cancellation error.
func (p *Pending) Wait(ctx context.Context) (float64, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.err
}
