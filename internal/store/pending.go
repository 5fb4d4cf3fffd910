package store

import "context"

// Pending is the persistence outcome of one dispatched mutation.
type Pending struct {
	done chan struct{}
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func settled(err error) *Pending {
	p := newPending()
	p.finish(err)
	return p
}

func (p *Pending) finish(err error) {
	p.err = err
	close(p.done)
}

func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the mutation is persisted or rolled back.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

type syncKey struct{}

// WithSync marks ctx so that Settle waits for persistence.
func WithSync(ctx context.Context) context.Context {
	return context.WithValue(ctx, syncKey{}, true)
}

func WantsSync(ctx context.Context) bool {
	v, _ := ctx.Value(syncKey{}).(bool)
	return v
}

// Settle waits for p when ctx was marked with WithSync, and returns at once otherwise.
func Settle(ctx context.Context, p *Pending) error {
	if p == nil || !WantsSync(ctx) {
		return nil
	}
	return p.Wait(ctx)
}
