package memory

import (
	"context"
	"maps"
	"sync"
)

type snapshotter interface {
	snapshot() (restore func())
}

// NewTxFunc returns a transaction runner over repos. When fn fails every
// repository of this package among repos is put back to its rows from before
// the call. Other values are ignored.
func NewTxFunc(repos ...any) func(ctx context.Context, fn func(ctx context.Context) error) error {
	var tables []snapshotter
	for _, r := range repos {
		if s, ok := r.(snapshotter); ok {
			tables = append(tables, s)
		}
	}

	var mu sync.Mutex
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		mu.Lock()
		defer mu.Unlock()

		restores := make([]func(), len(tables))
		for i, t := range tables {
			restores[i] = t.snapshot()
		}
		if err := fn(ctx); err != nil {
			for _, restore := range restores {
				restore()
			}
			return err
		}
		return nil
	}
}

func (r *employeeRepositoryImpl) snapshot() func() {
	r.mu.RLock()
	rows := maps.Clone(r.rows)
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.rows = rows
	}
}

func (r *attendanceRepositoryImpl) snapshot() func() {
	r.mu.RLock()
	rows := maps.Clone(r.rows)
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.rows = rows
	}
}

func (r *workScheduleRepositoryImpl) snapshot() func() {
	r.mu.RLock()
	rows := maps.Clone(r.rows)
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.rows = rows
	}
}

func (r *weeklyDelayRepositoryImpl) snapshot() func() {
	r.mu.RLock()
	rows := maps.Clone(r.rows)
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.rows = rows
	}
}
