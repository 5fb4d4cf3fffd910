package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"golang.org/x/sync/errgroup"
)

// TxFunc runs fn inside one persistence transaction. Repositories read the
// transaction from the context fn receives.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

// Notifier is told about the outcome of every persisted mutation.
type Notifier interface {
	Committed(ctx context.Context, changes []Change)
	Failed(ctx context.Context, mutation string, err error)
}

type Options struct {
	// Origin tags the changes of this process so its own realtime echoes are ignored.
	Origin      string
	SyncTimeout time.Duration
	Logger      *slog.Logger
	Notifier    Notifier
	Now         func() time.Time
}

// Store is the single state container of the engine.
//
// Mutations run one at a time under the store lock against a copy of the
// current state. The new state is published immediately and its effects are
// queued; a single worker persists them in order, one transaction per
// mutation. When a transaction fails the rows that mutation touched are put
// back to their value from before the mutation.
type Store struct {
	mu     sync.RWMutex
	state  *State
	closed bool

	repos    Repositories
	inTx     TxFunc
	notifier Notifier
	logger   *slog.Logger
	origin   string
	timeout  time.Duration
	now      func() time.Time

	queue []job
	wake  chan struct{}
	done  chan struct{}
}

type job struct {
	name    string
	prev    *State
	effects []Effect
	pending *Pending
}

func New(repos Repositories, inTx TxFunc, opts Options) *Store {
	if inTx == nil {
		inTx = func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }
	}
	if opts.SyncTimeout <= 0 {
		opts.SyncTimeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Store{
		state:    NewState(),
		repos:    repos,
		inTx:     inTx,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		origin:   opts.Origin,
		timeout:  opts.SyncTimeout,
		now:      opts.Now,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Store) Origin() string { return s.origin }

// Snapshot returns the current state. Callers must not modify it.
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies m and queues its effects for persistence. The returned
// error is the mutation's own error, in which case nothing changed. The
// persistence outcome is reported through the Pending.
func (s *Store) Dispatch(name string, m Mutation) (*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	prev := s.state
	next, effects, err := Apply(prev, s.now(), m)
	if err != nil {
		return nil, err
	}
	if len(effects) == 0 {
		return settled(nil), nil
	}

	s.state = next
	p := newPending()
	s.queue = append(s.queue, job{name: name, prev: prev, effects: effects, pending: p})
	s.signal()
	return p, nil
}

// Hydrate replaces the state with the content of the repositories.
func (s *Store) Hydrate(ctx context.Context) error {
	var (
		employees []employee.Employee
		records   []attendance.Record
		entries   []schedule.Entry
		delays    []payroll.WeeklyDelay
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if employees, err = s.repos.Employees.List(gctx); err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if records, err = s.repos.Attendance.List(gctx); err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if entries, err = s.repos.Schedules.List(gctx); err != nil {
			return fmt.Errorf("failed to load work schedules: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if delays, err = s.repos.Delays.List(gctx); err != nil {
			return fmt.Errorf("failed to load weekly delays: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	st := NewState()
	for _, e := range employees {
		st.Employees[e.ID] = e
	}
	for _, r := range records {
		st.Attendance[r.Key()] = r
	}
	for _, e := range entries {
		st.Schedules[e.Key()] = e
	}
	for _, d := range delays {
		st.Delays[DelayKey{WeekEndDate: d.WeekEndDate, EmployeeID: d.EmployeeID}] = d
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()

	s.logger.Info("store hydrated",
		slog.Int("employees", len(st.Employees)),
		slog.Int("attendance", len(st.Attendance)),
		slog.Int("schedules", len(st.Schedules)),
		slog.Int("delays", len(st.Delays)),
	)
	return nil
}

// Close stops accepting mutations and waits for queued effects to be persisted.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.signal()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// run persists queued jobs in dispatch order until the store is closed and drained.
func (s *Store) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		batch, closed := s.queue, s.closed
		s.queue = nil
		s.mu.Unlock()

		for _, j := range batch {
			s.execute(j)
		}
		if len(batch) > 0 {
			continue
		}
		if closed {
			return
		}
		<-s.wake
	}
}

func (s *Store) execute(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	err := s.inTx(ctx, func(ctx context.Context) error {
		for _, e := range j.effects {
			if err := e.persist(ctx, s.repos); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		s.rollback(j)
		s.logger.Error("Sync failed, local state restored",
			slog.String("mutation", j.name),
			slog.Int("effects", len(j.effects)),
			slog.String("error", err.Error()),
		)
		if s.notifier != nil {
			s.notifier.Failed(ctx, j.name, err)
		}
		j.pending.finish(fmt.Errorf("%w: %s: %w", ErrSyncFailed, j.name, err))
		return
	}

	s.logger.Debug("Sync committed",
		slog.String("mutation", j.name),
		slog.Int("effects", len(j.effects)),
		slog.Duration("duration", time.Since(start)),
	)
	if s.notifier != nil {
		changes := make([]Change, 0, len(j.effects))
		for _, e := range j.effects {
			changes = append(changes, e.Change())
		}
		s.notifier.Committed(ctx, changes)
	}
	j.pending.finish(nil)
}

func (s *Store) rollback(j job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.state.Clone()
	for i := len(j.effects) - 1; i >= 0; i-- {
		j.effects[i].restore(j.prev, cur)
	}
	s.state = cur
}
