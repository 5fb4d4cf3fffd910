package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunOnceRecordsStatus(t *testing.T) {
	s := NewScheduler(quietLogger())
	s.AddJob(Job{Name: "ok", Interval: time.Hour, Fn: func(ctx context.Context) error { return nil }})
	s.AddJob(Job{Name: "broken", Interval: time.Hour, Fn: func(ctx context.Context) error { return errors.New("portal down") }})

	s.RunOnce(context.Background())

	status := s.Status()
	require.Len(t, status, 2)
	assert.Equal(t, 1, status[0].Runs)
	assert.Zero(t, status[0].Failures)
	assert.Equal(t, 1, status[1].Failures)
	assert.Equal(t, "portal down", status[1].LastError)
}

func TestScheduler_StartRunsImmediateJobAndStops(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(quietLogger())
	s.AddJob(Job{Name: "tick", Interval: time.Hour, Immediate: true, Fn: func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}})

	require.NoError(t, s.Start(context.Background()))
	assert.ErrorIs(t, s.Start(context.Background()), ErrAlreadyStarted)

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler(quietLogger())
	s.Stop()
}
