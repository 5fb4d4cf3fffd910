package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/brown009872/payroll-app/internal/pkg/sse"
	"github.com/brown009872/payroll-app/internal/repository/memory"
	"github.com/brown009872/payroll-app/internal/store"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore(t *testing.T, origin string) *store.Store {
	t.Helper()
	s := store.New(store.Repositories{
		Employees:  memory.NewEmployeeRepository(),
		Attendance: memory.NewAttendanceRepository(),
		Schedules:  memory.NewWorkScheduleRepository(),
		Delays:     memory.NewWeeklyDelayRepository(),
	}, nil, store.Options{Origin: origin, Logger: quietLogger()})
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func scheduleChange() store.Change {
	entry := schedule.NewEntry("2025-06-10", "e1")
	entry.ID = "s1"
	entry.Slots = schedule.SlotsOf(true, false, false, false)
	return store.Change{Op: store.OpInsert, Table: store.TableSchedules, Record: entry}
}

func expectedPayload(t *testing.T, c store.Change, origin string) string {
	t.Helper()
	record, err := json.Marshal(c.Record)
	require.NoError(t, err)
	payload, err := json.Marshal(Event{EventType: c.Op, Table: c.Table, Record: record, Origin: origin})
	require.NoError(t, err)
	return string(payload)
}

func TestPublisher_Publish(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	p := NewPublisher(rdb, "payroll:changes", "node-a")
	c := scheduleChange()

	mock.ExpectPublish("payroll:changes", expectedPayload(t, c, "node-a")).SetVal(1)

	require.NoError(t, p.Publish(context.Background(), []store.Change{c}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublisher_PublishError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	p := NewPublisher(rdb, "payroll:changes", "node-a")
	c := scheduleChange()

	mock.ExpectPublish("payroll:changes", expectedPayload(t, c, "node-a")).SetErr(errors.New("redis down"))

	err := p.Publish(context.Background(), []store.Change{c})
	assert.ErrorContains(t, err, "redis down")
}

func TestNotifier_CommittedFansOutToHubAndRedis(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	hub := sse.NewHub(4)
	events, cleanup := hub.Subscribe(store.TableSchedules)
	defer cleanup()

	c := scheduleChange()
	mock.ExpectPublish("payroll:changes", expectedPayload(t, c, "node-a")).SetVal(1)

	n := NewNotifier(hub, NewPublisher(rdb, "payroll:changes", "node-a"), quietLogger())
	n.Committed(context.Background(), []store.Change{c})

	require.Len(t, events, 1)
	ev := <-events
	assert.Equal(t, EventChange, ev.Event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotifier_Failed(t *testing.T) {
	hub := sse.NewHub(4)
	events, cleanup := hub.Subscribe(TopicSystem)
	defer cleanup()

	NewNotifier(hub, nil, quietLogger()).Failed(context.Background(), "toggle_slot", errors.New("timeout"))

	require.Len(t, events, 1)
	ev := <-events
	assert.Equal(t, EventSyncFailed, ev.Event)
	assert.Equal(t, "toggle_slot", ev.Data.(map[string]string)["mutation"])
}

func TestSubscriber_Handle(t *testing.T) {
	st := newStore(t, "node-b")
	hub := sse.NewHub(4)
	events, cleanup := hub.Subscribe()
	defer cleanup()
	sub := NewSubscriber(nil, "payroll:changes", st, hub, quietLogger())

	c := scheduleChange()
	require.NoError(t, sub.Handle(expectedPayload(t, c, "node-a")))

	entry, ok := st.Snapshot().Schedules[schedule.Key{Date: "2025-06-10", EmployeeID: "e1"}]
	require.True(t, ok)
	assert.True(t, entry.Slots.Has(schedule.SlotMorning))
	assert.Len(t, events, 1)
}

func TestSubscriber_IgnoresOwnOrigin(t *testing.T) {
	st := newStore(t, "node-a")
	sub := NewSubscriber(nil, "payroll:changes", st, sse.NewHub(4), quietLogger())

	require.NoError(t, sub.Handle(expectedPayload(t, scheduleChange(), "node-a")))
	assert.Empty(t, st.Snapshot().Schedules)
}

func TestSubscriber_HandleRejectsGarbage(t *testing.T) {
	sub := NewSubscriber(nil, "payroll:changes", newStore(t, "node-a"), sse.NewHub(4), quietLogger())
	assert.Error(t, sub.Handle("not json"))
	assert.Error(t, sub.Handle(`{"event_type":"insert","table":"payments","record":{},"origin":"x"}`))
}
