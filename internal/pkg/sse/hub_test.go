package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishByTopic(t *testing.T) {
	h := NewHub(4)

	schedules, cleanupSchedules := h.Subscribe("work_schedules")
	defer cleanupSchedules()
	all, cleanupAll := h.Subscribe()
	defer cleanupAll()

	h.Publish(Event{Topic: "work_schedules", Event: "change"})
	h.Publish(Event{Topic: "daily_attendance", Event: "change"})

	require.Len(t, schedules, 1)
	assert.Equal(t, "work_schedules", (<-schedules).Topic)
	assert.Len(t, all, 2)
}

func TestHub_SubscriberOnManyTopicsGetsOneCopy(t *testing.T) {
	h := NewHub(4)
	ch, cleanup := h.Subscribe("employees", AllTopics)
	defer cleanup()

	h.Publish(Event{Topic: "employees", Event: "change"})
	assert.Len(t, ch, 1)
	assert.Equal(t, 1, h.TotalSubscribers())
}

func TestHub_FullBufferDropsEvent(t *testing.T) {
	h := NewHub(1)
	ch, cleanup := h.Subscribe("employees")
	defer cleanup()

	h.Publish(Event{Topic: "employees"})
	h.Publish(Event{Topic: "employees"})

	assert.Len(t, ch, 1)
	assert.Equal(t, uint64(1), h.Dropped())
}

func TestHub_Cleanup(t *testing.T) {
	h := NewHub(1)
	ch, cleanup := h.Subscribe("employees", "work_schedules")
	assert.Equal(t, 1, h.SubscriberCount("employees"))

	cleanup()
	cleanup()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.SubscriberCount("employees"))
	assert.Equal(t, 0, h.TotalSubscribers())

	// publishing after cleanup must not panic
	h.Publish(Event{Topic: "employees"})
}

func TestHub_PublishToMany(t *testing.T) {
	h := NewHub(4)
	a, cleanupA := h.Subscribe("a")
	defer cleanupA()
	b, cleanupB := h.Subscribe("b")
	defer cleanupB()

	h.PublishToMany([]string{"a", "b"}, Event{Event: "sync_failed"})
	assert.Equal(t, "a", (<-a).Topic)
	assert.Equal(t, "b", (<-b).Topic)
}
