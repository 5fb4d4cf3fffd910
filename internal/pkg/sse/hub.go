package sse

import (
	"sync"
)

// AllTopics subscribes to every topic.
const AllTopics = "*"

// Event is one message pushed to stream clients.
type Event struct {
	Topic string
	Event string
	Data  interface{}
}

// Hub fans events out to stream subscribers by topic.
type Hub struct {
	mu          sync.RWMutex
	bufferSize  int
	subscribers map[string]map[chan Event]struct{}
	dropped     uint64
}

// NewHub creates a Hub whose subscriber channels hold bufferSize events.
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &Hub{
		bufferSize:  bufferSize,
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers one channel for the given topics and returns it with
// its cleanup function. No topic means AllTopics.
func (h *Hub) Subscribe(topics ...string) (chan Event, func()) {
	if len(topics) == 0 {
		topics = []string{AllTopics}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.bufferSize)
	for _, topic := range topics {
		if h.subscribers[topic] == nil {
			h.subscribers[topic] = make(map[chan Event]struct{})
		}
		h.subscribers[topic][ch] = struct{}{}
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			for _, topic := range topics {
				delete(h.subscribers[topic], ch)
				if len(h.subscribers[topic]) == 0 {
					delete(h.subscribers, topic)
				}
			}
			close(ch)
		})
	}

	return ch, cleanup
}

// Publish sends an event to the subscribers of its topic and of AllTopics.
// A subscriber whose buffer is full misses the event.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := make(map[chan Event]struct{})
	for _, topic := range []string{event.Topic, AllTopics} {
		for ch := range h.subscribers[topic] {
			if _, ok := sent[ch]; ok {
				continue
			}
			sent[ch] = struct{}{}
			select {
			case ch <- event:
			default:
				h.dropped++
			}
		}
	}
}

// PublishToMany sends the same event under several topics. A subscriber of
// more than one of them receives it once per topic.
func (h *Hub) PublishToMany(topics []string, event Event) {
	for _, topic := range topics {
		eventCopy := event
		eventCopy.Topic = topic
		h.Publish(eventCopy)
	}
}

// SubscriberCount returns the number of subscribers of a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[topic])
}

// TotalSubscribers returns the number of distinct subscriber channels.
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[chan Event]struct{})
	for _, subs := range h.subscribers {
		for ch := range subs {
			seen[ch] = struct{}{}
		}
	}
	return len(seen)
}

// Dropped returns how many deliveries were skipped because a buffer was full.
func (h *Hub) Dropped() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}
