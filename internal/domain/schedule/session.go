package schedule

import (
	"sync"
	"time"
)

// Session is the quick-assign state of one board client.
//
// It is either in NoSelection or EmployeeSelected. Only Select and Clear move
// between the two; placing the selected employee keeps the selection so the
// next click places the same person. A pending drag is tracked separately and
// is consumed by the drop.
type Session struct {
	mu       sync.Mutex
	selected string
	drag     *DragSource
	lastSeen time.Time
}

func NewSession() *Session {
	return &Session{lastSeen: time.Now()}
}

func (s *Session) Select(employeeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = employeeID
	s.lastSeen = time.Now()
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
	s.lastSeen = time.Now()
}

// Selected returns the selected employee, if any.
func (s *Session) Selected() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.selected, s.selected != ""
}

func (s *Session) StartDrag(src DragSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = &src
	s.lastSeen = time.Now()
}

// TakeDrag returns and forgets the pending drag.
func (s *Session) TakeDrag() (DragSource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	if s.drag == nil {
		return DragSource{}, false
	}
	src := *s.drag
	s.drag = nil
	return src, true
}

// IdleSince reports when the session was last used.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionRegistry keeps one Session per client id.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

// Get returns the session of id, creating it on first use.
func (r *SessionRegistry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		s = NewSession()
		r.sessions[id] = s
	}
	return s
}

// Prune drops sessions idle for longer than maxIdle and returns how many were dropped.
func (r *SessionRegistry) Prune(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := time.Now().Add(-maxIdle)
	n := 0
	for id, s := range r.sessions {
		if s.IdleSince().Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
