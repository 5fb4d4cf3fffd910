package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/system"
	"github.com/brown009872/payroll-app/internal/handler/http/response"
	"github.com/brown009872/payroll-app/internal/pkg/cron"
	"github.com/brown009872/payroll-app/internal/pkg/realtime"
	"github.com/brown009872/payroll-app/internal/pkg/sse"
)

// JobLister reports the background jobs of the process.
type JobLister interface {
	Status() []cron.JobStatus
}

// SystemHandler defines the system handler interface
type SystemHandler interface {
	WipeAll(w http.ResponseWriter, r *http.Request)
	Jobs(w http.ResponseWriter, r *http.Request)

	// SSE
	Stream(w http.ResponseWriter, r *http.Request)
}

type systemHandlerImpl struct {
	systemService system.SystemService
	hub           *sse.Hub
	jobs          JobLister
	keepalive     time.Duration
}

// NewSystemHandler creates a new system handler. jobs may be nil.
func NewSystemHandler(systemService system.SystemService, hub *sse.Hub, jobs JobLister) SystemHandler {
	return &systemHandlerImpl{
		systemService: systemService,
		hub:           hub,
		jobs:          jobs,
		keepalive:     30 * time.Second,
	}
}

// WipeAll implements SystemHandler
func (h *systemHandlerImpl) WipeAll(w http.ResponseWriter, r *http.Request) {
	req := system.WipeRequest{Confirm: getBoolQueryParam(r, "confirm", false)}

	result, err := h.systemService.WipeAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All data wiped", result)
}

// Jobs implements SystemHandler
func (h *systemHandlerImpl) Jobs(w http.ResponseWriter, r *http.Request) {
	if h.jobs == nil {
		response.Success(w, []cron.JobStatus{})
		return
	}
	response.Success(w, h.jobs.Status())
}

// streamTopics parses the comma separated topics query. The system topic is
// always included so every client hears about failed syncs.
func streamTopics(r *http.Request) []string {
	topics := []string{realtime.TopicSystem}
	seen := map[string]bool{realtime.TopicSystem: true}
	for _, t := range strings.Split(r.URL.Query().Get("topics"), ",") {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		topics = append(topics, t)
	}
	if len(topics) == 1 {
		return []string{sse.AllTopics}
	}
	return topics
}

// Stream handles SSE connection for table change events
func (h *systemHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	topics := streamTopics(r)
	events, cleanup := h.hub.Subscribe(topics...)
	defer cleanup()

	// Send initial connection event
	connected, _ := json.Marshal(map[string]interface{}{"status": "connected", "topics": topics})
	fmt.Fprintf(w, "event: connected\ndata: %s\n\n", connected)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			// Send keepalive ping
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
