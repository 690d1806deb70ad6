package health

import (
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/dispatcher"
	"edumentor/internal/http/handlers/response"
	"net/http"
	"time"
)

// Handler reports liveness of the HTTP server and the reminder dispatcher.
// The dispatcher is considered stalled if it has not ticked for longer
// than three periods.
type Handler struct {
	dispatcher *dispatcher.Dispatcher
	period     time.Duration
	now        func() time.Time
}

func New(d *dispatcher.Dispatcher, period time.Duration, now func() time.Time) *Handler {
	if d == nil {
		panic(e.NewNilArgumentError("d"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Handler{dispatcher: d, period: period, now: now}
}

type Result struct {
	Status     string     `json:"status"`
	Dispatcher string     `json:"dispatcher"`
	LastTickAt *time.Time `json:"last_tick_at,omitempty"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result := Result{Status: "ok", Dispatcher: "waiting"}

	lastTickAt, ok := h.dispatcher.LastTickAt()
	if ok {
		result.LastTickAt = &lastTickAt
		result.Dispatcher = "ok"
		if h.now().Sub(lastTickAt) > 3*h.period {
			result.Dispatcher = "stalled"
		}
	}

	status := http.StatusOK
	if result.Dispatcher == "stalled" {
		status = http.StatusServiceUnavailable
	}
	response.Render(rw, result, status)
}
