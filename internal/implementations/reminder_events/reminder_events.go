package reminderevents

import (
	"context"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/reminder"
	"encoding/json"

	"github.com/r3labs/sse/v2"
)

// SsePublisher streams delivery attempt outcomes to the owner's browser,
// one SSE stream per owner email.
type SsePublisher struct {
	sseServer *sse.Server
}

func NewSsePublisher(sseServer *sse.Server) *SsePublisher {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SsePublisher{sseServer: sseServer}
}

func (p *SsePublisher) PublishAttempt(ctx context.Context, event reminder.AttemptEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	streamID := string(event.OwnerEmail)
	if !p.sseServer.StreamExists(streamID) {
		p.sseServer.CreateStream(streamID)
	}
	p.sseServer.Publish(streamID, &sse.Event{Data: data})
	return nil
}
