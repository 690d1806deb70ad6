package reminder

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"time"
)

// Subject of every reminder email.
const Subject = "EduMentor Study Reminder"

// DefaultMessage is sent when an entry has an empty body.
const DefaultMessage = "Time to study!"

// NotificationGateway is the outbound mail transport: synchronous, single
// recipient, plain-text body.
type NotificationGateway interface {
	SendEmail(ctx context.Context, to c.Email, subject string, body string) error
}

// AttemptEvent describes one delivery attempt, successful or not.
type AttemptEvent struct {
	EntryID    ID        `json:"entry_id"`
	OwnerEmail c.Email   `json:"owner_email"`
	Message    string    `json:"message"`
	Delivered  bool      `json:"delivered"`
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}

// AttemptPublisher receives attempt outcomes, best effort. Publish errors
// never fail a dispatcher tick.
type AttemptPublisher interface {
	PublishAttempt(ctx context.Context, event AttemptEvent) error
}
