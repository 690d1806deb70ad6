package response

import (
	"edumentor/internal/core/domain/reminder"
	"time"
)

type ReminderEntry struct {
	ID          int64      `json:"id"`
	At          string     `json:"at"`
	Message     string     `json:"message"`
	Delivered   bool       `json:"delivered"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	LastError   *string    `json:"last_error,omitempty"`
	Attempts    uint       `json:"attempts"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (e *ReminderEntry) FromDomainEntry(de reminder.Entry) {
	e.ID = int64(de.ID)
	e.At = de.At.String()
	e.Message = de.Message
	e.Delivered = de.Delivered
	if de.DeliveredAt.IsPresent {
		e.DeliveredAt = &de.DeliveredAt.Value
	}
	if de.LastError.IsPresent {
		lastError := de.LastError.Value
		e.LastError = &lastError
	}
	e.Attempts = de.Attempts
	e.CreatedAt = de.CreatedAt
}
