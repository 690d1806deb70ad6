package reminder

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"time"
)

type CreateInput struct {
	OwnerEmail c.Email
	At         TimeOfDay
	Message    string
	CreatedAt  time.Time
}

type MarkDeliveredInput struct {
	ID ID
	At time.Time
	// Error is set when a failed attempt still consumes the entry
	// (single-attempt delivery policy).
	Error c.Optional[string]
}

// EntryRepository owns the per-user reminder collections. ListByOwner and
// ListPending return snapshots, safe to iterate while other goroutines
// add or mark entries.
type EntryRepository interface {
	Create(ctx context.Context, input CreateInput) (Entry, error)
	ListByOwner(ctx context.Context, owner c.Email) ([]Entry, error)
	ListPending(ctx context.Context) ([]Entry, error)
	// MarkDelivered is terminal: Delivered never reverts to false.
	MarkDelivered(ctx context.Context, input MarkDeliveredInput) (Entry, error)
	// MarkFailed records a failed attempt without consuming the entry.
	MarkFailed(ctx context.Context, id ID, errText string) (Entry, error)
}
