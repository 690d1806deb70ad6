package reminder

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"fmt"
	"sync"
)

// FakeEntryRepository is an in-memory registry: a single insertion-ordered
// slice guarded by a mutex, snapshots returned as copies.
type FakeEntryRepository struct {
	Entries     []Entry
	ReturnError error
	nextID      ID
	lock        sync.Mutex
}

func NewFakeEntryRepository() *FakeEntryRepository {
	return &FakeEntryRepository{Entries: make([]Entry, 0, 10)}
}

func (r *FakeEntryRepository) Create(ctx context.Context, input CreateInput) (e Entry, err error) {
	if r.ReturnError != nil {
		return e, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	e = Entry{
		ID:         r.nextID,
		OwnerEmail: input.OwnerEmail,
		At:         input.At,
		Message:    input.Message,
		CreatedAt:  input.CreatedAt,
	}
	r.Entries = append(r.Entries, e)
	return e, nil
}

func (r *FakeEntryRepository) ListByOwner(ctx context.Context, owner c.Email) ([]Entry, error) {
	if r.ReturnError != nil {
		return nil, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	entries := make([]Entry, 0)
	for _, e := range r.Entries {
		if e.OwnerEmail == owner {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *FakeEntryRepository) ListPending(ctx context.Context) ([]Entry, error) {
	if r.ReturnError != nil {
		return nil, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	entries := make([]Entry, 0)
	for _, e := range r.Entries {
		if !e.Delivered {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *FakeEntryRepository) MarkDelivered(ctx context.Context, input MarkDeliveredInput) (e Entry, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, e := range r.Entries {
		if e.ID != input.ID {
			continue
		}
		if e.Delivered {
			return e, ErrAlreadyDelivered
		}
		r.Entries[ix].Delivered = true
		r.Entries[ix].DeliveredAt = c.NewOptional(input.At, true)
		if input.Error.IsPresent {
			r.Entries[ix].LastError = input.Error
		}
		r.Entries[ix].Attempts++
		return r.Entries[ix], nil
	}
	return e, ErrEntryDoesNotExist
}

func (r *FakeEntryRepository) MarkFailed(ctx context.Context, id ID, errText string) (e Entry, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, e := range r.Entries {
		if e.ID != id {
			continue
		}
		r.Entries[ix].LastError = c.NewOptional(errText, true)
		r.Entries[ix].Attempts++
		return r.Entries[ix], nil
	}
	return e, ErrEntryDoesNotExist
}

type SentEmail struct {
	To      c.Email
	Subject string
	Body    string
}

type FakeNotificationGateway struct {
	Sent        []SentEmail
	ReturnError error
	// Block makes SendEmail hang until the context is canceled.
	Block bool
	lock  sync.Mutex
}

func NewFakeNotificationGateway() *FakeNotificationGateway {
	return &FakeNotificationGateway{}
}

func (g *FakeNotificationGateway) SendEmail(ctx context.Context, to c.Email, subject string, body string) error {
	if g.Block {
		<-ctx.Done()
		return ctx.Err()
	}
	if g.ReturnError != nil {
		return g.ReturnError
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Sent = append(g.Sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

func (g *FakeNotificationGateway) SentCount() int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return len(g.Sent)
}

func (g *FakeNotificationGateway) LastSent() SentEmail {
	g.lock.Lock()
	defer g.lock.Unlock()
	l := len(g.Sent)
	if l == 0 {
		panic("sent count is 0")
	}
	return g.Sent[l-1]
}

type FakeAttemptPublisher struct {
	Published   []AttemptEvent
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeAttemptPublisher() *FakeAttemptPublisher {
	return &FakeAttemptPublisher{}
}

func (p *FakeAttemptPublisher) PublishAttempt(ctx context.Context, event AttemptEvent) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish attempt event %v", event)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, event)
	return nil
}
