package studyplan

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"sync"
)

type FakePlanRepository struct {
	Plans       []Plan
	ReturnError error
	nextID      ID
	lock        sync.Mutex
}

func NewFakePlanRepository() *FakePlanRepository {
	return &FakePlanRepository{Plans: make([]Plan, 0)}
}

func (r *FakePlanRepository) Create(ctx context.Context, input CreateInput) (p Plan, err error) {
	if r.ReturnError != nil {
		return p, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	p = Plan{
		ID:            r.nextID,
		OwnerEmail:    input.OwnerEmail,
		Name:          input.Name,
		Goal:          input.Goal,
		DurationWeeks: input.DurationWeeks,
		HoursPerDay:   input.HoursPerDay,
		Topics:        input.Topics,
		CreatedAt:     input.CreatedAt,
	}
	r.Plans = append(r.Plans, p)
	return p, nil
}

func (r *FakePlanRepository) ListByOwner(ctx context.Context, owner c.Email) ([]Plan, error) {
	if r.ReturnError != nil {
		return nil, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	plans := make([]Plan, 0)
	for _, p := range r.Plans {
		if p.OwnerEmail == owner {
			plans = append(plans, p)
		}
	}
	return plans, nil
}
