package studyplan

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"time"
)

type CreateInput struct {
	OwnerEmail    c.Email
	Name          string
	Goal          string
	DurationWeeks int
	HoursPerDay   int
	Topics        []TopicAllocation
	CreatedAt     time.Time
}

type PlanRepository interface {
	Create(ctx context.Context, input CreateInput) (Plan, error)
	ListByOwner(ctx context.Context, owner c.Email) ([]Plan, error)
}
