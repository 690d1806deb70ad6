package response

import (
	"edumentor/internal/core/domain/studyplan"
	"time"
)

type StudyPlan struct {
	ID            int64                       `json:"id"`
	Name          string                      `json:"name"`
	Goal          string                      `json:"goal"`
	DurationWeeks int                         `json:"duration_weeks"`
	HoursPerDay   int                         `json:"hours_per_day"`
	Topics        []studyplan.TopicAllocation `json:"topics"`
	CreatedAt     time.Time                   `json:"created_at"`
}

func (p *StudyPlan) FromDomainPlan(dp studyplan.Plan) {
	p.ID = int64(dp.ID)
	p.Name = dp.Name
	p.Goal = dp.Goal
	p.DurationWeeks = dp.DurationWeeks
	p.HoursPerDay = dp.HoursPerDay
	p.Topics = dp.Topics
	p.CreatedAt = dp.CreatedAt
}
