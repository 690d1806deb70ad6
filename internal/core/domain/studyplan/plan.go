package studyplan

import (
	c "edumentor/internal/core/domain/common"
	"time"

	"github.com/golang-module/carbon/v2"
)

type ID int64

type Plan struct {
	ID            ID
	OwnerEmail    c.Email
	Name          string
	Goal          string
	DurationWeeks int
	HoursPerDay   int
	Topics        []TopicAllocation
	CreatedAt     time.Time
}

type TopicAllocation struct {
	Topic     string `json:"topic"`
	StartDay  int    `json:"start_day"`
	EndDay    int    `json:"end_day"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Allocate splits the plan duration evenly across topics, first day is day 1.
// The last range is clamped to the total number of days.
func Allocate(topics []string, durationWeeks int, startsAt time.Time) ([]TopicAllocation, error) {
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}
	if durationWeeks < 1 {
		return nil, ErrInvalidDuration
	}

	totalDays := durationWeeks * 7
	daysPerTopic := totalDays / len(topics)
	if daysPerTopic < 1 {
		daysPerTopic = 1
	}

	start := carbon.Time2Carbon(startsAt)
	allocations := make([]TopicAllocation, 0, len(topics))
	for ix, topic := range topics {
		startDay := ix*daysPerTopic + 1
		endDay := startDay + daysPerTopic - 1
		if endDay > totalDays {
			endDay = totalDays
		}
		allocations = append(allocations, TopicAllocation{
			Topic:     topic,
			StartDay:  startDay,
			EndDay:    endDay,
			StartDate: start.AddDays(startDay - 1).ToDateString(),
			EndDate:   start.AddDays(endDay - 1).ToDateString(),
		})
	}
	return allocations, nil
}
