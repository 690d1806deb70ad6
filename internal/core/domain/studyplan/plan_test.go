package studyplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startsAt = time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC)

func TestAllocateSplitsDaysEvenly(t *testing.T) {
	allocations, err := Allocate([]string{"algebra", "geometry", "calculus"}, 3, startsAt)

	require.Nil(t, err)
	require.Equal(t, 3, len(allocations))

	assert.Equal(t, TopicAllocation{
		Topic:     "algebra",
		StartDay:  1,
		EndDay:    7,
		StartDate: "2020-06-01",
		EndDate:   "2020-06-07",
	}, allocations[0])
	assert.Equal(t, TopicAllocation{
		Topic:     "geometry",
		StartDay:  8,
		EndDay:    14,
		StartDate: "2020-06-08",
		EndDate:   "2020-06-14",
	}, allocations[1])
	assert.Equal(t, TopicAllocation{
		Topic:     "calculus",
		StartDay:  15,
		EndDay:    21,
		StartDate: "2020-06-15",
		EndDate:   "2020-06-21",
	}, allocations[2])
}

func TestAllocateSingleTopicGetsWholeDuration(t *testing.T) {
	allocations, err := Allocate([]string{"history"}, 2, startsAt)

	require.Nil(t, err)
	require.Equal(t, 1, len(allocations))
	assert.Equal(t, 1, allocations[0].StartDay)
	assert.Equal(t, 14, allocations[0].EndDay)
	assert.Equal(t, "2020-06-14", allocations[0].EndDate)
}

func TestAllocateMoreTopicsThanDays(t *testing.T) {
	topics := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8"}

	allocations, err := Allocate(topics, 1, startsAt)

	require.Nil(t, err)
	require.Equal(t, 8, len(allocations))
	// Every topic gets a single day, the range never extends past the plan.
	assert.Equal(t, 1, allocations[0].StartDay)
	assert.Equal(t, 1, allocations[0].EndDay)
	assert.Equal(t, 7, allocations[6].EndDay)
	assert.Equal(t, 7, allocations[7].EndDay)
}

func TestAllocateErrors(t *testing.T) {
	_, err := Allocate(nil, 2, startsAt)
	assert.ErrorIs(t, err, ErrNoTopics)

	_, err = Allocate([]string{}, 2, startsAt)
	assert.ErrorIs(t, err, ErrNoTopics)

	_, err = Allocate([]string{"algebra"}, 0, startsAt)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = Allocate([]string{"algebra"}, -1, startsAt)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
