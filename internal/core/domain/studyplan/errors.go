package studyplan

import "errors"

var (
	ErrNoTopics        = errors.New("study plan must have at least one topic")
	ErrInvalidDuration = errors.New("study plan duration must be at least one week")
)
