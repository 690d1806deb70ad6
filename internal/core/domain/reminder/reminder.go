package reminder

import (
	c "edumentor/internal/core/domain/common"
	"fmt"
	"time"
)

type ID int64

// Entry is a single scheduled reminder owned by one user. The owner is
// treated as an opaque key, it is not required to exist in the credential
// store.
type Entry struct {
	ID          ID
	OwnerEmail  c.Email
	At          TimeOfDay
	Message     string
	Delivered   bool
	DeliveredAt c.Optional[time.Time]
	LastError   c.Optional[string]
	Attempts    uint
	CreatedAt   time.Time
}

// TimeOfDay is a trigger time with minute precision and no date component.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour int, minute int) (t TimeOfDay, err error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return t, ErrInvalidTime
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// ParseTimeOfDay accepts strictly formatted "HH:MM" values.
func ParseTimeOfDay(value string) (t TimeOfDay, err error) {
	if len(value) != 5 || value[2] != ':' {
		return t, ErrInvalidTime
	}
	hour, ok := parseTwoDigits(value[0], value[1])
	if !ok {
		return t, ErrInvalidTime
	}
	minute, ok := parseTwoDigits(value[3], value[4])
	if !ok {
		return t, ErrInvalidTime
	}
	return NewTimeOfDay(hour, minute)
}

func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func parseTwoDigits(hi byte, lo byte) (int, bool) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}
