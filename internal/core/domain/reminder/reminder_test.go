package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		id       string
		value    string
		expected string
		isValid  bool
	}{
		{id: "1", value: "00:00", expected: "00:00", isValid: true},
		{id: "2", value: "23:59", expected: "23:59", isValid: true},
		{id: "3", value: "07:05", expected: "07:05", isValid: true},
		{id: "4", value: "12:30", expected: "12:30", isValid: true},
		{id: "5", value: "24:00"},
		{id: "6", value: "12:60"},
		{id: "7", value: "99:99"},
		{id: "8", value: "1:30"},
		{id: "9", value: "01:3"},
		{id: "10", value: "0130"},
		{id: "11", value: "01-30"},
		{id: "12", value: ""},
		{id: "13", value: "aa:bb"},
		{id: "14", value: " 1:30"},
		{id: "15", value: "01:30:00"},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			parsed, err := ParseTimeOfDay(testcase.value)
			if !testcase.isValid {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, testcase.expected, parsed.String())
		})
	}
}

func TestTimeOfDayFromTruncatesToMinute(t *testing.T) {
	moment := time.Date(2020, 6, 6, 15, 30, 59, 999, time.UTC)

	timeOfDay := TimeOfDayFrom(moment)

	assert.Equal(t, "15:30", timeOfDay.String())

	parsed, err := ParseTimeOfDay("15:30")
	require.Nil(t, err)
	assert.Equal(t, parsed, timeOfDay)
}

func TestParseDeliveryPolicy(t *testing.T) {
	policy, err := ParseDeliveryPolicy("single-attempt")
	require.Nil(t, err)
	assert.Equal(t, PolicySingleAttempt, policy)

	policy, err = ParseDeliveryPolicy("retry")
	require.Nil(t, err)
	assert.Equal(t, PolicyRetry, policy)

	_, err = ParseDeliveryPolicy("twice")
	assert.ErrorIs(t, err, ErrParseDeliveryPolicy)

	_, err = ParseDeliveryPolicy("")
	assert.ErrorIs(t, err, ErrParseDeliveryPolicy)
}
