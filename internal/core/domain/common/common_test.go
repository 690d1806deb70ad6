package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmailNormalizes(t *testing.T) {
	cases := []struct {
		id       string
		raw      string
		expected Email
	}{
		{id: "already-normal", raw: "student@test.com", expected: Email("student@test.com")},
		{id: "upper-case", raw: "Student@Test.COM", expected: Email("student@test.com")},
		{id: "surrounding-spaces", raw: "  student@test.com \n", expected: Email("student@test.com")},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert.Equal(t, testcase.expected, NewEmail(testcase.raw))
		})
	}
}

func TestOptionalString(t *testing.T) {
	absent := NewOptional("x", false)
	present := NewOptional("x", true)
	assert.Equal(t, "[-]", absent.String())
	assert.Equal(t, "[x]", present.String())
}
