package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"student", RoleStudent},
		{"instructor", RoleInstructor},
		{"  Student ", RoleStudent},
		{"INSTRUCTOR", RoleInstructor},
		{"", RoleUnknown},
		{"admin", RoleUnknown},
		{"teacher", RoleUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseRole(tc.in), "input %q", tc.in)
	}
}

func TestRoleRecognized(t *testing.T) {
	assert.True(t, RoleStudent.Recognized())
	assert.True(t, RoleInstructor.Recognized())
	assert.False(t, RoleUnknown.Recognized())
	assert.False(t, Role("admin").Recognized())
}

func TestProgressFor(t *testing.T) {
	records := []CourseProgress{
		{CourseID: 6, CompletedSessions: []int{9, 10}, TotalSessions: 3},
	}

	record := ProgressFor(records, 6)
	assert.True(t, record.Completed(9))
	assert.False(t, record.Completed(11))
	assert.Equal(t, 3, record.TotalSessions)

	// Unknown course yields a zero record, never a panic or a nil.
	zero := ProgressFor(records, 99)
	assert.Equal(t, 99, zero.CourseID)
	assert.False(t, zero.Completed(9))
	assert.Zero(t, zero.TotalSessions)

	assert.False(t, ProgressFor(nil, 6).Completed(9))
}
