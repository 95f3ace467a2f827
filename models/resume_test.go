package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmptyResume(t *testing.T) {
	resume := NewEmptyResume()

	assert.Len(t, resume.Experience, 1)
	assert.Len(t, resume.Education, 1)
	assert.NotEmpty(t, resume.Experience[0].ID)
	assert.NotEmpty(t, resume.Education[0].ID)
	assert.Equal(t, []string{""}, resume.Experience[0].Achievements)
	assert.Empty(t, resume.Skills)
	assert.Empty(t, resume.Certifications)
}

func TestNewEmptyResumeIDsAreUnique(t *testing.T) {
	a := NewEmptyResume()
	b := NewEmptyResume()

	assert.NotEqual(t, a.Experience[0].ID, b.Experience[0].ID)
	assert.NotEqual(t, a.Education[0].ID, b.Education[0].ID)
	assert.NotEqual(t, a.Experience[0].ID, a.Education[0].ID)
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name     string
		info     PersonalInfo
		expected string
	}{
		{name: "both names", info: PersonalInfo{FirstName: "Jane", LastName: "Doe"}, expected: "Jane Doe"},
		{name: "first only", info: PersonalInfo{FirstName: "Jane"}, expected: "Jane"},
		{name: "last only", info: PersonalInfo{LastName: "Doe"}, expected: "Doe"},
		{name: "empty", info: PersonalInfo{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.info.FullName())
		})
	}
}
