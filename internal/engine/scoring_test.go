package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade_DeviationTable(t *testing.T) {
	tests := []struct {
		name      string
		gold      string
		selected  string
		correct   bool
		deviation int
	}{
		{"over triage by one", "Yellow", "Red", false, 1},
		{"under triage by two", "Red", "Green", false, -2},
		{"exact match", "Red", "Red", true, 0},
		{"expectant to deceased", "Green", "Black", false, -1},
		{"blue grades as green", "Green", "Blue", false, 0},
		{"white grades as green", "Yellow", "White", false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Grade(tt.gold, tt.selected)
			assert.Equal(t, tt.correct, s.Correct)
			require.NotNil(t, s.Deviation)
			assert.Equal(t, tt.deviation, *s.Deviation)
		})
	}
}

func TestGrade_UnmappedOutcomes(t *testing.T) {
	// Orange is a legal button value but has no ordinal.
	s := Grade("Red", "Orange")
	assert.False(t, s.Correct)
	assert.Nil(t, s.Deviation)

	s = Grade("Orange", "Orange")
	assert.True(t, s.Correct, "equality still holds without an ordinal")
	assert.Nil(t, s.Deviation)

	s = Grade("Purple", "Red")
	assert.False(t, s.Correct)
	assert.Nil(t, s.Deviation)
}
