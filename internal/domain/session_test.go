package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Complete(t *testing.T) {
	p := Profile{Role: "Paramedic", YearsExperience: "5-10 years", FatigueStatus: "Rested", ToolID: "ATS"}
	assert.True(t, p.Complete())

	p.ToolID = ""
	assert.False(t, p.Complete())
}

func TestSession_CursorAdvanceClamped(t *testing.T) {
	s := &Session{Queue: []string{"P001", "P002"}}

	id, ok := s.CurrentCaseID()
	require.True(t, ok)
	assert.Equal(t, "P001", id)

	s.Advance()
	id, ok = s.CurrentCaseID()
	require.True(t, ok)
	assert.Equal(t, "P002", id)

	s.Advance()
	_, ok = s.CurrentCaseID()
	assert.False(t, ok)

	s.Advance()
	assert.Equal(t, 2, s.Cursor, "cursor clamps at queue end")
}

func TestSession_ResetCaseState(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &Session{
		Revealed:          map[string]bool{"pulse": true},
		AccumulatedCostMs: 30000,
	}

	s.ResetCaseState(&start)
	assert.Empty(t, s.Revealed)
	assert.Zero(t, s.AccumulatedCostMs)
	require.NotNil(t, s.CardStartedAt)
	assert.Equal(t, start, *s.CardStartedAt)

	s.ResetCaseState(nil)
	assert.Nil(t, s.CardStartedAt, "washout leaves the timer unarmed")
}

func TestSession_RevealedListSorted(t *testing.T) {
	s := &Session{Revealed: map[string]bool{"walk": true, "airway": true, "pulse": true}}
	assert.Equal(t, []string{"airway", "pulse", "walk"}, s.RevealedList())
}

func TestSession_ElapsedRealMs(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &Session{}
	assert.Zero(t, s.ElapsedRealMs(start), "no running case")

	s.CardStartedAt = &start
	assert.Equal(t, 2500, s.ElapsedRealMs(start.Add(2500*time.Millisecond)))
}

func TestSession_CompletionCode(t *testing.T) {
	s := &Session{
		ID:           "7f3a9c41-1d2e-4b5f-8a6c-0e9d8b7a6f5e",
		CreatedStamp: "20260301_090000",
	}
	assert.Equal(t, "7a6f5e_0000", s.CompletionCode())

	short := &Session{ID: "abc", CreatedStamp: "0901"}
	assert.Equal(t, "abc_0901", short.CompletionCode())
}

func TestOutcomeOrdinal(t *testing.T) {
	cases := map[string]int{"Black": 0, "Green": 1, "Blue": 1, "White": 1, "Yellow": 2, "Red": 3}
	for outcome, want := range cases {
		got, ok := OutcomeOrdinal(outcome)
		require.True(t, ok, outcome)
		assert.Equal(t, want, got, outcome)
	}

	_, ok := OutcomeOrdinal("Orange")
	assert.False(t, ok, "Orange has no severity position")
	_, ok = OutcomeOrdinal("")
	assert.False(t, ok)
}

func TestValidPhases(t *testing.T) {
	for _, p := range []Phase{PhaseOnboarding, PhaseInCase, PhaseSurveyPending, PhaseWashoutPending, PhaseComplete} {
		assert.True(t, ValidPhases[p], string(p))
	}
	assert.False(t, ValidPhases[Phase("paused")])
}
