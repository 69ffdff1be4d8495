package domain

// Phase is the session's lifecycle state. Exactly one phase holds at any
// time; interlude bookkeeping hangs off the Session rather than extra
// boolean flags.
type Phase string

const (
	PhaseOnboarding     Phase = "onboarding"
	PhaseInCase         Phase = "in_case"
	PhaseSurveyPending  Phase = "survey_pending"
	PhaseWashoutPending Phase = "washout_pending"
	PhaseComplete       Phase = "complete"
)

// ValidPhases is the canonical set of accepted phases.
var ValidPhases = map[Phase]bool{
	PhaseOnboarding: true, PhaseInCase: true, PhaseSurveyPending: true,
	PhaseWashoutPending: true, PhaseComplete: true,
}

// outcomeOrdinals maps normalized triage outcomes onto the urgency scale,
// least to most urgent. Blue and White grade as Green. Orange exists in
// the button palette but has no ordinal, so decisions against it are
// unscored for deviation.
var outcomeOrdinals = map[string]int{
	"Black":  0,
	"Green":  1,
	"Blue":   1,
	"White":  1,
	"Yellow": 2,
	"Red":    3,
}

// OutcomeOrdinal returns the urgency ordinal of a normalized outcome.
// The second return is false for outcomes outside the ordinal mapping.
func OutcomeOrdinal(outcome string) (int, bool) {
	ord, ok := outcomeOrdinals[outcome]
	return ord, ok
}
