package engine

import "github.com/alexanderramin/triagelab/internal/domain"

// Score is the grade for one triage decision. Deviation is nil when either
// outcome falls outside the ordinal mapping; a decision without a defined
// gold standard is never graded at all (see Controller.SubmitDecision).
type Score struct {
	Correct   bool
	Deviation *int
}

// Grade compares a normalized selected outcome to the gold standard.
// Correctness is exact string equality. Deviation is
// ordinal(selected) - ordinal(gold): positive means over-triage, negative
// under-triage.
func Grade(goldStandard, selected string) Score {
	s := Score{Correct: selected == goldStandard}

	goldOrd, goldOK := domain.OutcomeOrdinal(goldStandard)
	selOrd, selOK := domain.OutcomeOrdinal(selected)
	if goldOK && selOK {
		d := selOrd - goldOrd
		s.Deviation = &d
	}
	return s
}
