package eventlog

import (
	"strconv"
	"time"
)

// Kind is the event type recorded in the audit trail.
type Kind string

const (
	KindCardStart       Kind = "card_start"
	KindReveal          Kind = "reveal"
	KindHide            Kind = "hide"
	KindDecision        Kind = "decision"
	KindWashoutStart    Kind = "washout_start"
	KindWashoutComplete Kind = "washout_complete"
)

// Event is one immutable audit-log row. Scoring fields are only populated
// for decision events; nil pointers serialize as NA.
type Event struct {
	Timestamp   time.Time
	AppVersion  string
	Fingerprint string
	SessionID   string

	Role            string
	YearsExperience string
	FatigueStatus   string
	ToolID          string

	Scenario string
	CaseID   string

	Kind               Kind
	ActionKey          string
	DecisionRaw        string
	DecisionNormalized string

	GoldStandard string
	Correct      *bool
	Deviation    *int

	TRealMs int
	TSimMs  int
}

// header is the fixed column order of the per-session event log.
var header = []string{
	"timestamp_utc", "app_version", "content_pack_hash", "session_id",
	"participant_role", "years_experience", "fatigue_status", "tool_id",
	"scenario", "patient_id", "event_type", "action_key",
	"decision_raw", "decision_normalized", "gold_standard",
	"correct", "deviation", "t_real_ms", "t_sim_ms",
}

const na = "NA"

func (e Event) record() []string {
	return []string{
		e.Timestamp.UTC().Format(time.RFC3339),
		e.AppVersion,
		e.Fingerprint,
		e.SessionID,
		orNA(e.Role),
		orNA(e.YearsExperience),
		orNA(e.FatigueStatus),
		orNA(e.ToolID),
		orNA(e.Scenario),
		orNA(e.CaseID),
		string(e.Kind),
		e.ActionKey,
		e.DecisionRaw,
		e.DecisionNormalized,
		orNA(e.GoldStandard),
		boolOrNA(e.Correct),
		intOrNA(e.Deviation),
		strconv.Itoa(e.TRealMs),
		strconv.Itoa(e.TSimMs),
	}
}

func orNA(s string) string {
	if s == "" {
		return na
	}
	return s
}

func boolOrNA(b *bool) string {
	if b == nil {
		return na
	}
	return strconv.FormatBool(*b)
}

func intOrNA(i *int) string {
	if i == nil {
		return na
	}
	return strconv.Itoa(*i)
}
