package domain

import (
	"sort"
	"time"
)

// SnapshotSchemaVersion is bumped whenever the persisted session layout
// changes incompatibly.
const SnapshotSchemaVersion = 1

// Profile holds the onboarding questionnaire answers. All fields are set
// once and immutable afterwards.
type Profile struct {
	Role            string
	YearsExperience string
	FatigueStatus   string
	ToolID          string
}

// Complete reports whether every onboarding field has been answered.
func (p Profile) Complete() bool {
	return p.Role != "" && p.YearsExperience != "" && p.FatigueStatus != "" && p.ToolID != ""
}

// Session is the aggregate for one participant attempt. The phase
// controller owns it; nothing here touches storage or logs.
type Session struct {
	ID            string
	CreatedAt     time.Time
	CreatedStamp  string // yyyymmdd_hhmmss, used in file names and the completion code
	Fingerprint   string
	AppVersion    string
	SchemaVersion int

	Profile            Profile
	OnboardingComplete bool
	Phase              Phase

	// Queue of case identifiers; records are re-resolved from the live
	// content pack so the snapshot stays small.
	Queue  []string
	Cursor int

	// Case-scoped transient state.
	CardStartedAt     *time.Time
	Revealed          map[string]bool
	AccumulatedCostMs int

	// Interlude state.
	WashoutStartedAt     *time.Time
	LastFinishedScenario string

	LogPath string
}

// CurrentCaseID returns the queued case under the cursor. The second
// return is false once the cursor has moved past the end.
func (s *Session) CurrentCaseID() (string, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Queue) {
		return "", false
	}
	return s.Queue[s.Cursor], true
}

// Advance moves the cursor one case forward. The cursor is monotonic; it
// never moves backwards and is clamped to len(Queue).
func (s *Session) Advance() {
	if s.Cursor < len(s.Queue) {
		s.Cursor++
	}
}

// ResetCaseState clears the reveal ledger and simulated cost, and stamps
// the case timer if a start time is given. Passing nil leaves the next
// case's timer unarmed (used when entering a washout).
func (s *Session) ResetCaseState(start *time.Time) {
	s.CardStartedAt = start
	s.Revealed = make(map[string]bool)
	s.AccumulatedCostMs = 0
}

// IsRevealed reports whether the action key is in the revealed set.
func (s *Session) IsRevealed(key string) bool {
	return s.Revealed[key]
}

// RevealedList returns the revealed action keys in sorted order for
// deterministic serialization and display.
func (s *Session) RevealedList() []string {
	keys := make([]string, 0, len(s.Revealed))
	for k := range s.Revealed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ElapsedRealMs returns milliseconds since the case timer was armed, or 0
// when no case is running.
func (s *Session) ElapsedRealMs(now time.Time) int {
	if s.CardStartedAt == nil {
		return 0
	}
	return int(now.Sub(*s.CardStartedAt).Milliseconds())
}

// CompletionCode derives the participant's proof-of-completion string.
func (s *Session) CompletionCode() string {
	id := s.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	stamp := s.CreatedStamp
	if len(stamp) > 4 {
		stamp = stamp[len(stamp)-4:]
	}
	return id + "_" + stamp
}
