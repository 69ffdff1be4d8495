package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/triagelab/internal/config"
	"github.com/alexanderramin/triagelab/internal/contentpack"
	"github.com/alexanderramin/triagelab/internal/domain"
	"github.com/alexanderramin/triagelab/internal/eventlog"
	"github.com/alexanderramin/triagelab/internal/repository"
	"github.com/google/uuid"
)

var (
	// ErrFingerprintMismatch means the stored session was created against
	// a different content pack; resume is refused and a fresh session must
	// be created instead.
	ErrFingerprintMismatch = errors.New("content pack fingerprint mismatch")

	// ErrWashoutActive means the rest interlude has not elapsed yet.
	ErrWashoutActive = errors.New("washout interlude still running")
)

// Controller is the phase state machine for one or more sessions. It owns
// no session state itself; every operation takes the session aggregate,
// appends its events, and persists the snapshot before returning. Callers
// must not issue concurrent operations against the same session.
type Controller struct {
	pack     *contentpack.Pack
	sessions repository.SessionRepo
	surveys  *eventlog.SurveyLog
	cfg      config.Config
	now      func() time.Time
	rng      *rand.Rand
}

// Option customizes a Controller; used by tests to pin the clock and the
// queue randomization.
type Option func(*Controller)

// WithClock overrides the controller's time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithRand overrides the queue shuffle source.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// NewController wires the phase controller against a validated content
// pack, a snapshot store and the shared workload-survey log.
func NewController(pack *contentpack.Pack, sessions repository.SessionRepo, surveys *eventlog.SurveyLog, cfg config.Config, opts ...Option) *Controller {
	c := &Controller{
		pack:     pack,
		sessions: sessions,
		surveys:  surveys,
		cfg:      cfg,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pack exposes the read-only content pack for presentation.
func (c *Controller) Pack() *contentpack.Pack {
	return c.pack
}

// WashoutDuration is the fixed length of the rest interlude.
func (c *Controller) WashoutDuration() time.Duration {
	return c.cfg.WashoutDuration
}

// CreateSession builds a fresh session with a randomized patient queue and
// persists its first snapshot.
func (c *Controller) CreateSession(ctx context.Context) (*domain.Session, error) {
	queue, err := GenerateQueue(c.pack.Patients, c.rng, c.cfg.ShuffleWithinBlock)
	if err != nil {
		return nil, fmt.Errorf("generating patient queue: %w", err)
	}

	now := c.now()
	stamp := now.UTC().Format("20060102_150405")
	id := uuid.New().String()

	s := &domain.Session{
		ID:            id,
		CreatedAt:     now.UTC(),
		CreatedStamp:  stamp,
		Fingerprint:   c.pack.Fingerprint,
		AppVersion:    config.AppVersion,
		SchemaVersion: domain.SnapshotSchemaVersion,
		Phase:         domain.PhaseOnboarding,
		Queue:         queue,
		Revealed:      make(map[string]bool),
		LogPath:       c.cfg.SessionLogPath(id, stamp),
	}
	if err := c.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Resume loads a stored session. It fails closed when the stored content
// fingerprint no longer matches the live pack. Queued case ids that no
// longer resolve are dropped with a warning; the cursor is not retargeted,
// so resumption may legitimately skip missing cases.
func (c *Controller) Resume(ctx context.Context, id string) (*domain.Session, []string, error) {
	s, err := c.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if s.Fingerprint != c.pack.Fingerprint {
		return nil, nil, ErrFingerprintMismatch
	}

	var warnings []string
	kept := s.Queue[:0]
	for _, caseID := range s.Queue {
		if _, ok := c.pack.PatientByID(caseID); !ok {
			warnings = append(warnings, fmt.Sprintf("queued case %s no longer in content pack; skipping", caseID))
			continue
		}
		kept = append(kept, caseID)
	}
	if len(warnings) > 0 {
		s.Queue = kept
		if err := c.sessions.Save(ctx, s); err != nil {
			return nil, nil, err
		}
	}
	return s, warnings, nil
}

// ResumeOrCreate resumes the session when possible and otherwise creates a
// fresh one. An unknown id is not an error; a fingerprint mismatch is
// reported as a warning and also falls through to a new session.
func (c *Controller) ResumeOrCreate(ctx context.Context, id string) (*domain.Session, bool, []string, error) {
	if id == "" {
		s, err := c.CreateSession(ctx)
		return s, false, nil, err
	}

	s, warnings, err := c.Resume(ctx, id)
	switch {
	case err == nil:
		return s, true, warnings, nil
	case errors.Is(err, repository.ErrNotFound):
		s, err := c.CreateSession(ctx)
		return s, false, nil, err
	case errors.Is(err, ErrFingerprintMismatch):
		warnings = append(warnings, "content pack changed since this session started; starting a fresh session")
		s, err := c.CreateSession(ctx)
		return s, false, warnings, err
	default:
		return nil, false, nil, err
	}
}

// SubmitOnboarding records the questionnaire answers, locks the profile
// and starts the first case.
func (c *Controller) SubmitOnboarding(ctx context.Context, s *domain.Session, p domain.Profile) error {
	if s.Phase != domain.PhaseOnboarding {
		return fmt.Errorf("onboarding already complete")
	}
	if !p.Complete() {
		return fmt.Errorf("all onboarding fields must be answered")
	}

	s.Profile = p
	s.OnboardingComplete = true
	s.Phase = domain.PhaseInCase
	if err := c.startCase(s); err != nil {
		return err
	}
	return c.sessions.Save(ctx, s)
}

// CurrentPatient resolves the case record under the cursor.
func (c *Controller) CurrentPatient(s *domain.Session) (*contentpack.Patient, bool) {
	id, ok := s.CurrentCaseID()
	if !ok {
		return nil, false
	}
	return c.pack.PatientByID(id)
}

// OfferedActions lists the investigation actions available right now.
func (c *Controller) OfferedActions(s *domain.Session) []contentpack.Action {
	p, ok := c.CurrentPatient(s)
	if !ok {
		return nil
	}
	return OfferedActions(c.pack, p, s)
}

// Reveal discloses an action's result and charges its simulated cost.
// Revealing an already-revealed action is a no-op; the cost is charged at
// most once per case per action.
func (c *Controller) Reveal(ctx context.Context, s *domain.Session, key string) error {
	if s.Phase != domain.PhaseInCase {
		return fmt.Errorf("no case in progress")
	}
	p, ok := c.CurrentPatient(s)
	if !ok {
		return fmt.Errorf("no case in progress")
	}
	action, ok := c.pack.ActionByKey(key)
	if !ok {
		return fmt.Errorf("unknown action %q", key)
	}
	if !actionOffered(p, s, action) {
		return fmt.Errorf("action %q not offered for this case", key)
	}
	if s.IsRevealed(key) {
		return nil
	}

	s.Revealed[key] = true
	s.AccumulatedCostMs += action.CostMs

	e := c.newEvent(s, eventlog.KindReveal)
	e.ActionKey = key
	if err := c.appendEvent(s, e); err != nil {
		return err
	}
	return c.sessions.Save(ctx, s)
}

// Hide removes an action's result from view. The accumulated cost is not
// refunded: the time was already spent investigating.
func (c *Controller) Hide(ctx context.Context, s *domain.Session, key string) error {
	if s.Phase != domain.PhaseInCase {
		return fmt.Errorf("no case in progress")
	}
	if !s.IsRevealed(key) {
		return nil
	}

	delete(s.Revealed, key)

	e := c.newEvent(s, eventlog.KindHide)
	e.ActionKey = key
	if err := c.appendEvent(s, e); err != nil {
		return err
	}
	return c.sessions.Save(ctx, s)
}

// SubmitDecision records and scores the triage decision for the current
// case, then advances the state machine: same scenario or a tutorial on
// either side continues straight into the next case; a real scenario
// boundary inserts the workload survey (then the washout); the end of the
// queue completes the session.
func (c *Controller) SubmitDecision(ctx context.Context, s *domain.Session, opt contentpack.ToolOption) error {
	if s.Phase != domain.PhaseInCase {
		return fmt.Errorf("no case in progress")
	}
	prev, ok := c.CurrentPatient(s)
	if !ok {
		return fmt.Errorf("no case in progress")
	}

	e := c.newEvent(s, eventlog.KindDecision)
	e.ActionKey = "triage_decision"
	e.DecisionRaw = opt.Label
	e.DecisionNormalized = opt.Normalized
	if gold, known := prev.GoldStandardFor(s.Profile.ToolID); known {
		score := Grade(gold, opt.Normalized)
		e.Correct = &score.Correct
		e.Deviation = score.Deviation
	}
	if err := c.appendEvent(s, e); err != nil {
		return err
	}

	s.Advance()
	currID, ok := s.CurrentCaseID()
	if !ok {
		s.Phase = domain.PhaseComplete
		s.CardStartedAt = nil
		return c.sessions.Save(ctx, s)
	}
	curr, ok := c.pack.PatientByID(currID)
	if !ok {
		return fmt.Errorf("queued case %s not in content pack", currID)
	}

	if prev.Scenario != curr.Scenario && !prev.IsTutorial && !curr.IsTutorial {
		s.Phase = domain.PhaseSurveyPending
		s.LastFinishedScenario = prev.Scenario
	} else {
		if err := c.startCase(s); err != nil {
			return err
		}
	}
	return c.sessions.Save(ctx, s)
}

// SubmitSurvey records the workload questionnaire in the shared survey log
// and arms the rest interlude. Case-transient state is cleared so the next
// case starts a clean timer.
func (c *Controller) SubmitSurvey(ctx context.Context, s *domain.Session, resp eventlog.SurveyResponse) error {
	if s.Phase != domain.PhaseSurveyPending {
		return fmt.Errorf("no workload survey pending")
	}
	if err := resp.Validate(); err != nil {
		return err
	}

	if err := c.surveys.Append(eventlog.SurveyRow{
		Timestamp:        c.now(),
		SessionID:        s.ID,
		Role:             s.Profile.Role,
		YearsExperience:  s.Profile.YearsExperience,
		FatigueStatus:    s.Profile.FatigueStatus,
		ToolID:           s.Profile.ToolID,
		FinishedScenario: s.LastFinishedScenario,
		Response:         resp,
	}); err != nil {
		return err
	}

	now := c.now()
	s.ResetCaseState(nil)
	s.WashoutStartedAt = &now
	s.Phase = domain.PhaseWashoutPending

	if err := c.appendEvent(s, c.newEvent(s, eventlog.KindWashoutStart)); err != nil {
		return err
	}
	return c.sessions.Save(ctx, s)
}

// WashoutRemaining reports how much of the rest interlude is left.
func (c *Controller) WashoutRemaining(s *domain.Session, now time.Time) time.Duration {
	if s.WashoutStartedAt == nil {
		return 0
	}
	remaining := c.cfg.WashoutDuration - now.Sub(*s.WashoutStartedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CompleteWashout ends the rest interlude and starts the next case's timer
// at that instant. It refuses while the countdown is still running, so
// physical elapsed time cannot be shortcut.
func (c *Controller) CompleteWashout(ctx context.Context, s *domain.Session) error {
	if s.Phase != domain.PhaseWashoutPending {
		return fmt.Errorf("no washout in progress")
	}
	if c.WashoutRemaining(s, c.now()) > 0 {
		return ErrWashoutActive
	}

	if err := c.appendEvent(s, c.newEvent(s, eventlog.KindWashoutComplete)); err != nil {
		return err
	}

	s.WashoutStartedAt = nil
	s.Phase = domain.PhaseInCase
	if err := c.startCase(s); err != nil {
		return err
	}
	return c.sessions.Save(ctx, s)
}

// Withdraw deletes the session snapshot and its event log. It is safe to
// invoke at any point and idempotent; the shared survey log is untouched.
func (c *Controller) Withdraw(ctx context.Context, id string) error {
	s, err := c.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := c.sessions.Delete(ctx, id); err != nil {
		return err
	}
	return eventlog.NewLogger(s.LogPath).Remove()
}

// startCase arms the case timer, clears the reveal ledger and logs
// card_start. The caller persists the snapshot.
func (c *Controller) startCase(s *domain.Session) error {
	now := c.now()
	s.ResetCaseState(&now)

	e := c.newEvent(s, eventlog.KindCardStart)
	e.ActionKey = "system"
	return c.appendEvent(s, e)
}

// newEvent builds an event row with session context, the gold standard at
// time of event, and elapsed real/simulated times. Interlude events carry
// zero elapsed time because no case timer is armed.
func (c *Controller) newEvent(s *domain.Session, kind eventlog.Kind) eventlog.Event {
	now := c.now()
	e := eventlog.Event{
		Timestamp:       now,
		AppVersion:      s.AppVersion,
		Fingerprint:     s.Fingerprint,
		SessionID:       s.ID,
		Role:            s.Profile.Role,
		YearsExperience: s.Profile.YearsExperience,
		FatigueStatus:   s.Profile.FatigueStatus,
		ToolID:          s.Profile.ToolID,
		Kind:            kind,
	}
	if p, ok := c.CurrentPatient(s); ok {
		e.Scenario = p.Scenario
		e.CaseID = p.ID
		if gold, known := p.GoldStandardFor(s.Profile.ToolID); known {
			e.GoldStandard = gold
		}
	}
	e.TRealMs = s.ElapsedRealMs(now)
	e.TSimMs = e.TRealMs + s.AccumulatedCostMs
	return e
}

func (c *Controller) appendEvent(s *domain.Session, e eventlog.Event) error {
	return eventlog.NewLogger(s.LogPath).Append(e)
}

// actionOffered mirrors the OfferedActions filter for a single action.
func actionOffered(p *contentpack.Patient, s *domain.Session, a contentpack.Action) bool {
	if a.Key == contentpack.VisualKey {
		return false
	}
	if !a.OfferedToTool(s.Profile.ToolID) {
		return false
	}
	if !p.HasResult(a.Key) {
		return false
	}
	if a.Key == airwayManeuverKey && airwayManeuverSuppressed(p) {
		return false
	}
	return true
}
