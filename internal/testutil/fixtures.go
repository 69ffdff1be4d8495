package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/triagelab/internal/contentpack"
	"github.com/alexanderramin/triagelab/internal/domain"
	"github.com/google/uuid"
)

var testCaseCounter atomic.Int64

// Patient options

type PatientOption func(*contentpack.Patient)

func WithTutorial() PatientOption {
	return func(p *contentpack.Patient) {
		p.IsTutorial = true
	}
}

func WithResult(key, text string) PatientOption {
	return func(p *contentpack.Patient) {
		p.Results[key] = text
	}
}

func WithGoldStandard(toolID, outcome string) PatientOption {
	return func(p *contentpack.Patient) {
		p.GoldStandards[toolID] = outcome
	}
}

func WithGoldNormalized(outcome string) PatientOption {
	return func(p *contentpack.Patient) {
		p.GoldNormalized = outcome
	}
}

// NewTestPatient builds a minimal valid case record in the given scenario.
func NewTestPatient(scenario string, opts ...PatientOption) contentpack.Patient {
	n := testCaseCounter.Add(1)
	p := contentpack.Patient{
		ID:             fmt.Sprintf("P%03d", n),
		Scenario:       scenario,
		Name:           fmt.Sprintf("Patient %d", n),
		VisibleText:    "Adult, responsive on approach.",
		Results:        map[string]string{},
		GoldStandards:  map[string]string{},
		GoldNormalized: "Green",
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Pack options

type PackOption func(*packBuilder)

type packBuilder struct {
	actions  []contentpack.Action
	tools    []contentpack.ToolOption
	patients []contentpack.Patient
}

func WithAction(key string, costMs int, validTools ...string) PackOption {
	return func(b *packBuilder) {
		b.actions = append(b.actions, contentpack.Action{
			Key:        key,
			Label:      "Check " + key,
			CostMs:     costMs,
			Category:   "assessment",
			ValidTools: validTools,
		})
	}
}

func WithToolOption(toolID, label, normalized string) PackOption {
	return func(b *packBuilder) {
		b.tools = append(b.tools, contentpack.ToolOption{
			ToolID:     toolID,
			Label:      label,
			Normalized: normalized,
		})
	}
}

func WithPatients(patients ...contentpack.Patient) PackOption {
	return func(b *packBuilder) {
		b.patients = append(b.patients, patients...)
	}
}

// NewTestPack assembles an in-memory content pack. Without options it
// carries one action, one ATS tool button and one tutorial patient, enough
// for a session to run end to end.
func NewTestPack(opts ...PackOption) *contentpack.Pack {
	b := &packBuilder{}
	for _, opt := range opts {
		opt(b)
	}
	if len(b.actions) == 0 {
		b.actions = []contentpack.Action{{Key: "pulse", Label: "Check Pulse", CostMs: 15000, Category: "circulation"}}
	}
	if len(b.tools) == 0 {
		b.tools = []contentpack.ToolOption{
			{ToolID: "ATS", Label: "Immediate", Normalized: "Red"},
			{ToolID: "ATS", Label: "Delayed", Normalized: "Yellow"},
			{ToolID: "ATS", Label: "Minor", Normalized: "Green"},
			{ToolID: "ATS", Label: "Deceased", Normalized: "Black"},
		}
	}
	if len(b.patients) == 0 {
		b.patients = []contentpack.Patient{NewTestPatient("Tutorial", WithTutorial())}
	}

	pack := &contentpack.Pack{
		Config:      b.actions,
		Tools:       b.tools,
		Patients:    b.patients,
		Fingerprint: "test-fingerprint-" + uuid.New().String()[:8],
	}
	pack.Reindex()
	return pack
}

// NewTestProfile returns a complete onboarding profile for the given tool.
func NewTestProfile(toolID string) domain.Profile {
	return domain.Profile{
		Role:            "Paramedic",
		YearsExperience: "5-10 years",
		FatigueStatus:   "Rested",
		ToolID:          toolID,
	}
}

// Clock is a manually advanced time source for controller tests.
type Clock struct {
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
