package contentpack

import "strings"

// VisualKey is the implicit zero-cost visual scan. Its findings are part of
// the visible text, so it is never offered as an investigation button.
const VisualKey = "visual"

// Action is one investigation available during a case.
type Action struct {
	Key        string   `yaml:"action_key"`
	Label      string   `yaml:"button_label"`
	CostMs     int      `yaml:"cost_ms"`
	Category   string   `yaml:"category"`
	ValidTools []string `yaml:"valid_tools"`
}

// OfferedToTool reports whether the action belongs to the given triage
// tool's catalog. An empty valid_tools list means every tool.
func (a Action) OfferedToTool(toolID string) bool {
	if len(a.ValidTools) == 0 {
		return true
	}
	for _, t := range a.ValidTools {
		if t == toolID {
			return true
		}
	}
	return false
}

// ToolOption is one decision button of a triage system.
type ToolOption struct {
	ToolID     string `yaml:"tool_id"`
	Label      string `yaml:"button_label"`
	Normalized string `yaml:"normalized_value"`
}

// Patient is one simulated case record.
type Patient struct {
	ID             string            `yaml:"id"`
	Scenario       string            `yaml:"scenario"`
	IsTutorial     bool              `yaml:"is_tutorial"`
	Name           string            `yaml:"patient_name"`
	VisibleText    string            `yaml:"visible_text"`
	AvatarFile     string            `yaml:"avatar_file"`
	Results        map[string]string `yaml:"results"`
	GoldStandards  map[string]string `yaml:"gold_standard"`
	GoldNormalized string            `yaml:"gold_standard_normalized"`
}

// HasResult reports whether the case carries a non-blank result for the key.
func (p *Patient) HasResult(key string) bool {
	return strings.TrimSpace(p.Results[key]) != ""
}

// ResultText returns the case's result text for an action key, falling back
// to the key's clinical default when the record leaves the field blank.
// It never returns an empty string.
func (p *Patient) ResultText(key string) string {
	if text := strings.TrimSpace(p.Results[key]); text != "" {
		return text
	}
	return defaultResult(key)
}

// GoldStandardFor resolves the gold-standard triage color for a tool:
// tool-specific entry first, then the universal normalized value. The
// second return is false when neither is defined (the case is unscored
// for that tool).
func (p *Patient) GoldStandardFor(toolID string) (string, bool) {
	if g := strings.TrimSpace(p.GoldStandards[toolID]); g != "" {
		return g, true
	}
	if g := strings.TrimSpace(p.GoldNormalized); g != "" {
		return g, true
	}
	return "", false
}

// Pack is the validated content pack plus its integrity fingerprint.
// It is loaded once per process and must be treated as read-only.
type Pack struct {
	Config      []Action
	Tools       []ToolOption
	Patients    []Patient
	Fingerprint string

	byID map[string]*Patient
}

// Reindex rebuilds the patient-id lookup. Load calls this; fixtures that
// assemble a Pack by hand must call it too.
func (p *Pack) Reindex() {
	p.byID = make(map[string]*Patient, len(p.Patients))
	for i := range p.Patients {
		p.byID[p.Patients[i].ID] = &p.Patients[i]
	}
}

// PatientByID resolves a case record by identifier.
func (p *Pack) PatientByID(id string) (*Patient, bool) {
	pt, ok := p.byID[id]
	return pt, ok
}

// OptionsForTool returns the decision buttons for a triage tool in their
// stored order.
func (p *Pack) OptionsForTool(toolID string) []ToolOption {
	var opts []ToolOption
	for _, t := range p.Tools {
		if t.ToolID == toolID {
			opts = append(opts, t)
		}
	}
	return opts
}

// ToolIDs returns the distinct tool identifiers in stored order.
func (p *Pack) ToolIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, t := range p.Tools {
		if !seen[t.ToolID] {
			seen[t.ToolID] = true
			ids = append(ids, t.ToolID)
		}
	}
	return ids
}

// ActionByKey resolves an action from the catalog.
func (p *Pack) ActionByKey(key string) (Action, bool) {
	for _, a := range p.Config {
		if a.Key == key {
			return a, true
		}
	}
	return Action{}, false
}
