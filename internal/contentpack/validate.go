package contentpack

import "fmt"

// Palette is the fixed set of normalized triage outcomes a tool button may
// map to.
var Palette = map[string]bool{
	"Red": true, "Yellow": true, "Orange": true, "Green": true,
	"Black": true, "White": true, "Blue": true,
}

// Validate checks the pack's structure before any session is created.
// Returns all errors found; a non-empty result is fatal.
func Validate(p *Pack) []error {
	var errs []error

	errs = append(errs, validateConfig(p.Config)...)
	errs = append(errs, validateTools(p.Tools)...)
	errs = append(errs, validatePatients(p.Patients, p.Config)...)

	return errs
}

func validateConfig(actions []Action) []error {
	var errs []error
	if len(actions) == 0 {
		errs = append(errs, fmt.Errorf("config: no actions defined"))
	}
	seen := make(map[string]bool)
	for i, a := range actions {
		if a.Key == "" {
			errs = append(errs, fmt.Errorf("config[%d]: action_key is required", i))
			continue
		}
		if seen[a.Key] {
			errs = append(errs, fmt.Errorf("config: duplicate action_key %q", a.Key))
		}
		seen[a.Key] = true
		if a.Label == "" && a.Key != VisualKey {
			errs = append(errs, fmt.Errorf("config[%s]: button_label is required", a.Key))
		}
		if a.CostMs < 0 {
			errs = append(errs, fmt.Errorf("config[%s]: cost_ms must be non-negative", a.Key))
		}
	}
	return errs
}

func validateTools(tools []ToolOption) []error {
	var errs []error
	if len(tools) == 0 {
		errs = append(errs, fmt.Errorf("tools: no tool options defined"))
	}
	for i, t := range tools {
		if t.ToolID == "" {
			errs = append(errs, fmt.Errorf("tools[%d]: tool_id is required", i))
		}
		if t.Label == "" {
			errs = append(errs, fmt.Errorf("tools[%d]: button_label is required", i))
		}
		if !Palette[t.Normalized] {
			errs = append(errs, fmt.Errorf("tools[%d]: normalized_value %q outside the fixed palette", i, t.Normalized))
		}
	}
	return errs
}

func validatePatients(patients []Patient, actions []Action) []error {
	var errs []error
	if len(patients) == 0 {
		errs = append(errs, fmt.Errorf("patients: no case records defined"))
	}

	known := make(map[string]bool, len(actions))
	for _, a := range actions {
		known[a.Key] = true
	}

	seen := make(map[string]bool)
	for i, p := range patients {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("patients[%d]: id is required", i))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("patients: duplicate id %q", p.ID))
		}
		seen[p.ID] = true
		if p.Scenario == "" {
			errs = append(errs, fmt.Errorf("patients[%s]: scenario is required", p.ID))
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("patients[%s]: patient_name is required", p.ID))
		}
		if p.VisibleText == "" {
			errs = append(errs, fmt.Errorf("patients[%s]: visible_text is required", p.ID))
		}
		for key := range p.Results {
			if !known[key] {
				errs = append(errs, fmt.Errorf("patients[%s]: result for unknown action_key %q", p.ID, key))
			}
		}
		for _, g := range p.GoldStandards {
			if g != "" && !Palette[g] {
				errs = append(errs, fmt.Errorf("patients[%s]: gold standard %q outside the fixed palette", p.ID, g))
			}
		}
		if p.GoldNormalized != "" && !Palette[p.GoldNormalized] {
			errs = append(errs, fmt.Errorf("patients[%s]: gold_standard_normalized %q outside the fixed palette", p.ID, p.GoldNormalized))
		}
	}
	return errs
}
