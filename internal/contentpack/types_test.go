package contentpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_OfferedToTool(t *testing.T) {
	any := Action{Key: "pulse"}
	assert.True(t, any.OfferedToTool("ATS"))
	assert.True(t, any.OfferedToTool("START"))

	scoped := Action{Key: "airway", ValidTools: []string{"ATS", "SALT"}}
	assert.True(t, scoped.OfferedToTool("ATS"))
	assert.False(t, scoped.OfferedToTool("START"))
}

func TestPatient_ResultText(t *testing.T) {
	p := &Patient{Results: map[string]string{
		"pulse":  "Weak and rapid.",
		"airway": "   ",
	}}

	assert.Equal(t, "Weak and rapid.", p.ResultText("pulse"))
	assert.True(t, p.HasResult("pulse"))

	// Whitespace-only counts as blank and falls back to the clinical default.
	assert.False(t, p.HasResult("airway"))
	assert.Equal(t, clinicalDefaults["airway"], p.ResultText("airway"))

	// Unknown keys never yield an empty string.
	assert.Equal(t, genericDefault, p.ResultText("xray"))
}

func TestPatient_GoldStandardFor(t *testing.T) {
	p := &Patient{
		GoldStandards:  map[string]string{"ATS": "Red"},
		GoldNormalized: "Yellow",
	}

	g, ok := p.GoldStandardFor("ATS")
	require.True(t, ok)
	assert.Equal(t, "Red", g, "tool-specific entry wins")

	g, ok = p.GoldStandardFor("START")
	require.True(t, ok)
	assert.Equal(t, "Yellow", g, "falls back to the universal value")

	unscored := &Patient{}
	_, ok = unscored.GoldStandardFor("ATS")
	assert.False(t, ok)
}

func TestPack_Lookups(t *testing.T) {
	pack := &Pack{
		Config: []Action{
			{Key: "pulse", Label: "Check pulse", CostMs: 15000},
		},
		Tools: []ToolOption{
			{ToolID: "ATS", Label: "Immediate", Normalized: "Red"},
			{ToolID: "ATS", Label: "Minor", Normalized: "Green"},
			{ToolID: "SALT", Label: "Dead", Normalized: "Black"},
		},
		Patients: []Patient{
			{ID: "P001", Scenario: "Entrapment"},
		},
	}
	pack.Reindex()

	_, ok := pack.PatientByID("P999")
	assert.False(t, ok)
	p, ok := pack.PatientByID("P001")
	require.True(t, ok)
	assert.Equal(t, "Entrapment", p.Scenario)

	opts := pack.OptionsForTool("ATS")
	require.Len(t, opts, 2)
	assert.Equal(t, "Immediate", opts[0].Label, "stored order preserved")

	assert.Equal(t, []string{"ATS", "SALT"}, pack.ToolIDs())

	a, ok := pack.ActionByKey("pulse")
	require.True(t, ok)
	assert.Equal(t, 15000, a.CostMs)
	_, ok = pack.ActionByKey("xray")
	assert.False(t, ok)
}
