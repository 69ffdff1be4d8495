package contentpack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePack = `config:
  - action_key: visual
    cost_ms: 0
  - action_key: pulse
    button_label: Check pulse
    cost_ms: 15000
    category: circulation
  - action_key: airway
    button_label: Check airway
    cost_ms: 10000
    category: airway
    valid_tools: [ATS]
tools:
  - tool_id: ATS
    button_label: Immediate
    normalized_value: Red
  - tool_id: ATS
    button_label: Minor
    normalized_value: Green
patients:
  - id: P001
    scenario: Entrapment
    patient_name: Jordan Vale
    visible_text: Trapped under debris, responsive to voice.
    results:
      pulse: Weak and rapid.
    gold_standard:
      ATS: Red
    gold_standard_normalized: Yellow
  - id: P002
    scenario: Entrapment
    is_tutorial: true
    patient_name: Sam Reed
    visible_text: Walking wounded, minor lacerations.
    gold_standard_normalized: Green
`

func writePack(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	pack, err := Load(writePack(t, samplePack))
	require.NoError(t, err)

	assert.Len(t, pack.Config, 3)
	assert.Len(t, pack.Tools, 2)
	assert.Len(t, pack.Patients, 2)
	assert.Len(t, pack.Fingerprint, 64, "hex sha-256")

	p, ok := pack.PatientByID("P001")
	require.True(t, ok)
	assert.Equal(t, "Entrapment", p.Scenario)
	assert.False(t, p.IsTutorial)

	p2, ok := pack.PatientByID("P002")
	require.True(t, ok)
	assert.True(t, p2.IsTutorial)

	assert.Equal(t, []string{"ATS"}, pack.ToolIDs())
}

func TestLoad_FingerprintTracksBytes(t *testing.T) {
	a, err := Load(writePack(t, samplePack))
	require.NoError(t, err)
	b, err := Load(writePack(t, samplePack))
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint, b.Fingerprint, "identical bytes, identical fingerprint")

	c, err := Load(writePack(t, samplePack+"# trailing comment\n"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint, c.Fingerprint, "any byte change invalidates sessions")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writePack(t, "config: [\n"))
	assert.Error(t, err)
}

func TestLoad_ValidationFailure(t *testing.T) {
	bad := `config:
  - action_key: pulse
    button_label: Check pulse
    cost_ms: -1
tools:
  - tool_id: ATS
    button_label: Immediate
    normalized_value: Purple
patients:
  - id: P001
    scenario: Entrapment
    patient_name: Jordan Vale
    visible_text: Text.
    results:
      xray: Clear.
`
	_, err := Load(writePack(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cost_ms must be non-negative")
	assert.Contains(t, err.Error(), "outside the fixed palette")
	assert.Contains(t, err.Error(), `unknown action_key "xray"`)
}
