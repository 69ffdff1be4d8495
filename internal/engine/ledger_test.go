package engine

import (
	"testing"

	"github.com/alexanderramin/triagelab/internal/domain"
	"github.com/alexanderramin/triagelab/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferedActions_Filtering(t *testing.T) {
	patient := testutil.NewTestPatient("Entrapment",
		testutil.WithResult("pulse", "Weak and rapid."),
		testutil.WithResult("walk", ""),
		testutil.WithResult("airway", "Gurgling, obstructed."),
	)
	pack := testutil.NewTestPack(
		testutil.WithAction("visual", 0),
		testutil.WithAction("pulse", 15000),
		testutil.WithAction("walk", 5000),
		testutil.WithAction("airway", 10000),
		testutil.WithAction("airway_maneuver", 20000),
		testutil.WithAction("ecg", 60000, "SMART"),
		testutil.WithPatients(patient),
	)
	sess := &domain.Session{Profile: testutil.NewTestProfile("ATS")}

	p, ok := pack.PatientByID(patient.ID)
	require.True(t, ok)

	var keys []string
	for _, a := range OfferedActions(pack, p, sess) {
		keys = append(keys, a.Key)
	}

	// visual is implicit, walk has a blank result, ecg belongs to another
	// tool, airway_maneuver is offered because the airway is not clear...
	assert.Equal(t, []string{"pulse", "airway"}, keys)

	// ...but airway_maneuver needs its own result text to be offered.
	p.Results["airway_maneuver"] = "Jaw thrust applied."
	keys = nil
	for _, a := range OfferedActions(pack, p, sess) {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"pulse", "airway", "airway_maneuver"}, keys)
}

func TestOfferedActions_AirwaySuppression(t *testing.T) {
	patient := testutil.NewTestPatient("Entrapment",
		testutil.WithResult("airway", "Airway clear, speaking full sentences."),
		testutil.WithResult("airway_maneuver", "Repositioned; no change."),
	)
	pack := testutil.NewTestPack(
		testutil.WithAction("airway", 10000),
		testutil.WithAction("airway_maneuver", 20000),
		testutil.WithPatients(patient),
	)
	sess := &domain.Session{Profile: testutil.NewTestProfile("ATS")}

	p, ok := pack.PatientByID(patient.ID)
	require.True(t, ok)

	var keys []string
	for _, a := range OfferedActions(pack, p, sess) {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"airway"}, keys, "maneuver is redundant for a clear airway")
}

func TestOfferedActions_ToolCatalog(t *testing.T) {
	patient := testutil.NewTestPatient("Entrapment",
		testutil.WithResult("pulse", "Present."),
		testutil.WithResult("ecg", "Sinus tachycardia."),
	)
	pack := testutil.NewTestPack(
		testutil.WithAction("pulse", 15000),
		testutil.WithAction("ecg", 60000, "SMART"),
		testutil.WithPatients(patient),
	)
	p, _ := pack.PatientByID(patient.ID)

	smart := &domain.Session{Profile: testutil.NewTestProfile("SMART")}
	var keys []string
	for _, a := range OfferedActions(pack, p, smart) {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"pulse", "ecg"}, keys)
}
