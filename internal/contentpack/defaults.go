package contentpack

// clinicalDefaults supplies the text reported when a case record leaves an
// action's result blank. Keys not listed fall back to genericDefault.
var clinicalDefaults = map[string]string{
	"airway":    "Airway patent, no obstruction noted.",
	"breathing": "Breathing present, rate not counted.",
	"pulse":     "Radial pulse not palpable at this time.",
	"walk":      "Unable to comply with walking instruction.",
	"response":  "No response to voice or painful stimulus.",
	"cap_refill": "Capillary refill indeterminate.",
}

const genericDefault = "No response / Indeterminate."

func defaultResult(key string) string {
	if text, ok := clinicalDefaults[key]; ok {
		return text
	}
	return genericDefault
}
