package engine

import (
	"strings"

	"github.com/alexanderramin/triagelab/internal/contentpack"
	"github.com/alexanderramin/triagelab/internal/domain"
)

// Keys involved in the airway redundancy rule.
const (
	airwayKey         = "airway"
	airwayManeuverKey = "airway_maneuver"
)

// airwayManeuverSuppressed reports whether the airway maneuver action is
// withheld for a case: repositioning the airway is redundant when the
// airway assessment already reads clear.
func airwayManeuverSuppressed(p *contentpack.Patient) bool {
	return strings.Contains(strings.ToLower(p.Results[airwayKey]), "clear")
}

// OfferedActions returns the investigation actions available for the given
// case and the session's assigned tool, in catalog order. An action is
// offered when its result field is non-blank for the case, it belongs to
// the tool's catalog, and it is not the implicit visual scan.
func OfferedActions(pack *contentpack.Pack, p *contentpack.Patient, s *domain.Session) []contentpack.Action {
	var offered []contentpack.Action
	for _, a := range pack.Config {
		if a.Key == contentpack.VisualKey {
			continue
		}
		if !a.OfferedToTool(s.Profile.ToolID) {
			continue
		}
		if !p.HasResult(a.Key) {
			continue
		}
		if a.Key == airwayManeuverKey && airwayManeuverSuppressed(p) {
			continue
		}
		offered = append(offered, a)
	}
	return offered
}
