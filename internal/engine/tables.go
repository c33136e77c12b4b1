package engine

import "missionmind/internal/model"

// KeywordRoute maps a lowercase keyword to the org unit that owns the topic.
// Routes are evaluated in slice order and the first hit wins, so broader
// keywords belong later in the list.
type KeywordRoute struct {
	Keyword   string
	OrgUnitID string
}

// OriginatorWeight maps an uppercase substring of the originator line to an
// echelon weight. Patterns are evaluated in slice order.
type OriginatorWeight struct {
	Pattern string
	Weight  float64
}

// Tables holds the tunable lookup tables behind scoring and routing. A
// zero-value Tables means "use the defaults"; partial overrides are applied
// per field.
type Tables struct {
	KeywordRoutes     []KeywordRoute
	OriginatorWeights []OriginatorWeight
	StatusWeights     map[string]float64
}

func (t Tables) withDefaults() Tables {
	if len(t.KeywordRoutes) == 0 {
		t.KeywordRoutes = DefaultKeywordRoutes()
	}
	if len(t.OriginatorWeights) == 0 {
		t.OriginatorWeights = DefaultOriginatorWeights()
	}
	if len(t.StatusWeights) == 0 {
		t.StatusWeights = DefaultStatusWeights()
	}
	return t
}

// DefaultKeywordRoutes returns the staff-section routing table. Keywords are
// matched against lowercased task text; see Router and Scorer for which
// fields each component searches.
func DefaultKeywordRoutes() []KeywordRoute {
	return []KeywordRoute{
		{Keyword: "readiness", OrgUnitID: "OPS_G3"},
		{Keyword: "training", OrgUnitID: "OPS_G3"},
		{Keyword: "intel", OrgUnitID: "INTEL_G2"},
		{Keyword: "logistics", OrgUnitID: "LOG_G4"},
		{Keyword: "personnel", OrgUnitID: "PERS_G1"},
		{Keyword: "legal", OrgUnitID: "JA"},
		{Keyword: "chaplain", OrgUnitID: "CHAP"},
		{Keyword: "communications", OrgUnitID: "G6_CIO"},
	}
}

// DefaultOriginatorWeights returns the echelon weights keyed by originator
// substring. Unmatched originators score defaultOriginatorWeight.
func DefaultOriginatorWeights() []OriginatorWeight {
	return []OriginatorWeight{
		{Pattern: "HQDA", Weight: 1.0},
		{Pattern: "ACOM", Weight: 0.85},
		{Pattern: "ASCC", Weight: 0.8},
		{Pattern: "DRU", Weight: 0.75},
	}
}

// DefaultStatusWeights returns the lifecycle-state weights. Unknown statuses
// score defaultStatusWeight.
func DefaultStatusWeights() map[string]float64 {
	return map[string]float64{
		string(model.TaskStatusDraft):   0.4,
		string(model.TaskStatusInWork):  0.6,
		string(model.TaskStatusOpen):    0.7,
		string(model.TaskStatusOverdue): 1.0,
	}
}

const (
	defaultOriginatorWeight = 0.6
	defaultStatusWeight     = 0.5
)
