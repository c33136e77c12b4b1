package engine

import (
	"math"
	"strings"
	"time"

	"missionmind/internal/model"
)

// Scorer computes the composite priority score of a task.
type Scorer struct {
	tables Tables
}

// NewScorer builds a Scorer; zero-value table fields fall back to defaults.
func NewScorer(tables Tables) *Scorer {
	return &Scorer{tables: tables.withDefaults()}
}

// Score returns the priority of a task as seen on the given day, in [0, 1]
// rounded to two decimals. Components are weighted urgency (0.35), originator
// echelon (0.25), keyword boost (0.15), and lifecycle status (0.05) on top of
// a 0.2 base, capped at 1.0.
func (s *Scorer) Score(task model.Task, today time.Time) float64 {
	urgency := s.urgencyWeight(task.SuspenseDate, today)
	originator := s.originatorWeight(task.Originator)
	boost := s.keywordBoost(joinedText(task.Tags, task.Description))
	status := s.statusWeight(task.Status)

	score := 0.2 + 0.35*urgency + 0.25*originator + 0.15*boost + 0.05*status
	return round2(math.Min(score, 1.0))
}

// urgencyWeight steps down as the suspense date moves further out. Past-due
// and same-day tasks take the full weight.
func (s *Scorer) urgencyWeight(suspense, today time.Time) float64 {
	days := daysUntil(suspense, today)
	switch {
	case days <= 0:
		return 1.0
	case days <= 3:
		return 0.85
	case days <= 7:
		return 0.7
	case days <= 14:
		return 0.5
	default:
		return 0.3
	}
}

func (s *Scorer) originatorWeight(originator string) float64 {
	upper := strings.ToUpper(originator)
	for _, ow := range s.tables.OriginatorWeights {
		if strings.Contains(upper, ow.Pattern) {
			return ow.Weight
		}
	}
	return defaultOriginatorWeight
}

// keywordBoost counts distinct routing keywords present in the text. One hit
// is worth 0.3, each further hit adds 0.1 up to a 0.4 cap.
func (s *Scorer) keywordBoost(text string) float64 {
	matches := 0
	for _, route := range s.tables.KeywordRoutes {
		if strings.Contains(text, route.Keyword) {
			matches++
		}
	}
	if matches == 0 {
		return 0
	}
	return math.Min(0.2+0.1*float64(matches), 0.4)
}

func (s *Scorer) statusWeight(status model.TaskStatus) float64 {
	if w, ok := s.tables.StatusWeights[string(status)]; ok {
		return w
	}
	return defaultStatusWeight
}

// daysUntil counts whole calendar days from today to the suspense date, both
// taken as UTC dates. Negative means past due.
func daysUntil(suspense, today time.Time) int {
	return int(dateOnly(suspense).Sub(dateOnly(today)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// joinedText lowercases tags plus trailing free text into one search string.
func joinedText(tags []string, rest ...string) string {
	parts := make([]string, 0, len(tags)+len(rest))
	parts = append(parts, tags...)
	parts = append(parts, rest...)
	return strings.ToLower(strings.Join(parts, " "))
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
