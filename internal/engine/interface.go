// Package engine computes urgency scores, routing recommendations, approving
// authority suggestions, lateness risk, and completeness checks for tasks.
// Every component is a pure function over its inputs plus the read-only
// lookups below; nothing in this package performs writes or keeps state
// between calls, so all of it is safe for concurrent use.
package engine

import (
	"context"

	"missionmind/internal/model"
)

// HierarchyReader exposes the organizational hierarchy. Implementations are
// read-only; a failed lookup is treated as "not found" by every component.
type HierarchyReader interface {
	// GetUnit returns the org unit with the given id, or ok=false when absent.
	GetUnit(ctx context.Context, id string) (model.OrgUnit, bool, error)
	// GetParent returns the parent id recorded on the given unit. ok=false
	// means the unit itself is unknown; an empty parent id marks a root.
	GetParent(ctx context.Context, id string) (string, bool, error)
}

// AuthorityLookup lists authority records owned by an org unit, in stable
// storage order.
type AuthorityLookup interface {
	ListByOrgUnit(ctx context.Context, orgUnitID string) ([]model.Authority, error)
}

// Engine bundles the individual components wired against one hierarchy and
// authority source. Components remain usable on their own; this is the
// convenience aggregate the task use case depends on.
type Engine struct {
	Scorer      *Scorer
	Router      *Router
	Authorities *AuthorityResolver
	Risk        *RiskAssessor
	Quality     *QualityChecker
	Assignments *AssignmentGenerator
	Summaries   *Summarizer
}

// New builds an Engine from the given tables (zero-value fields fall back to
// the built-in defaults) and lookups.
func New(tables Tables, hierarchy HierarchyReader, authorities AuthorityLookup) *Engine {
	tables = tables.withDefaults()

	router := NewRouter(tables.KeywordRoutes, hierarchy)
	return &Engine{
		Scorer:      NewScorer(tables),
		Router:      router,
		Authorities: NewAuthorityResolver(hierarchy, authorities),
		Risk:        NewRiskAssessor(),
		Quality:     NewQualityChecker(),
		Assignments: NewAssignmentGenerator(router),
		Summaries:   NewSummarizer(),
	}
}
