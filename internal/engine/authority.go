package engine

import (
	"context"
	"fmt"

	"missionmind/internal/model"
)

const (
	// DefaultSuggestionLimit bounds authority suggestions when the caller
	// does not ask for a specific count.
	DefaultSuggestionLimit = 3

	// maxChainDepth bounds the upward walk so a mis-parented hierarchy can
	// never spin the resolver.
	maxChainDepth = 32
)

// AuthorityResolver suggests approving authorities for a task by walking the
// org hierarchy upward from the task's unit. Suggest is total: lookup
// failures shorten the chain or skip a tier, and an empty result is replaced
// by a stub so callers always get at least one suggestion.
type AuthorityResolver struct {
	hierarchy   HierarchyReader
	authorities AuthorityLookup
}

func NewAuthorityResolver(hierarchy HierarchyReader, authorities AuthorityLookup) *AuthorityResolver {
	return &AuthorityResolver{hierarchy: hierarchy, authorities: authorities}
}

// Suggest returns up to limit authority suggestions ordered by tier. Tier 0
// is the task's own unit and each step up the chain drops confidence by 0.1,
// floored at 0.4. An authority that holds positions in several tiers is
// suggested once, at its highest tier.
func (r *AuthorityResolver) Suggest(ctx context.Context, task model.Task, limit int) []model.AuthoritySuggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	var suggestions []model.AuthoritySuggestion
	seen := make(map[string]struct{})

	for tier, orgUnitID := range r.ancestorChain(ctx, task.OrgUnitID) {
		if orgUnitID == "" {
			continue
		}
		records, err := r.authorities.ListByOrgUnit(ctx, orgUnitID)
		if err != nil {
			continue
		}
		for _, a := range records {
			if _, dup := seen[a.ID]; dup {
				continue
			}
			seen[a.ID] = struct{}{}

			confidence := 0.9 - 0.1*float64(tier)
			if confidence < 0.4 {
				confidence = 0.4
			}
			suggestions = append(suggestions, model.AuthoritySuggestion{
				AuthorityID: a.ID,
				Title:       a.Title,
				OrgUnitID:   a.OrgUnitID,
				Grade:       a.Grade,
				Confidence:  round2(confidence),
				Rationale:   fmt.Sprintf("Authority aligned with org %s (tier %d)", a.OrgUnitID, tier+1),
			})
			if len(suggestions) >= limit {
				return suggestions
			}
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, model.AuthoritySuggestion{
			AuthorityID: "DEFAULT",
			Title:       "Org Chief",
			OrgUnitID:   task.OrgUnitID,
			Grade:       "GS-15",
			Confidence:  0.4,
			Rationale:   "No authority records available; defaulting to org chief.",
		})
	}
	return suggestions
}

// ancestorChain returns the task's org unit followed by its ancestors, root
// last. The walk records each unit's declared parent id even when that parent
// has no record of its own, then stops. Revisiting a unit or exceeding
// maxChainDepth ends the walk early.
func (r *AuthorityResolver) ancestorChain(ctx context.Context, start string) []string {
	chain := []string{start}
	visited := map[string]struct{}{start: {}}

	current := start
	for len(chain) < maxChainDepth {
		parent, ok, err := r.hierarchy.GetParent(ctx, current)
		if err != nil || !ok || parent == "" {
			break
		}
		if _, cycle := visited[parent]; cycle {
			break
		}
		chain = append(chain, parent)
		visited[parent] = struct{}{}
		current = parent
	}
	return chain
}
