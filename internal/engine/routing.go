package engine

import (
	"context"
	"fmt"
	"strings"

	"missionmind/internal/model"
)

// Router recommends the org unit that should own a task, based on keyword
// routes over the task text. Recommend is total: unknown units and lookup
// failures degrade to the task's own org rather than erroring.
type Router struct {
	routes    []KeywordRoute
	hierarchy HierarchyReader
}

func NewRouter(routes []KeywordRoute, hierarchy HierarchyReader) *Router {
	if len(routes) == 0 {
		routes = DefaultKeywordRoutes()
	}
	return &Router{routes: routes, hierarchy: hierarchy}
}

// Recommend returns the suggested org unit id and a human-readable rationale.
// The first route whose keyword appears in the task's tags, title, or
// description wins, provided the mapped unit exists. Otherwise the task's own
// org unit is kept.
func (r *Router) Recommend(ctx context.Context, task model.Task) (string, string) {
	text := joinedText(task.Tags, task.Title, task.Description)

	for _, route := range r.routes {
		if !strings.Contains(text, route.Keyword) {
			continue
		}
		unit, ok, err := r.hierarchy.GetUnit(ctx, route.OrgUnitID)
		if err != nil || !ok {
			continue
		}
		return unit.ID, fmt.Sprintf("Matched keyword '%s' with org %s", route.Keyword, unit.Name)
	}

	if _, ok, err := r.hierarchy.GetUnit(ctx, task.OrgUnitID); err == nil && ok {
		return task.OrgUnitID, "Defaulted to originating org"
	}
	return task.OrgUnitID, "No org metadata available; used provided org_unit_id"
}

// AssignmentGenerator produces the initial owner assignment for a new task.
type AssignmentGenerator struct {
	router *Router
}

func NewAssignmentGenerator(router *Router) *AssignmentGenerator {
	return &AssignmentGenerator{router: router}
}

// Generate returns the pending org-level owner assignment for the task. The
// assignee is whatever the router recommends; identity and timestamps are
// left for the store to stamp.
func (g *AssignmentGenerator) Generate(ctx context.Context, task model.Task) model.Assignment {
	orgUnitID, rationale := g.router.Recommend(ctx, task)
	return model.Assignment{
		TaskID:       task.ID,
		AssigneeType: model.AssigneeTypeOrg,
		AssigneeID:   orgUnitID,
		Role:         model.AssignmentRoleOwner,
		State:        model.AssignmentStatePending,
		Rationale:    rationale,
	}
}
