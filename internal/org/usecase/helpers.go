package usecase

import (
	"context"

	repo "missionmind/internal/org/repository"
)

// maxAncestorDepth bounds hierarchy walks against corrupt parent chains.
const maxAncestorDepth = 32

// coalesce returns val when non-empty, otherwise fallback.
func (uc *implUseCase) coalesce(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}

// wouldCycle reports whether attaching unitID under parentID would make the
// unit its own ancestor. The walk starts at the proposed parent and climbs;
// hitting unitID anywhere on the way up is a cycle.
func (uc *implUseCase) wouldCycle(ctx context.Context, unitID, parentID string) (bool, error) {
	if parentID == unitID {
		return true, nil
	}

	visited := map[string]struct{}{parentID: {}}
	current := parentID
	for depth := 0; depth < maxAncestorDepth; depth++ {
		unit, err := uc.repo.GetOneUnit(ctx, repo.GetOneUnitOptions{ID: current})
		if err != nil {
			return false, err
		}
		if unit.ID == "" || unit.ParentID == "" {
			return false, nil
		}
		if unit.ParentID == unitID {
			return true, nil
		}
		if _, seen := visited[unit.ParentID]; seen {
			// Pre-existing cycle above the proposed parent; it does not
			// involve unitID or the check above would have caught it.
			return false, nil
		}
		visited[unit.ParentID] = struct{}{}
		current = unit.ParentID
	}
	return false, nil
}
