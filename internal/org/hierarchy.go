package org

import (
	"context"

	"missionmind/internal/model"
	"missionmind/internal/org/repository"
)

// Hierarchy adapts the org repository to the read-only lookups the scoring
// and routing components expect. Inactive units still resolve so historical
// tasks keep their chain.
type Hierarchy struct {
	repo repository.Repository
}

func NewHierarchy(repo repository.Repository) *Hierarchy {
	return &Hierarchy{repo: repo}
}

// GetUnit returns the org unit with the given id, or ok=false when absent.
func (h *Hierarchy) GetUnit(ctx context.Context, id string) (model.OrgUnit, bool, error) {
	unit, err := h.repo.GetOneUnit(ctx, repository.GetOneUnitOptions{ID: id})
	if err != nil {
		return model.OrgUnit{}, false, err
	}
	return unit, unit.ID != "", nil
}

// GetParent returns the parent id recorded on the given unit.
func (h *Hierarchy) GetParent(ctx context.Context, id string) (string, bool, error) {
	unit, err := h.repo.GetOneUnit(ctx, repository.GetOneUnitOptions{ID: id})
	if err != nil {
		return "", false, err
	}
	if unit.ID == "" {
		return "", false, nil
	}
	return unit.ParentID, true, nil
}

// ListByOrgUnit returns the authorities owned by an org unit in stable order.
func (h *Hierarchy) ListByOrgUnit(ctx context.Context, orgUnitID string) ([]model.Authority, error) {
	return h.repo.ListAuthorities(ctx, repository.ListAuthoritiesOptions{OrgUnitID: orgUnitID})
}
