package usecase

import (
	"context"

	"missionmind/internal/org"
	repo "missionmind/internal/org/repository"
)

// CreateUnit registers a new org unit after checking for id and name
// collisions.
func (uc *implUseCase) CreateUnit(ctx context.Context, input org.CreateUnitInput) (org.CreateUnitOutput, error) {
	existing, err := uc.repo.GetOneUnit(ctx, repo.GetOneUnitOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateUnit GetOneUnit: %v", err)
		return org.CreateUnitOutput{}, err
	}
	if existing.ID != "" {
		return org.CreateUnitOutput{}, org.ErrDuplicateUnit
	}

	sameName, err := uc.repo.GetOneUnit(ctx, repo.GetOneUnitOptions{Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateUnit GetOneUnit by name: %v", err)
		return org.CreateUnitOutput{}, err
	}
	if sameName.ID != "" {
		return org.CreateUnitOutput{}, org.ErrDuplicateUnit
	}

	unit, err := uc.repo.CreateUnit(ctx, repo.CreateUnitOptions{
		ID:       input.ID,
		Name:     input.Name,
		Echelon:  input.Echelon,
		ParentID: input.ParentID,
		Active:   true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateUnit CreateUnit: %v", err)
		return org.CreateUnitOutput{}, err
	}

	return org.CreateUnitOutput{Unit: unit}, nil
}

// ListUnits returns a filtered page of org units.
func (uc *implUseCase) ListUnits(ctx context.Context, input org.ListUnitsInput) (org.ListUnitsOutput, error) {
	units, total, err := uc.repo.ListUnits(ctx, repo.ListUnitsOptions{
		Echelon:    input.Echelon,
		ParentID:   input.ParentID,
		ActiveOnly: input.ActiveOnly,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListUnits ListUnits: %v", err)
		return org.ListUnitsOutput{}, err
	}

	return org.ListUnitsOutput{
		Units:  units,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// DetailUnit retrieves a single org unit by ID. Returns ErrUnitNotFound when
// not found.
func (uc *implUseCase) DetailUnit(ctx context.Context, id string) (org.DetailUnitOutput, error) {
	unit, err := uc.repo.GetOneUnit(ctx, repo.GetOneUnitOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailUnit GetOneUnit: %v", err)
		return org.DetailUnitOutput{}, err
	}
	if unit.ID == "" {
		return org.DetailUnitOutput{}, org.ErrUnitNotFound
	}
	return org.DetailUnitOutput{Unit: unit}, nil
}

// UpdateUnit modifies an existing org unit. Re-parenting is refused with
// ErrUnitCycle when the new parent sits below the unit itself.
func (uc *implUseCase) UpdateUnit(ctx context.Context, input org.UpdateUnitInput) (org.UpdateUnitOutput, error) {
	existing, err := uc.repo.GetOneUnit(ctx, repo.GetOneUnitOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateUnit GetOneUnit: %v", err)
		return org.UpdateUnitOutput{}, err
	}
	if existing.ID == "" {
		return org.UpdateUnitOutput{}, org.ErrUnitNotFound
	}

	parentID := existing.ParentID
	if input.ParentID != nil {
		parentID = *input.ParentID
	}
	if parentID != "" {
		cycle, err := uc.wouldCycle(ctx, input.ID, parentID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpdateUnit wouldCycle: %v", err)
			return org.UpdateUnitOutput{}, err
		}
		if cycle {
			return org.UpdateUnitOutput{}, org.ErrUnitCycle
		}
	}

	unit, err := uc.repo.UpdateUnit(ctx, repo.UpdateUnitOptions{
		ID:       input.ID,
		Name:     uc.coalesce(input.Name, existing.Name),
		Echelon:  uc.coalesce(input.Echelon, existing.Echelon),
		ParentID: parentID,
		Active:   existing.Active,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateUnit UpdateUnit: %v", err)
		return org.UpdateUnitOutput{}, err
	}
	return org.UpdateUnitOutput{Unit: unit}, nil
}

// DeactivateUnit marks an org unit inactive so routing and new tasks stop
// landing on it. Units that still have children are refused; deactivate the
// children first. Existing references remain readable.
func (uc *implUseCase) DeactivateUnit(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneUnit(ctx, repo.GetOneUnitOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeactivateUnit GetOneUnit: %v", err)
		return err
	}
	if existing.ID == "" {
		return org.ErrUnitNotFound
	}

	_, children, err := uc.repo.ListUnits(ctx, repo.ListUnitsOptions{ParentID: id, Limit: 1})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeactivateUnit ListUnits: %v", err)
		return err
	}
	if children > 0 {
		return org.ErrUnitHasChildren
	}

	if _, err := uc.repo.UpdateUnit(ctx, repo.UpdateUnitOptions{
		ID:       existing.ID,
		Name:     existing.Name,
		Echelon:  existing.Echelon,
		ParentID: existing.ParentID,
		Active:   false,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.DeactivateUnit UpdateUnit: %v", err)
		return err
	}
	return nil
}
