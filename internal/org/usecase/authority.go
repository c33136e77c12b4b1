package usecase

import (
	"context"

	"missionmind/internal/org"
	repo "missionmind/internal/org/repository"
)

// CreateAuthority registers an approving authority under an existing org unit.
func (uc *implUseCase) CreateAuthority(ctx context.Context, input org.CreateAuthorityInput) (org.CreateAuthorityOutput, error) {
	unit, err := uc.repo.GetOneUnit(ctx, repo.GetOneUnitOptions{ID: input.OrgUnitID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateAuthority GetOneUnit: %v", err)
		return org.CreateAuthorityOutput{}, err
	}
	if unit.ID == "" {
		return org.CreateAuthorityOutput{}, org.ErrUnitNotFound
	}

	authority, err := uc.repo.CreateAuthority(ctx, repo.CreateAuthorityOptions{
		ID:        input.ID,
		Title:     input.Title,
		OrgUnitID: input.OrgUnitID,
		Grade:     input.Grade,
		Scope:     input.Scope,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateAuthority CreateAuthority: %v", err)
		return org.CreateAuthorityOutput{}, err
	}

	return org.CreateAuthorityOutput{Authority: authority}, nil
}

// ListAuthorities returns the authority roster of an org unit.
func (uc *implUseCase) ListAuthorities(ctx context.Context, input org.ListAuthoritiesInput) (org.ListAuthoritiesOutput, error) {
	unit, err := uc.repo.GetOneUnit(ctx, repo.GetOneUnitOptions{ID: input.OrgUnitID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAuthorities GetOneUnit: %v", err)
		return org.ListAuthoritiesOutput{}, err
	}
	if unit.ID == "" {
		return org.ListAuthoritiesOutput{}, org.ErrUnitNotFound
	}

	authorities, err := uc.repo.ListAuthorities(ctx, repo.ListAuthoritiesOptions{OrgUnitID: input.OrgUnitID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAuthorities ListAuthorities: %v", err)
		return org.ListAuthoritiesOutput{}, err
	}

	return org.ListAuthoritiesOutput{Authorities: authorities}, nil
}
