package org

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Org unit CRUD
	CreateUnit(ctx context.Context, input CreateUnitInput) (CreateUnitOutput, error)
	ListUnits(ctx context.Context, input ListUnitsInput) (ListUnitsOutput, error)
	DetailUnit(ctx context.Context, id string) (DetailUnitOutput, error)
	UpdateUnit(ctx context.Context, input UpdateUnitInput) (UpdateUnitOutput, error)
	DeactivateUnit(ctx context.Context, id string) error

	// Authority roster
	CreateAuthority(ctx context.Context, input CreateAuthorityInput) (CreateAuthorityOutput, error)
	ListAuthorities(ctx context.Context, input ListAuthoritiesInput) (ListAuthoritiesOutput, error)
}
