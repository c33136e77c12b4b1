package repository

import (
	"context"

	"missionmind/internal/model"
)

// Repository is the composed interface for the org domain data store.
type Repository interface {
	UnitRepository
	AuthorityRepository
}

// UnitRepository defines all data access methods for the OrgUnit entity.
type UnitRepository interface {
	CreateUnit(ctx context.Context, opt CreateUnitOptions) (model.OrgUnit, error)
	GetOneUnit(ctx context.Context, opt GetOneUnitOptions) (model.OrgUnit, error)
	ListUnits(ctx context.Context, opt ListUnitsOptions) ([]model.OrgUnit, int, error)
	UpdateUnit(ctx context.Context, opt UpdateUnitOptions) (model.OrgUnit, error)
}

// AuthorityRepository defines all data access methods for the Authority entity.
type AuthorityRepository interface {
	CreateAuthority(ctx context.Context, opt CreateAuthorityOptions) (model.Authority, error)
	ListAuthorities(ctx context.Context, opt ListAuthoritiesOptions) ([]model.Authority, error)
}
