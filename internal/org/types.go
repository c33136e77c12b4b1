package org

import "missionmind/internal/model"

// --- UseCase Inputs ---

type CreateUnitInput struct {
	ID       string
	Name     string
	Echelon  string
	ParentID string
}

type ListUnitsInput struct {
	Echelon    string
	ParentID   string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// UpdateUnitInput applies a partial update. Empty Name and Echelon keep the
// current values; a nil ParentID keeps the current parent while a pointer to
// "" detaches the unit to root.
type UpdateUnitInput struct {
	ID       string
	Name     string
	Echelon  string
	ParentID *string
}

type CreateAuthorityInput struct {
	ID        string
	Title     string
	OrgUnitID string
	Grade     string
	Scope     []string
}

type ListAuthoritiesInput struct {
	OrgUnitID string
}

// --- UseCase Outputs ---

type CreateUnitOutput struct {
	Unit model.OrgUnit
}

type ListUnitsOutput struct {
	Units  []model.OrgUnit
	Total  int
	Limit  int
	Offset int
}

type DetailUnitOutput struct {
	Unit model.OrgUnit
}

type UpdateUnitOutput struct {
	Unit model.OrgUnit
}

type CreateAuthorityOutput struct {
	Authority model.Authority
}

type ListAuthoritiesOutput struct {
	Authorities []model.Authority
}
