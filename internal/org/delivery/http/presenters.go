package http

import (
	"missionmind/internal/model"
	"missionmind/internal/org"
)

// --- Request DTOs ---

type createUnitReq struct {
	ID       string `json:"id"        binding:"required,min=1,max=64"`
	Name     string `json:"name"      binding:"required,min=1,max=255"`
	Echelon  string `json:"echelon"   binding:"max=32"`
	ParentID string `json:"parent_id" binding:"max=64"`
}

func (r createUnitReq) validate() error { return nil }

func (r createUnitReq) toInput() org.CreateUnitInput {
	return org.CreateUnitInput{
		ID:       r.ID,
		Name:     r.Name,
		Echelon:  r.Echelon,
		ParentID: r.ParentID,
	}
}

// ---

type listUnitsReq struct {
	Echelon    string `form:"echelon"`
	ParentID   string `form:"parent_id"`
	ActiveOnly bool   `form:"active_only"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (r listUnitsReq) validate() error { return nil }

func (r listUnitsReq) toInput() org.ListUnitsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return org.ListUnitsInput{
		Echelon:    r.Echelon,
		ParentID:   r.ParentID,
		ActiveOnly: r.ActiveOnly,
		Limit:      limit,
		Offset:     r.Offset,
	}
}

// ---

type updateUnitReq struct {
	ID       string  `json:"-"` // populated from URI param
	Name     string  `json:"name"      binding:"omitempty,min=1,max=255"`
	Echelon  string  `json:"echelon"   binding:"omitempty,max=32"`
	ParentID *string `json:"parent_id" binding:"omitempty,max=64"`
}

func (r updateUnitReq) validate() error { return nil }

func (r updateUnitReq) toInput() org.UpdateUnitInput {
	return org.UpdateUnitInput{
		ID:       r.ID,
		Name:     r.Name,
		Echelon:  r.Echelon,
		ParentID: r.ParentID,
	}
}

// ---

type createAuthorityReq struct {
	OrgUnitID string   `json:"-"` // populated from URI param
	ID        string   `json:"id"    binding:"max=64"`
	Title     string   `json:"title" binding:"required,min=1,max=255"`
	Grade     string   `json:"grade" binding:"max=32"`
	Scope     []string `json:"scope"`
}

func (r createAuthorityReq) validate() error { return nil }

func (r createAuthorityReq) toInput() org.CreateAuthorityInput {
	return org.CreateAuthorityInput{
		ID:        r.ID,
		Title:     r.Title,
		OrgUnitID: r.OrgUnitID,
		Grade:     r.Grade,
		Scope:     r.Scope,
	}
}

// --- Response DTOs ---

type unitResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Echelon  string `json:"echelon"`
	ParentID string `json:"parent_id"`
	Active   bool   `json:"active"`
}

func newUnitResp(unit model.OrgUnit) unitResp {
	return unitResp{
		ID:       unit.ID,
		Name:     unit.Name,
		Echelon:  unit.Echelon,
		ParentID: unit.ParentID,
		Active:   unit.Active,
	}
}

type authorityResp struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	OrgUnitID string   `json:"org_unit_id"`
	Grade     string   `json:"grade"`
	Scope     []string `json:"scope"`
}

func newAuthorityResp(a model.Authority) authorityResp {
	return authorityResp{
		ID:        a.ID,
		Title:     a.Title,
		OrgUnitID: a.OrgUnitID,
		Grade:     a.Grade,
		Scope:     a.Scope,
	}
}

type createUnitResp struct {
	Unit unitResp `json:"unit"`
}

func (h *handler) newCreateUnitResp(out org.CreateUnitOutput) createUnitResp {
	return createUnitResp{Unit: newUnitResp(out.Unit)}
}

type listUnitsResp struct {
	Units  []unitResp `json:"units"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListUnitsResp(out org.ListUnitsOutput) listUnitsResp {
	units := make([]unitResp, len(out.Units))
	for i, unit := range out.Units {
		units[i] = newUnitResp(unit)
	}
	return listUnitsResp{
		Units:  units,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailUnitResp struct {
	Unit unitResp `json:"unit"`
}

func (h *handler) newDetailUnitResp(out org.DetailUnitOutput) detailUnitResp {
	return detailUnitResp{Unit: newUnitResp(out.Unit)}
}

type updateUnitResp struct {
	Unit unitResp `json:"unit"`
}

func (h *handler) newUpdateUnitResp(out org.UpdateUnitOutput) updateUnitResp {
	return updateUnitResp{Unit: newUnitResp(out.Unit)}
}

type createAuthorityResp struct {
	Authority authorityResp `json:"authority"`
}

func (h *handler) newCreateAuthorityResp(out org.CreateAuthorityOutput) createAuthorityResp {
	return createAuthorityResp{Authority: newAuthorityResp(out.Authority)}
}

type listAuthoritiesResp struct {
	Authorities []authorityResp `json:"authorities"`
}

func (h *handler) newListAuthoritiesResp(out org.ListAuthoritiesOutput) listAuthoritiesResp {
	authorities := make([]authorityResp, len(out.Authorities))
	for i, a := range out.Authorities {
		authorities[i] = newAuthorityResp(a)
	}
	return listAuthoritiesResp{Authorities: authorities}
}
