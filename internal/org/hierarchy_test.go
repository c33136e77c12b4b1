package org_test

import (
	"context"
	"testing"

	"missionmind/internal/model"
	"missionmind/internal/org"
	"missionmind/internal/org/repository"
)

// stubRepo implements only the read paths the adapter touches.
type stubRepo struct {
	repository.Repository
	units map[string]model.OrgUnit
	auths map[string][]model.Authority
}

func (s stubRepo) GetOneUnit(_ context.Context, opt repository.GetOneUnitOptions) (model.OrgUnit, error) {
	return s.units[opt.ID], nil
}

func (s stubRepo) ListAuthorities(_ context.Context, opt repository.ListAuthoritiesOptions) ([]model.Authority, error) {
	return s.auths[opt.OrgUnitID], nil
}

func TestHierarchyGetUnit(t *testing.T) {
	h := org.NewHierarchy(stubRepo{units: map[string]model.OrgUnit{
		"BDE": {ID: "BDE", Name: "Brigade", ParentID: "DIV", Active: false},
	}})

	unit, ok, err := h.GetUnit(context.Background(), "BDE")
	if err != nil || !ok {
		t.Fatalf("GetUnit() = %v, %v, %v; want found", unit, ok, err)
	}
	if unit.Name != "Brigade" {
		t.Errorf("GetUnit() name = %q, want Brigade", unit.Name)
	}

	if _, ok, err := h.GetUnit(context.Background(), "GHOST"); err != nil || ok {
		t.Errorf("GetUnit() unknown = %v, %v; want not found without error", ok, err)
	}
}

func TestHierarchyGetParent(t *testing.T) {
	h := org.NewHierarchy(stubRepo{units: map[string]model.OrgUnit{
		"BDE": {ID: "BDE", ParentID: "DIV"},
		"DIV": {ID: "DIV"},
	}})

	parent, ok, err := h.GetParent(context.Background(), "BDE")
	if err != nil || !ok || parent != "DIV" {
		t.Errorf("GetParent(BDE) = %q, %v, %v; want DIV", parent, ok, err)
	}

	parent, ok, err = h.GetParent(context.Background(), "DIV")
	if err != nil || !ok || parent != "" {
		t.Errorf("GetParent(DIV) = %q, %v, %v; want empty for root", parent, ok, err)
	}

	if _, ok, _ := h.GetParent(context.Background(), "GHOST"); ok {
		t.Error("GetParent(GHOST) reported found")
	}
}

func TestHierarchyListByOrgUnit(t *testing.T) {
	h := org.NewHierarchy(stubRepo{auths: map[string][]model.Authority{
		"BDE": {{ID: "A1", Title: "Brigade XO", OrgUnitID: "BDE"}},
	}})

	got, err := h.ListByOrgUnit(context.Background(), "BDE")
	if err != nil || len(got) != 1 || got[0].ID != "A1" {
		t.Errorf("ListByOrgUnit() = %+v, %v; want A1", got, err)
	}
}
