package engine_test

import (
	"context"
	"errors"

	"missionmind/internal/model"
)

type stubHierarchy struct {
	units map[string]model.OrgUnit
	err   error
}

func (s stubHierarchy) GetUnit(_ context.Context, id string) (model.OrgUnit, bool, error) {
	if s.err != nil {
		return model.OrgUnit{}, false, s.err
	}
	u, ok := s.units[id]
	return u, ok, nil
}

func (s stubHierarchy) GetParent(_ context.Context, id string) (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	u, ok := s.units[id]
	if !ok {
		return "", false, nil
	}
	return u.ParentID, true, nil
}

type stubAuthorities struct {
	byOrg  map[string][]model.Authority
	failOn map[string]bool
}

func (s stubAuthorities) ListByOrgUnit(_ context.Context, orgUnitID string) ([]model.Authority, error) {
	if s.failOn[orgUnitID] {
		return nil, errors.New("lookup failed")
	}
	return s.byOrg[orgUnitID], nil
}
