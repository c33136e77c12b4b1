package engine_test

import (
	"context"
	"testing"

	"missionmind/internal/engine"
	"missionmind/internal/model"
)

func TestRouterRecommend(t *testing.T) {
	ctx := context.Background()

	hierarchy := stubHierarchy{units: map[string]model.OrgUnit{
		"OPS_G3":   {ID: "OPS_G3", Name: "G-3/5/7 Operations", Echelon: "HQDA"},
		"INTEL_G2": {ID: "INTEL_G2", Name: "G-2 Intelligence", Echelon: "HQDA"},
		"JA":       {ID: "JA", Name: "Judge Advocate", Echelon: "HQDA"},
		"BDE_1":    {ID: "BDE_1", Name: "1st Brigade", Echelon: "BDE"},
	}}

	tests := []struct {
		name          string
		task          model.Task
		wantOrg       string
		wantRationale string
	}{
		{
			name: "keyword in tags routes to mapped org",
			task: model.Task{
				Title:     "Quarterly report",
				Tags:      []string{"intel"},
				OrgUnitID: "BDE_1",
			},
			wantOrg:       "INTEL_G2",
			wantRationale: "Matched keyword 'intel' with org G-2 Intelligence",
		},
		{
			name: "earlier route wins when several keywords match",
			task: model.Task{
				Title:       "Readiness briefing",
				Description: "Covers intel posture as well",
				OrgUnitID:   "BDE_1",
			},
			wantOrg:       "OPS_G3",
			wantRationale: "Matched keyword 'readiness' with org G-3/5/7 Operations",
		},
		{
			name: "keyword with unknown unit falls through to next match",
			task: model.Task{
				Title:     "Personnel and legal review",
				OrgUnitID: "BDE_1",
			},
			wantOrg:       "JA",
			wantRationale: "Matched keyword 'legal' with org Judge Advocate",
		},
		{
			name: "no keyword keeps the originating org",
			task: model.Task{
				Title:     "Change of command ceremony",
				OrgUnitID: "BDE_1",
			},
			wantOrg:       "BDE_1",
			wantRationale: "Defaulted to originating org",
		},
		{
			name: "unknown originating org is kept as provided",
			task: model.Task{
				Title:     "Change of command ceremony",
				OrgUnitID: "GHOST",
			},
			wantOrg:       "GHOST",
			wantRationale: "No org metadata available; used provided org_unit_id",
		},
		{
			name: "keyword matching is case insensitive",
			task: model.Task{
				Title:     "TRAINING holiday schedule",
				OrgUnitID: "BDE_1",
			},
			wantOrg:       "OPS_G3",
			wantRationale: "Matched keyword 'training' with org G-3/5/7 Operations",
		},
	}

	router := engine.NewRouter(nil, hierarchy)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOrg, gotRationale := router.Recommend(ctx, tt.task)
			if gotOrg != tt.wantOrg {
				t.Errorf("Recommend() org = %q, want %q", gotOrg, tt.wantOrg)
			}
			if gotRationale != tt.wantRationale {
				t.Errorf("Recommend() rationale = %q, want %q", gotRationale, tt.wantRationale)
			}
		})
	}
}

func TestAssignmentGeneratorGenerate(t *testing.T) {
	ctx := context.Background()

	hierarchy := stubHierarchy{units: map[string]model.OrgUnit{
		"LOG_G4": {ID: "LOG_G4", Name: "G-4 Logistics"},
	}}
	gen := engine.NewAssignmentGenerator(engine.NewRouter(nil, hierarchy))

	task := model.Task{
		ID:        "T-26-000042",
		Title:     "Logistics posture review",
		OrgUnitID: "BDE_1",
	}
	got := gen.Generate(ctx, task)

	if got.TaskID != task.ID {
		t.Errorf("Generate() task id = %q, want %q", got.TaskID, task.ID)
	}
	if got.AssigneeType != model.AssigneeTypeOrg {
		t.Errorf("Generate() assignee type = %q, want %q", got.AssigneeType, model.AssigneeTypeOrg)
	}
	if got.AssigneeID != "LOG_G4" {
		t.Errorf("Generate() assignee = %q, want %q", got.AssigneeID, "LOG_G4")
	}
	if got.Role != model.AssignmentRoleOwner {
		t.Errorf("Generate() role = %q, want %q", got.Role, model.AssignmentRoleOwner)
	}
	if got.State != model.AssignmentStatePending {
		t.Errorf("Generate() state = %q, want %q", got.State, model.AssignmentStatePending)
	}
	if got.Rationale == "" {
		t.Error("Generate() rationale is empty")
	}
}
