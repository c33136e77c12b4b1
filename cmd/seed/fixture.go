package main

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"missionmind/internal/model"
	"missionmind/pkg/datemath"
)

const fixtureDateFormat = "2006-01-02"

// relativeDates resolves phrases like "in 10 days" so fixtures do not go
// stale. UTC always loads, so NewParser cannot fail here.
var relativeDates, _ = datemath.NewParser("UTC")

// Fixture is the YAML shape the seed tool consumes: org units and authorities
// to install, plus optional sample tasks run through the full create pipeline.
type Fixture struct {
	OrgUnits    []unitFixture      `yaml:"org_units"`
	Authorities []authorityFixture `yaml:"authorities"`
	Tasks       []taskFixture      `yaml:"tasks"`
}

type unitFixture struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Echelon  string `yaml:"echelon"`
	ParentID string `yaml:"parent_id"`
}

type authorityFixture struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	OrgUnitID string   `yaml:"org_unit_id"`
	Grade     string   `yaml:"grade"`
	Scope     []string `yaml:"scope"`
}

type taskFixture struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	Classification string   `yaml:"classification"`
	SuspenseDate   string   `yaml:"suspense_date"`
	Originator     string   `yaml:"originator"`
	OrgUnitID      string   `yaml:"org_unit_id"`
	RecordSeriesID string   `yaml:"record_series_id"`
	Tags           []string `yaml:"tags"`
}

// parseFixture decodes and validates a fixture document.
func parseFixture(data []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return Fixture{}, err
	}
	return f, nil
}

func (f Fixture) validate() error {
	units := make(map[string]bool, len(f.OrgUnits))
	for i, u := range f.OrgUnits {
		if u.ID == "" || u.Name == "" {
			return fmt.Errorf("org_units[%d]: id and name are required", i)
		}
		if units[u.ID] {
			return fmt.Errorf("org_units[%d]: duplicate id %s", i, u.ID)
		}
		units[u.ID] = true
	}

	for i, a := range f.Authorities {
		if a.Title == "" || a.OrgUnitID == "" {
			return fmt.Errorf("authorities[%d]: title and org_unit_id are required", i)
		}
		if len(units) > 0 && !units[a.OrgUnitID] {
			return fmt.Errorf("authorities[%d]: unknown org unit %s", i, a.OrgUnitID)
		}
	}

	for i, t := range f.Tasks {
		if t.Title == "" || t.Originator == "" || t.OrgUnitID == "" {
			return fmt.Errorf("tasks[%d]: title, originator, and org_unit_id are required", i)
		}
		if _, err := t.suspense(); err != nil {
			return fmt.Errorf("tasks[%d]: %w", i, err)
		}
		switch t.Classification {
		case "", string(model.ClassificationUnclassified),
			string(model.ClassificationConfidential),
			string(model.ClassificationSecret),
			string(model.ClassificationTopSecret):
		default:
			return fmt.Errorf("tasks[%d]: unknown classification %s", i, t.Classification)
		}
	}

	return nil
}

// suspense parses the suspense date, which is always stored at UTC midnight.
// Both absolute dates (2026-09-10) and relative phrases ("in 10 days",
// "next friday") are accepted.
func (t taskFixture) suspense() (time.Time, error) {
	if t.SuspenseDate == "" {
		return time.Time{}, fmt.Errorf("suspense_date is required")
	}
	if parsed, err := time.ParseInLocation(fixtureDateFormat, t.SuspenseDate, time.UTC); err == nil {
		return parsed, nil
	}
	parsed, err := relativeDates.Parse(t.SuspenseDate, time.Now().UTC())
	if err != nil {
		return time.Time{}, fmt.Errorf("suspense_date %q: want %s or a relative phrase like %q",
			t.SuspenseDate, fixtureDateFormat, "in 10 days")
	}
	return parsed, nil
}

// classification returns the fixture classification, defaulting to U.
func (t taskFixture) classification() model.Classification {
	if t.Classification == "" {
		return model.ClassificationUnclassified
	}
	return model.Classification(t.Classification)
}
