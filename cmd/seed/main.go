package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"missionmind/config"
	"missionmind/internal/engine"
	"missionmind/internal/org"
	orgRepository "missionmind/internal/org/repository"
	orgRepo "missionmind/internal/org/repository/sqlite"
	"missionmind/internal/task"
	taskRepo "missionmind/internal/task/repository/sqlite"
	taskUC "missionmind/internal/task/usecase"
	"missionmind/pkg/log"
	"missionmind/pkg/sqlite"
)

// Seed tool: loads org units, authorities, and optional sample tasks from a
// YAML fixture into the configured database. Sample tasks run through the
// regular create pipeline so they arrive scored and routed.
func main() {
	fixturePath := flag.String("fixture", "./config/seed.yaml", "path to the YAML fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	data, err := os.ReadFile(*fixturePath)
	if err != nil {
		logger.Error(ctx, "Failed to read fixture: ", err)
		os.Exit(1)
	}

	fixture, err := parseFixture(data)
	if err != nil {
		logger.Error(ctx, "Invalid fixture: ", err)
		os.Exit(1)
	}

	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		logger.Error(ctx, "Failed to ensure schema: ", err)
		os.Exit(1)
	}

	if err := apply(ctx, logger, db, fixture); err != nil {
		logger.Error(ctx, "Seeding failed: ", err)
		os.Exit(1)
	}

	logger.Infof(ctx, "Seeded %d org units, %d authorities, %d tasks from %s",
		len(fixture.OrgUnits), len(fixture.Authorities), len(fixture.Tasks), *fixturePath)
}

// apply installs the fixture. Org units and authorities go straight to the
// repository; tasks go through the use case so scoring and routing run.
func apply(ctx context.Context, l log.Logger, db *sql.DB, f Fixture) error {
	orgStore := orgRepo.New(db, l)

	for _, u := range f.OrgUnits {
		_, err := orgStore.CreateUnit(ctx, orgRepository.CreateUnitOptions{
			ID:       u.ID,
			Name:     u.Name,
			Echelon:  u.Echelon,
			ParentID: u.ParentID,
			Active:   true,
		})
		if err != nil {
			return fmt.Errorf("seed org unit %s: %w", u.ID, err)
		}
	}

	for _, a := range f.Authorities {
		_, err := orgStore.CreateAuthority(ctx, orgRepository.CreateAuthorityOptions{
			ID:        a.ID,
			Title:     a.Title,
			OrgUnitID: a.OrgUnitID,
			Grade:     a.Grade,
			Scope:     a.Scope,
		})
		if err != nil {
			return fmt.Errorf("seed authority %s: %w", a.Title, err)
		}
	}

	if len(f.Tasks) == 0 {
		return nil
	}

	hierarchy := org.NewHierarchy(orgStore)
	eng := engine.New(engine.Tables{}, hierarchy, hierarchy)
	uc := taskUC.New(taskRepo.New(db, l), eng, l)

	for _, t := range f.Tasks {
		suspense, err := t.suspense()
		if err != nil {
			return fmt.Errorf("seed task %q: %w", t.Title, err)
		}
		_, err = uc.Create(ctx, task.CreateTaskInput{
			ID:             t.ID,
			Title:          t.Title,
			Description:    t.Description,
			Classification: t.classification(),
			SuspenseDate:   suspense,
			Originator:     t.Originator,
			OrgUnitID:      t.OrgUnitID,
			RecordSeriesID: t.RecordSeriesID,
			Tags:           t.Tags,
		})
		if err != nil {
			return fmt.Errorf("seed task %q: %w", t.Title, err)
		}
	}

	return nil
}
