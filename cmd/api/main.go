package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"missionmind/config"
	_ "missionmind/docs" // Swagger docs
	"missionmind/internal/engine"
	"missionmind/internal/httpserver"
	"missionmind/internal/org"
	orgRepo "missionmind/internal/org/repository/sqlite"
	"missionmind/pkg/log"
	"missionmind/pkg/sqlite"
)

// @title       MissionMind API
// @description Task prioritization, routing, and authority resolution for staff taskings.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MissionMind...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		logger.Error(ctx, "Failed to ensure schema: ", err)
		return
	}
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Engine over the org hierarchy
	hierarchy := org.NewHierarchy(orgRepo.New(db, logger))
	eng := engine.New(engineTables(cfg.Engine), hierarchy, hierarchy)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		Engine:          eng,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// engineTables converts config overrides into engine tables. Empty sections
// keep the engine defaults.
func engineTables(cfg config.EngineConfig) engine.Tables {
	tables := engine.Tables{StatusWeights: cfg.StatusWeights}
	for _, route := range cfg.KeywordRoutes {
		tables.KeywordRoutes = append(tables.KeywordRoutes, engine.KeywordRoute{
			Keyword:   route.Keyword,
			OrgUnitID: route.OrgUnitID,
		})
	}
	for _, weight := range cfg.OriginatorWeights {
		tables.OriginatorWeights = append(tables.OriginatorWeights, engine.OriginatorWeight{
			Pattern: weight.Pattern,
			Weight:  weight.Weight,
		})
	}
	return tables
}
