package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/config"
	"github.com/antonerne/dgsc-reader/internal/db"
	"github.com/antonerne/dgsc-reader/internal/ingest"
	"github.com/antonerne/dgsc-reader/internal/repos"
	"github.com/antonerne/dgsc-reader/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := cfg.Logger
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	client, err := db.Open(ctx, cfg.MongoURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer func() { _ = db.Close(ctx, client) }()
	logger.Info("database connection healthy")

	database := client.Database(cfg.Database)
	teamsRepo := repos.NewTeamsRepo(database, logger)
	empsRepo := repos.NewEmployeesRepo(database, logger)
	worksRepo := repos.NewWorksRepo(database, logger)

	now := time.Now().UTC()

	loader := &services.LoadService{
		Teams:     teamsRepo,
		Employees: empsRepo,
		Works:     worksRepo,
		Logger:    logger,
	}
	team, site, err := loader.LoadSite(ctx, cfg.TeamCode, cfg.SiteCode, now)
	if err != nil {
		logger.Fatal("site load failed", zap.Error(err))
	}
	if err := loader.AttachWork(ctx, site); err != nil {
		logger.Fatal("work load failed", zap.Error(err))
	}

	runner := ingest.NewRunner(team, site, now, logger)
	runner.LaborCompany = cfg.LaborCompany
	runner.LaborDivision = cfg.LaborDivision

	if err := runner.Run(cfg.DataDir); err != nil {
		logger.Fatal("ingest failed", zap.Error(err))
	}

	persister := &services.PersistService{
		Teams:     teamsRepo,
		Employees: empsRepo,
		Works:     worksRepo,
		Logger:    logger,
	}
	if err := persister.SaveSite(ctx, team, site); err != nil {
		logger.Fatal("persist failed", zap.Error(err))
	}

	logger.Info("completed")
}
