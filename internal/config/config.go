package config

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config centralises all environment and runtime configuration.
type Config struct {
	Logger *zap.Logger

	MongoURL string
	Database string

	DataDir  string
	TeamCode string
	SiteCode string

	// Contract company stamped on site labor codes; the labor code
	// export has no company column of its own.
	LaborCompany  string
	LaborDivision string
}

// Load builds the Config struct, validating critical env vars.
func Load() *Config {
	logger := newLogger(os.Getenv("LOG_LEVEL"))
	logger.Info("loading environment configuration")

	cfg := &Config{
		Logger:        logger,
		MongoURL:      getEnvOrFail(logger, "MONGO_URL"),
		Database:      getEnvOrDefault("MONGO_DATABASE", "scheduler"),
		DataDir:       getEnvOrDefault("DATA_DIR", "data/exports"),
		TeamCode:      getEnvOrDefault("TEAM_CODE", "dfs"),
		SiteCode:      getEnvOrDefault("SITE_CODE", "dgsc"),
		LaborCompany:  getEnvOrDefault("LABOR_COMPANY", "raytheon"),
		LaborDivision: getEnvOrDefault("LABOR_DIVISION", "RTSC"),
	}

	logger.Info("configuration loaded",
		zap.String("team", cfg.TeamCode),
		zap.String("site", cfg.SiteCode),
		zap.String("datadir", cfg.DataDir))
	return cfg
}

func newLogger(level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(strings.TrimSpace(level)); err == nil && level != "" {
		lvl = parsed
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func getEnvOrFail(logger *zap.Logger, key string) string {
	val := os.Getenv(key)
	if val == "" {
		logger.Fatal("required environment variable not set", zap.String("key", key))
	}
	return val
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
