// Command captured is the note-capture daemon: it owns the local database,
// seeds the AI configuration on first run, and applies retention cleanup on
// a daily schedule.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/flashnote/core/internal/ai"
	"github.com/flashnote/core/internal/capture"
	"github.com/flashnote/core/internal/config"
	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/internal/service"
	"github.com/flashnote/core/internal/store"
)

const cleanupInterval = 24 * time.Hour

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type databaseConfig struct {
	DSN string `env:"FLASHNOTE_DB" envDefault:"flashnote.db"`
}

func main() {
	printBuildInfo()

	log := logger.New("captured")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var dbCfg databaseConfig
	if err := env.Parse(&dbCfg); err != nil {
		log.Fatal().Err(err).Msg("error reading database configuration")
	}

	db, err := store.NewConnectSQLite(ctx, dbCfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	seedAIConfig(ctx, storages, log)

	aiCfg, err := config.LoadAIConfig(ctx, storages.Settings)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading AI configuration")
	}

	gateway, err := ai.New(aiCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating AI gateway")
	}
	if !gateway.ValidateConfig(ctx) {
		log.Warn().Str("provider", aiCfg.Provider).Msg("AI credential validation failed, generation features may not work")
	}

	capturer := capture.NewCapturer(capture.NewSystemInspector(), log)
	services := service.NewServices(storages, gateway, capturer, log)

	log.Info().Str("db", dbCfg.DSN).Msg("captured is running")

	runRetentionCleanup(ctx, storages.Notes, log)
	runDigestSchedule(ctx, services.Digests, log)

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

// seedAIConfig persists environment-provided AI settings on first run only.
// Once any provider value is stored, the environment is no longer consulted
// at startup.
func seedAIConfig(ctx context.Context, storages store.Storages, log *logger.Logger) {
	stored, err := storages.Settings.GetSetting(ctx, config.SettingAIProvider)
	if err != nil {
		log.Warn().Err(err).Msg("error reading stored AI provider")
		return
	}
	if stored != nil {
		return
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Debug().Err(err).Msg("no usable AI configuration in environment, skipping seed")
		return
	}

	pairs := map[string]string{
		config.SettingAIProvider: cfg.Provider,
		config.SettingAIAPIKey:   cfg.APIKey,
		config.SettingAIModel:    cfg.Model,
	}
	for key, value := range pairs {
		if value == "" {
			continue
		}
		if err = storages.Settings.SetSetting(ctx, key, value); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("error seeding AI setting")
		}
	}

	log.Info().Str("provider", cfg.Provider).Msg("seeded AI configuration from environment")
}

// runRetentionCleanup removes expired closed notes once at startup, then
// every cleanup interval until shutdown.
func runRetentionCleanup(ctx context.Context, notes store.NoteRepository, log *logger.Logger) {
	cleanup := func() {
		result := notes.CleanupCompletedNotes(ctx)
		if !result.Success {
			log.Warn().Str("error", result.Error).Msg("retention cleanup failed")
			return
		}
		if result.DeletedCount > 0 {
			log.Info().Int64("deleted", result.DeletedCount).Msg("retention cleanup removed expired notes")
		}
	}

	cleanup()

	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cleanup()
			}
		}
	}()
}

// runDigestSchedule saves the daily digest to history shortly before each
// local midnight, so the summary covers the whole day.
func runDigestSchedule(ctx context.Context, digests service.DigestService, log *logger.Logger) {
	go func() {
		for {
			timer := time.NewTimer(untilDigestTime(time.Now()))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				if _, err := digests.SaveToday(ctx); err != nil {
					log.Warn().Err(err).Msg("scheduled digest save failed")
				}
			}
		}
	}()
}

// untilDigestTime returns the duration from now until the next 23:55 local.
func untilDigestTime(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 23, 55, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
