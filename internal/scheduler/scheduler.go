package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"log-analytics-backend/config"
	"log-analytics-backend/internal/store"
)

// NewRetentionSweeper schedules the periodic eviction of expired analyses
// from the in-memory store.
func NewRetentionSweeper(lc fx.Lifecycle, cfg *config.Config, analysisStore store.AnalysisStore) *cron.Cron {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))

	schedule := cfg.Store.SweepSchedule
	retention := cfg.Store.Retention
	_, err := c.AddFunc(schedule, func() {
		cutoff := time.Now().UTC().Add(-retention)
		removed := analysisStore.Sweep(context.Background(), cutoff)
		if removed > 0 {
			log.Info().Int("removed", removed).Time("cutoff", cutoff).Msg("Swept expired analyses")
		}
	})

	if err != nil {
		log.Fatal().Err(err).Str("schedule", schedule).Msg("Failed to add retention sweep job")
		return nil
	}
	log.Info().Str("schedule", schedule).Dur("retention", retention).Msg("Scheduled analysis retention sweep")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c
}
