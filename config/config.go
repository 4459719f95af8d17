package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	Store    StoreConfig
}

type ServerConfig struct {
	Port string
}

type AnalysisConfig struct {
	MaxInputBytes   int64   // Hard ceiling on the raw input handed to the engine
	SampleSize      int     // Lines sampled during format detection
	DetectThreshold float64 // Minimum match ratio for a positive detection
	TopK            int     // Frequency table truncation size
}

type StoreConfig struct {
	Retention     time.Duration // How long finished analyses stay available
	SweepSchedule string        // Cron expression for the retention sweep
}

func NewConfig() (*Config, error) {
	// Configure Viper to read .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Enable automatic environment variable loading
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ANALYSIS_MAX_INPUT_BYTES", 50*1024*1024) // 50MB
	viper.SetDefault("ANALYSIS_SAMPLE_SIZE", 20)
	viper.SetDefault("ANALYSIS_DETECT_THRESHOLD", 0.5)
	viper.SetDefault("ANALYSIS_TOP_K", 10)
	viper.SetDefault("STORE_RETENTION", "1h")
	viper.SetDefault("STORE_SWEEP_SCHEDULE", "0 */10 * * * *") // Every 10 minutes

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")

	// --- Analysis engine ---
	config.Analysis.MaxInputBytes = viper.GetInt64("ANALYSIS_MAX_INPUT_BYTES")
	config.Analysis.SampleSize = viper.GetInt("ANALYSIS_SAMPLE_SIZE")
	config.Analysis.DetectThreshold = viper.GetFloat64("ANALYSIS_DETECT_THRESHOLD")
	config.Analysis.TopK = viper.GetInt("ANALYSIS_TOP_K")

	// --- Result store ---
	config.Store.Retention = viper.GetDuration("STORE_RETENTION")
	config.Store.SweepSchedule = viper.GetString("STORE_SWEEP_SCHEDULE")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
