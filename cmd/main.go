package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"log-analytics-backend/config"
	_ "log-analytics-backend/docs" // This will be created by swag
	"log-analytics-backend/internal/controller"
	"log-analytics-backend/internal/detector"
	"log-analytics-backend/internal/parser"
	"log-analytics-backend/internal/pattern"
	"log-analytics-backend/internal/scheduler"
	"log-analytics-backend/internal/service"
	"log-analytics-backend/internal/store"
)

// @title           Log Analytics API
// @version         1.0
// @description     Analyzes raw text log files of heterogeneous formats (web-server access logs, syslog, router/firewall logs) and produces aggregate statistics: entry counts, error/warning tallies, top talkers and format-specific breakdowns.

// @contact.name   API Support Team
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         analyses
// @tag.description  Log analysis, filtering and export operations

func main() {
	app := fx.New(
		// Core Dependencies
		fx.Provide(
			NewConfig,
		),
		// Infrastructure Dependencies
		fx.Provide(
			NewGinEngine,
			pattern.NewLibrary,
			NewDetector,
			parser.NewLineParser,
			store.NewInMemoryAnalysisStore,
			service.NewAnalysisService,
			service.NewFilterService,
			controller.NewAnalysisController,
		),
		fx.Invoke(
			RegisterAPIRoutes,
			RegisterScheduler,
		),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second) // Timeout for startup
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	// Initiate shutdown
	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second) // Timeout for graceful shutdown
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
}

func NewConfig() (*config.Config, error) {
	return config.NewConfig()
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Add your frontend URLs
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// --- Factory Functions ---

func NewDetector(lib *pattern.Library, cfg *config.Config) *detector.Detector {
	return detector.NewDetector(lib, cfg.Analysis.SampleSize, cfg.Analysis.DetectThreshold)
}

// --- Invoker Functions ---

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	analysisController *controller.AnalysisController,
) {
	if analysisController != nil {
		controller.RegisterAnalysisRoutes(router, analysisController)
	} else {
		log.Warn().Msg("AnalysisController not provided, skipping analysis API routes.")
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, analysisStore store.AnalysisStore) {
	scheduler.NewRetentionSweeper(lc, cfg, analysisStore)
}
