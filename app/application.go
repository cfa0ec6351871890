package app

import (
	"fmt"
	"strings"

	"aiengine.app/api"
	"aiengine.app/config"
	"aiengine.app/health"
	"aiengine.app/logging"
	"aiengine.app/metrics"
	"go.uber.org/zap"
)

// Application represents the main application with all its dependencies
type Application struct {
	config        *config.Config
	logger        *logging.Logger
	healthChecker *health.Checker
	server        *api.Server
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeLogging(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	return nil
}

func (app *Application) initializeLogging() error {
	logger, err := logging.New(&logging.Config{
		Level:  app.config.Logging.NormalizedLevel(),
		Format: logging.Format(strings.ToLower(app.config.Logging.Format)),
		Output: "stdout",
	})
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	app.logger = logger
	app.logger.Info("Configuration loaded successfully",
		zap.String("log_level", app.config.Logging.NormalizedLevel()),
		zap.String("log_format", app.config.Logging.Format),
	)
	return nil
}

func (app *Application) initializeServices() error {
	app.logger.Info("Initializing services...")

	healthChecker := health.NewChecker(health.CheckerOptions{
		ServiceName:  app.config.App.Name,
		Version:      app.config.App.Version,
		ModelVersion: app.config.VolumeScan.ModelVersion,
		Logger:       app.logger.Named("health"),
	})

	// Placeholder until real model loading exists; expanded when the
	// inference runtime is integrated.
	healthChecker.RegisterCheck("model_loaded", func() bool { return true })

	server, err := api.NewServer(api.ServerOptions{
		Config:        app.config,
		Logger:        app.logger.Named("api"),
		HealthService: healthChecker,
		ProbeMetrics:  metrics.NewProbeMetrics(),
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	app.healthChecker = healthChecker
	app.server = server

	app.logger.Info("Services initialized successfully")
	return nil
}

// Start starts the application
func (app *Application) Start() error {
	app.logger.Info("Starting TransLogistics AI Engine",
		zap.String("service", app.config.App.Name),
		zap.String("version", app.config.App.Version),
		zap.String("model_version", app.config.VolumeScan.ModelVersion),
	)

	app.logger.Info("AI Engine ready to accept requests",
		zap.String("address", app.config.Server.Address()),
	)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("Shutting down AI Engine")

	// Flush is best-effort; stdout sync errors are not actionable here.
	_ = app.logger.Sync()
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
