package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/auth"
	"github.com/briggittemora/Gestion-de-tareas/internal/config"
	"github.com/briggittemora/Gestion-de-tareas/internal/delivery/httpd"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
	"github.com/briggittemora/Gestion-de-tareas/internal/service"
	"github.com/briggittemora/Gestion-de-tareas/internal/service/integration"
	"github.com/briggittemora/Gestion-de-tareas/internal/storage"
	"github.com/briggittemora/Gestion-de-tareas/internal/validation"
)

type App struct {
	server    *http.Server
	logger    zerolog.Logger
	config    *config.Config
	db        *sql.DB
	publisher integration.SubmissionPublisher
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	// Repositories
	userRepo := repository.NewUserRepository(db, log)
	taskRepo := repository.NewTaskRepository(db, log)
	assignmentRepo := repository.NewAssignmentRepository(db, log)
	settingsRepo := repository.NewSettingsRepository(db, log)
	dashboardRepo := repository.NewDashboardRepository(db, log)

	files, err := storage.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}

	publisher := newPublisher(cfg.RabbitMQ, log)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer)
	validator := validation.New()

	// Services
	authService := service.NewAuthService(userRepo, settingsRepo, tokens, validator, log)
	userService := service.NewUserService(userRepo, log)
	taskService := service.NewTaskService(taskRepo, validator, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, taskRepo, validator, log)
	submissionService := service.NewSubmissionService(assignmentRepo, settingsRepo, files, publisher, log)
	settingsService := service.NewSettingsService(settingsRepo, log)
	dashboardService := service.NewDashboardService(dashboardRepo, log)

	handler := httpd.NewHandler(
		authService,
		userService,
		taskService,
		assignmentService,
		submissionService,
		settingsService,
		dashboardService,
		cfg.Server.MaxUploadSize,
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httpd.RequestLogger(log))
	router.Use(httpd.Recovery(log))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:    server,
		logger:    log,
		config:    cfg,
		db:        db,
		publisher: publisher,
	}, nil
}

// newPublisher connects to RabbitMQ when enabled. Without a broker the service
// keeps running and submissions are simply not announced.
func newPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) integration.SubmissionPublisher {
	if !cfg.Enabled {
		return integration.NewNoopPublisher()
	}

	publisher, err := integration.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create RabbitMQ client, submission events disabled")
		return integration.NewNoopPublisher()
	}
	return publisher
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting task service on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down task service...")

	if err := a.server.Shutdown(ctx); err != nil {
		return err
	}

	if err := a.publisher.Close(); err != nil {
		a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return nil
}
