package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/adapters/media_storage"
	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/application/dispatch"
	"github.com/khoahotran/portfolio/internal/application/service"
	aboutmeUC "github.com/khoahotran/portfolio/internal/application/usecase/aboutme"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	mediaUC "github.com/khoahotran/portfolio/internal/application/usecase/media"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	projectUC "github.com/khoahotran/portfolio/internal/application/usecase/project"
	skillUC "github.com/khoahotran/portfolio/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio API Server...", zap.String("env", cfg.App.Env))

	// Tracing
	shutdownTracing, err := tracing.Init(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracing", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			appLogger.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Snapshot cache
	var snapshotCache service.SnapshotCache = service.NopCache{}
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()
		snapshotCache = persistence.NewRedisSnapshotCache(redisClient, cfg.Cache.TTL, appLogger)
	} else {
		appLogger.Warn("REDIS_ADDR is not set, portfolio snapshot cache disabled")
	}

	// Events
	var publisher service.EventPublisher = service.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Warn("KAFKA_BROKERS is not set, content events disabled")
	}

	// Media storage
	var mediaHandler *httpAdapter.MediaHandler
	if cfg.Cloudinary.CloudName != "" {
		uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader", err)
		}
		mediaHandler = httpAdapter.NewMediaHandler(mediaUC.NewUploadImageUseCase(uploader, appLogger), appLogger)
	} else {
		appLogger.Warn("Cloudinary is not configured, image uploads disabled")
	}

	// Repositories
	aboutMeRepo := persistence.NewPostgresAboutMeRepo(dbPool, appLogger)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)

	// Use Cases
	notifier := service.NewChangeNotifier(snapshotCache, publisher, appLogger)
	useCases := dispatch.UseCases{
		AboutMe: aboutmeUC.NewAboutMeUseCase(aboutMeRepo, notifier, appLogger),
		Contact: contactUC.NewContactUseCase(contactRepo, notifier, appLogger),
		Skill:   skillUC.NewSkillUseCase(skillRepo, notifier, appLogger),
		Project: projectUC.NewProjectUseCase(projectRepo, notifier, appLogger),
	}
	snapshotUseCase := portfolioUC.NewSnapshotUseCase(aboutMeRepo, contactRepo, skillRepo, projectRepo, snapshotCache, appLogger)
	rssUseCase := projectUC.NewRSSUseCase(projectRepo, projectUC.FeedInfo{
		Title:       cfg.Site.Title,
		Link:        cfg.Site.URL,
		Description: cfg.Site.Description,
		Author:      cfg.Site.Author,
	}, appLogger)

	// Dispatcher
	dispatcher := dispatch.NewDispatcher(dispatch.NewValidator(), appLogger)
	dispatch.RegisterPortfolio(dispatcher, useCases)
	appLogger.Info("Procedures registered", zap.Strings("procedures", dispatcher.Procedures()))

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		RPC:         httpAdapter.NewRPCHandler(dispatcher, appLogger),
		Portfolio:   httpAdapter.NewPortfolioHandler(snapshotUseCase, appLogger),
		RSS:         httpAdapter.NewRSSHandler(rssUseCase, appLogger),
		Media:       mediaHandler,
		CORSOrigins: cfg.App.CORSOrigins,
		Logger:      appLogger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
