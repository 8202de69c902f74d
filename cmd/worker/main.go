package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	"github.com/khoahotran/portfolio/adapters/media_storage"
	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/application/service"
	backupUC "github.com/khoahotran/portfolio/internal/application/usecase/backup"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
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
	appLogger.Info("Starting Portfolio Worker...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(cfg, appLogger, "portfolio-worker")
	if err != nil {
		appLogger.Fatal("Cannot init tracing", err)
	}
	defer shutdownTracing(context.Background())

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Backups
	if cfg.Backup.Interval > 0 {
		uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader for backups", err)
		}
		go runBackups(ctx, backupUC.NewBackupUseCase(cfg.DB.DSN, uploader, appLogger), cfg.Backup.Interval, appLogger)
	}

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Warn("KAFKA_BROKERS is not set, snapshot consumer disabled")
		<-ctx.Done()
		return
	}
	if cfg.Redis.Addr == "" {
		appLogger.Warn("REDIS_ADDR is not set, snapshots are rebuilt but not cached")
	}

	// Snapshot cache
	var snapshotCache service.SnapshotCache = service.NopCache{}
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()
		snapshotCache = persistence.NewRedisSnapshotCache(redisClient, cfg.Cache.TTL, appLogger)
	}

	snapshotUseCase := portfolioUC.NewSnapshotUseCase(
		persistence.NewPostgresAboutMeRepo(dbPool, appLogger),
		persistence.NewPostgresContactRepo(dbPool, appLogger),
		persistence.NewPostgresSkillRepo(dbPool, appLogger),
		persistence.NewPostgresProjectRepo(dbPool, appLogger),
		snapshotCache,
		appLogger,
	)

	// Kafka Consumer
	consumer := event.NewContentEventConsumer(cfg, event.SnapshotConsumerGroup,
		func(ctx context.Context, evt portfolio.ContentEvent) error {
			appLogger.Info("Rebuilding portfolio snapshot",
				zap.String("event_id", evt.EventID),
				zap.String("resource", string(evt.Resource)),
				zap.String("action", string(evt.Action)),
				zap.Int64("resource_id", evt.ResourceID),
			)
			_, err := snapshotUseCase.Rebuild(ctx)
			return err
		}, appLogger)
	defer consumer.Close()

	if err := consumer.Run(ctx); err != nil {
		appLogger.Error("Consumer stopped", err)
	}
	appLogger.Info("Worker stopped")
}

func runBackups(ctx context.Context, uc *backupUC.BackupUseCase, interval time.Duration, log logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("Backup schedule started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := uc.Execute(ctx); err != nil {
				log.Error("Scheduled backup failed", err)
			}
		}
	}
}
