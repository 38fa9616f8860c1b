package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"apjatelpmo/config"
	"apjatelpmo/internal/cache"
	"apjatelpmo/internal/db"
	"apjatelpmo/internal/handler"
	"apjatelpmo/internal/httpserver"
	"apjatelpmo/internal/repository"
	"apjatelpmo/internal/service"
	"apjatelpmo/internal/sheet"
	"apjatelpmo/pkg/logger"
	"apjatelpmo/pkg/mq"
	redisclient "apjatelpmo/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init Redis
	rdb := redisclient.NewClient(cfg.Redis)
	defer rdb.Close()

	// Init RabbitMQ publisher
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("failed to init publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Sheet backend + cache
	sheets := sheet.NewClient(cfg.Sheet.URL, cfg.Sheet.Timeout, log)
	store := cache.NewStore(rdb, log)
	store.WarmFromRedis(context.Background())

	// Repositories
	historyRepo := repository.NewHistoryRepository(dbConn, log)

	// Services
	authService := service.NewAuthService(sheets, cfg.JWT.Secret, cfg.Sheet.AdminVendorID, cfg.Sheet.AllowDemoData, log)
	projectService := service.NewProjectService(sheets, store, publisher, cfg.Sheet.AdminVendorID, cfg.Sheet.AllowDemoData, log)
	reportService := service.NewReportService()
	exportService := service.NewExportService()

	// Warm the cache before serving, then keep it fresh in the background.
	if err := projectService.Refresh(context.Background()); err != nil {
		log.Warn("initial sheet refresh failed, serving cached or demo data", zap.Error(err))
	}
	go func() {
		ticker := time.NewTicker(cfg.Sheet.RefreshEvery)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Sheet.Timeout)
			if err := projectService.Refresh(ctx); err != nil {
				log.Warn("background sheet refresh failed", zap.Error(err))
			}
			cancel()
		}
	}()

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	dashboardHandler := handler.NewDashboardHandler(projectService, reportService)
	scheduleHandler := handler.NewScheduleHandler(projectService)
	exportHandler := handler.NewExportHandler(projectService, reportService, exportService)
	historyHandler := handler.NewHistoryHandler(projectService, historyRepo)

	router := httpserver.NewRouter(
		authHandler,
		projectHandler,
		dashboardHandler,
		scheduleHandler,
		exportHandler,
		historyHandler,
		cfg.JWT.Secret,
		dbConn,
		log,
	)

	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
