package main

import (
	"time"

	"go.uber.org/zap"

	"apjatelpmo/config"
	"apjatelpmo/internal/db"
	"apjatelpmo/internal/mqhandler"
	"apjatelpmo/internal/repository"
	"apjatelpmo/pkg/logger"
	"apjatelpmo/pkg/mq"
	redisclient "apjatelpmo/pkg/redis"
	"apjatelpmo/pkg/util"
)

func main() {
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	log.Info("Starting worker service...")

	// Init Redis
	rdb := redisclient.NewClient(cfg.Redis)
	defer rdb.Close()

	deduper := util.NewDeduper(rdb, time.Hour)

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	log.Info("Database connection established")

	historyRepo := repository.NewHistoryRepository(dbConn, log)
	savedHandler := mqhandler.NewProjectSavedHandler(historyRepo, deduper, log)

	log.Info("Initializing project saved consumer", zap.String("routing_key", mq.RoutingKeyProjectSaved))
	consumer, err := mq.NewConsumer(cfg.MQ.URL, mq.RoutingKeyProjectSaved, log)
	if err != nil {
		log.Fatal("failed to init project saved consumer", zap.Error(err))
	}
	consumer.SetHandler(savedHandler.HandleProjectSaved)
	go func() {
		log.Info("Starting project saved consumer")
		if err := consumer.StartConsuming(); err != nil {
			log.Fatal("project saved consumer failed", zap.Error(err))
		}
	}()
	defer consumer.Close()

	log.Info("Worker is ready to process messages")

	select {}
}
