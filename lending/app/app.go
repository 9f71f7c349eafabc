package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/book-network/lending/config"
	"github.com/Astemirdum/book-network/lending/internal/handler"
	"github.com/Astemirdum/book-network/lending/internal/queue"
	"github.com/Astemirdum/book-network/lending/internal/repository"
	"github.com/Astemirdum/book-network/lending/internal/server"
	"github.com/Astemirdum/book-network/lending/internal/service"
	"github.com/Astemirdum/book-network/lending/migrations"
	cb "github.com/Astemirdum/book-network/pkg/circuit_breaker"
	"github.com/Astemirdum/book-network/pkg/kafka"
	"github.com/Astemirdum/book-network/pkg/logger"
	"github.com/Astemirdum/book-network/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "lending")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	enqueuer := queue.NewNoopEnqueuer()
	if cfg.Kafka.Enable {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error("producer.Close", zap.Error(err))
			}
		}()
		breaker := cb.New(cfg.Breaker.RecordLength, cfg.Breaker.Timeout, cfg.Breaker.Percentile, cfg.Breaker.RecoveryRequests)
		enqueuer = queue.NewEnqueuer(producer, breaker, log)
	}
	svc := service.NewService(repo, enqueuer, log)

	stopConsume := func(context.Context) error { return nil }
	if cfg.Kafka.Enable {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.LendingStatsGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		stopConsume = kafka.RunConsumer(group, handler.NewConsumer(svc.RecordEvent, log), log, kafka.LendingTopic)
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = svc.SeedRoles(seedCtx, cfg.Bootstrap.Roles)
	seedCancel()
	if err != nil {
		log.Fatal("role bootstrap", zap.Strings("roles", cfg.Bootstrap.Roles), zap.Error(err))
	}

	h := handler.New(svc, []byte(cfg.Auth.JWTKey), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	// the consumer writes to db, so it stops first
	if err = stopConsume(closeCtx); err != nil {
		log.Error("stop consumer", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
