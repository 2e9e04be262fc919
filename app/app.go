package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edenbay/bookstore-service/config"
	"github.com/edenbay/bookstore-service/internal/handler"
	"github.com/edenbay/bookstore-service/internal/repository"
	"github.com/edenbay/bookstore-service/internal/server"
	"github.com/edenbay/bookstore-service/internal/service"
	"github.com/edenbay/bookstore-service/migrations"
	"github.com/edenbay/bookstore-service/pkg/kafka"
	"github.com/edenbay/bookstore-service/pkg/logger"
	"github.com/edenbay/bookstore-service/pkg/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookstore")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	svc := service.NewService(repo, producer, []byte(cfg.JWTKey), log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.BookstoreConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go kafka.Consume(consumer, handler.NewConsumer(svc.AdjustStock, log), kafka.StockEventsTopic)

	h := handler.New(svc, cfg.AllowOrigin, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g := new(errgroup.Group)
	g.Go(func() error {
		return srv.Run()
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server run", zap.Error(err))
	}
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
