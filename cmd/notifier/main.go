package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/spend-easy/internal/clients/health"
	"max.ks1230/spend-easy/internal/clients/kafka"
	"max.ks1230/spend-easy/internal/clients/tg"
	"max.ks1230/spend-easy/internal/config"
	"max.ks1230/spend-easy/internal/logger"
	"max.ks1230/spend-easy/internal/metrics"
	"max.ks1230/spend-easy/internal/model/notifier"
	"max.ks1230/spend-easy/internal/model/storage"
	"max.ks1230/spend-easy/internal/tracing"
)

func main() {
	logger.Info("Notifier init - start")
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	if conf.Postgres().RunMigrations() {
		if err = storage.RunMigrations(conf.Postgres()); err != nil {
			logger.Fatal("failed to migrate postgres:", zap.Error(err))
		}
	}
	db, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres:", zap.Error(err))
	}
	defer db.Close()

	delivery := notifier.New(client, db, notifier.WithLocation(conf.App().Location()))
	if err = delivery.Restore(context.Background()); err != nil {
		logger.Fatal("failed to restore pending notifications:", zap.Error(err))
	}

	consumer, err := kafka.NewConsumer(conf.Kafka(), delivery)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	healthServer, err := health.NewServer(conf.Metrics().GRPCHealthPort())
	if err != nil {
		logger.Fatal("failed to init health server", zap.Error(err))
	}

	logger.Info("Notifier init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(consumerLoop(ctx, consumer))
	group.Go(func() error {
		delivery.Run(ctx, conf.Kafka().DeliveryInterval())
		return nil
	})
	group.Go(healthServer.Serve)
	group.Go(func() error {
		<-ctx.Done()
		healthServer.Shutdown()
		return nil
	})
	group.Go(func() error {
		return metrics.Serve(ctx, conf.Metrics().Addr())
	})
	healthServer.SetServing(true)

	if err = group.Wait(); err != nil {
		logger.Error("notifier stopped with error", zap.Error(err))
	}
}

func consumerLoop(ctx context.Context, consumer *kafka.Consumer) func() error {
	return func() error {
		return consumer.StartConsuming(ctx)
	}
}
