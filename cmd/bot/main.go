package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/spend-easy/internal/clients/cache"
	"max.ks1230/spend-easy/internal/clients/kafka"
	"max.ks1230/spend-easy/internal/clients/tg"
	"max.ks1230/spend-easy/internal/config"
	"max.ks1230/spend-easy/internal/logger"
	"max.ks1230/spend-easy/internal/metrics"
	"max.ks1230/spend-easy/internal/model/analytics"
	"max.ks1230/spend-easy/internal/model/expenses"
	"max.ks1230/spend-easy/internal/model/messages"
	"max.ks1230/spend-easy/internal/model/reminders"
	"max.ks1230/spend-easy/internal/model/storage"
	"max.ks1230/spend-easy/internal/tracing"
)

func main() {
	logger.Info("Bot init - start")
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

	generator := analytics.NewGenerator(db, nil, analytics.WithLocation(conf.App().Location()))
	memcache, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Error("memcached is unavailable, reports are not cached", zap.Error(err))
	} else {
		generator = analytics.NewGenerator(db, memcache, analytics.WithLocation(conf.App().Location()))
	}

	gateway, err := kafka.NewGateway(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer:", zap.Error(err))
	}
	defer gateway.Close()

	engine := reminders.NewEngine(db, gateway, db, conf.Reminders(),
		reminders.WithLocation(conf.App().Location()))
	runner := reminders.NewRunner(engine, conf.Reminders())

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	expenseService := expenses.NewService(db, generator, runner)
	msgService := messages.NewService(client, expenseService, generator, runner, conf.App())

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		runner.Run(ctx)
		return nil
	})
	group.Go(func() error {
		client.ListenUpdates(ctx, msgService)
		return nil
	})
	group.Go(func() error {
		return metrics.Serve(ctx, conf.Metrics().Addr())
	})

	if err = group.Wait(); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}
}
