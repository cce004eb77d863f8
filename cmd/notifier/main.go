package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/skycruzer/fleet-notify/internal/api/handlers/queue"
	"github.com/skycruzer/fleet-notify/internal/api/router"
	"github.com/skycruzer/fleet-notify/internal/api/server"
	"github.com/skycruzer/fleet-notify/internal/config"
	"github.com/skycruzer/fleet-notify/internal/database"
	"github.com/skycruzer/fleet-notify/internal/dispatcher"
	"github.com/skycruzer/fleet-notify/internal/processor"
	queuerepo "github.com/skycruzer/fleet-notify/internal/repository/queue"
	queuesvc "github.com/skycruzer/fleet-notify/internal/service/queue"
	"github.com/skycruzer/fleet-notify/internal/worker"
	"github.com/skycruzer/fleet-notify/pkg/execqueue"
	"github.com/skycruzer/fleet-notify/pkg/mailer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	masterDSN := cfg.Database.Master.DSN()

	if err := database.ApplyMigrations(cfg.Database.MigrationsPath, masterDSN); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := dbpg.New(masterDSN, cfg.Database.SlaveDSNs(), opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	mailClient := mailer.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.RatePerSecond,
	)

	repo := queuerepo.NewRepository(db)
	disp := dispatcher.New(mailClient, val, cfg.Backoff)
	exec := execqueue.New(cfg.Queue.MaxConcurrent)
	service := queuesvc.NewService(repo, rdb, exec, cfg.Backoff, cfg.Retry)
	proc := processor.New(repo, disp, mailer.Provider)

	runner := worker.NewRunner(proc, service, cfg.Queue.ProcessInterval, cfg.Queue.CleanupInterval, cfg.Queue.BatchSize)
	go runner.Run(ctx)

	handler := queue.NewHandler(service, proc, val)
	r := router.New(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("http server started")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}
