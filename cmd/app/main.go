package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	apiHttp "github.com/regportal/backend/internal/api/http"
	"github.com/regportal/backend/internal/cache"
	"github.com/regportal/backend/internal/config"
	"github.com/regportal/backend/internal/db"
	"github.com/regportal/backend/internal/queue/asynqserver"
	queueClient "github.com/regportal/backend/internal/queue/client"
	"github.com/regportal/backend/internal/server"
	"github.com/regportal/backend/internal/service"
	"github.com/regportal/backend/internal/store"
	"github.com/regportal/backend/internal/validation"
	"github.com/regportal/backend/internal/worker"
	"github.com/regportal/backend/pkg/auth"
	"github.com/regportal/backend/pkg/email/smtp"
	"github.com/regportal/backend/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.Init(cfg.Env, cfg.LogLevel)
	defer appLogger.Sync() //nolint:errcheck

	logger.Info("starting registration portal api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	recordStore, cleanup, err := newStore(cfg)
	if err != nil {
		logger.Error("record store init failed", zap.Error(err))
		os.Exit(1)
	}
	defer cleanup()
	logger.Info("record store ready", zap.String("driver", cfg.Store.Driver))

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation err", zap.Error(err))
		return
	}

	engine, err := validation.NewEngine()
	if err != nil {
		logger.Error("validation engine creation err", zap.Error(err))
		return
	}

	services := service.NewServices(service.Deps{
		Config:       cfg,
		Store:        recordStore,
		Engine:       engine,
		TokenManager: tokenManager,
	})

	if err := services.Admin.EnsureAdminSeed(context.Background()); err != nil {
		logger.Error("admin seed failed", zap.Error(err))
		return
	}

	// Approval notification pipeline, only when email delivery is on.
	var queueServer *asynq.Server
	if cfg.Email.Enabled {
		emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
		if err != nil {
			logger.Error("smtp sender creation failed", zap.Error(err))
			return
		}

		workers := worker.NewWorkers(worker.Deps{
			EmailProvider: emailSender,
			Config:        cfg,
		})

		restore := queueClient.SetClient(asynq.NewClient(asynqserver.RedisOptions(cfg.Cache)))
		defer restore()

		var mux *asynq.ServeMux
		queueServer, mux = asynqserver.New(cfg.Cache, workers)
		go func() {
			if err := queueServer.Run(mux); err != nil {
				logger.Error("asynq server stopped", zap.Error(err))
			}
		}()
	}

	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if queueServer != nil {
		queueServer.Shutdown()
	}

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}

// newStore builds the record store backend selected by config and returns
// a cleanup for its underlying connection.
func newStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case store.DriverMemory:
		return store.NewMemoryStore(), func() {}, nil

	case store.DriverRedis:
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("error when closing redis", zap.Error(err))
			}
		}
		return store.NewRedisStore(redisClient, cfg.Store.RedisKey), cleanup, nil

	case store.DriverMySQL:
		dbConn, err := db.New(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		mysqlStore := store.NewMySQLStore(dbConn)
		if err := mysqlStore.EnsureSchema(context.Background()); err != nil {
			dbConn.Close() //nolint:errcheck
			return nil, nil, err
		}
		cleanup := func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("error when closing mysql", zap.Error(err))
			}
		}
		return mysqlStore, cleanup, nil
	}

	return nil, nil, errors.New("unknown store driver: " + cfg.Store.Driver)
}
