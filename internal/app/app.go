package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/docstore/internal/config"
	"github.com/MrSnakeDoc/docstore/internal/httpserver"
	"github.com/MrSnakeDoc/docstore/internal/httpserver/deps"
	"github.com/MrSnakeDoc/docstore/internal/index"
	"github.com/MrSnakeDoc/docstore/internal/logger"
	"github.com/MrSnakeDoc/docstore/internal/redis"
	"github.com/MrSnakeDoc/docstore/internal/scheduler"
	redisstore "github.com/MrSnakeDoc/docstore/internal/store/redis"
	"github.com/MrSnakeDoc/docstore/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	store       *index.DocumentStore
	redisClient *goredis.Client
	snapshotter *scheduler.Snapshotter
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	store := index.NewDocumentStore()

	a := &App{
		cfg:    cfg,
		logger: log,
		store:  store,
	}

	d := deps.Deps{
		Logger:       log,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		Store:        store,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}

	if cfg.RedisEnabled() {
		mirror, err := a.initMirror()
		if err != nil {
			return nil, err
		}
		d.Mirror = mirror
	} else {
		log.Info("redis mirror not configured, documents live in memory only")
	}

	if cfg.SeedFile != "" {
		if _, err := scheduler.NewSeeder(cfg.SeedFile, store, log).Seed(); err != nil {
			a.closeRedis()
			return nil, fmt.Errorf("failed to seed documents: %w", err)
		}
	}

	a.server = httpserver.New(cfg, log, d)
	return a, nil
}

// initMirror connects to Redis, restores mirrored documents and prepares the snapshotter.
func (a *App) initMirror() (*redisstore.Store, error) {
	cfg := a.cfg

	client, err := redis.New(context.Background(), redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	a.redisClient = client

	mirror := redisstore.NewStore(client, cfg.RedisKeyPrefix)

	syncer := scheduler.NewRedisSyncer(mirror, a.store, a.logger)
	if _, err := syncer.Sync(context.Background()); err != nil {
		a.logger.Warn("failed to restore documents from redis, starting empty",
			logger.Error(err))
	}

	a.snapshotter = scheduler.NewSnapshotter(mirror, a.store, a.logger, cfg.SnapshotInterval)
	return mirror, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting docstore v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("docstore %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.snapshotter != nil {
		if err := a.snapshotter.Start(ctx); err != nil {
			return fmt.Errorf("failed to start snapshotter: %w", err)
		}
		a.logger.Info("snapshotter started",
			logger.Duration("interval", a.cfg.SnapshotInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	// Final snapshot after the server stopped accepting writes.
	if a.snapshotter != nil {
		if err := a.snapshotter.Stop(shutdownCtx); err != nil {
			a.logger.Warn("final snapshot failed", logger.Error(err))
		} else {
			a.logger.Info("final snapshot written", logger.Int("documents", a.store.Count()))
		}
	}

	a.closeRedis()

	if runErr == nil {
		a.logger.Info("✅ docstore stopped cleanly")
	}
	_ = a.logger.Sync()
	return runErr
}

func (a *App) closeRedis() {
	if a.redisClient == nil {
		return
	}
	if err := a.redisClient.Close(); err != nil {
		a.logger.Warnf("failed to close redis: %v", err)
	} else {
		a.logger.Info("✅ Redis closed cleanly")
	}
	a.redisClient = nil
}
