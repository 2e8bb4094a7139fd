package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbearia-api/internal/db"
	"github.com/BruksfildServices01/barbearia-api/internal/logger"
	"github.com/BruksfildServices01/barbearia-api/internal/routes"
	"github.com/BruksfildServices01/barbearia-api/internal/throttle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🗄️ BANCO
	// ======================================================
	db, err := dbpkg.NewDB(cfg, zlog)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := dbpkg.Migrate(ctx, sqlDB, zlog, "up"); err != nil {
			return err
		}
	}

	// ======================================================
	// 🔒 LOGIN THROTTLE
	// ======================================================
	var loginThrottle throttle.LoginThrottle = throttle.Noop{}
	if cfg.RedisAddr != "" {
		rdb := throttle.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Warn("redis unavailable, login throttle disabled", zap.Error(err))
		} else {
			loginThrottle = throttle.New(
				throttle.NewRedisCounter(rdb),
				cfg.LoginMaxAttempts,
				cfg.LoginLockWindow(),
			)
		}
	}

	// ======================================================
	// 📜 AUDITORIA
	// ======================================================
	auditLog := audit.New(db)
	dispatcher := audit.NewDispatcher(auditLog, zlog)
	defer dispatcher.Close()

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r, err := routes.NewEngine(cfg, zlog)
	if err != nil {
		return err
	}

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Pinger:   sqlDB,
		Config:   cfg,
		Log:      zlog,
		Throttle: loginThrottle,
		Audit:    dispatcher,
		AuditLog: auditLog,
	})

	servers := []*http.Server{newServer(cfg.Addr(), r)}
	if addr := cfg.SecondaryAddr(); addr != "" {
		servers = append(servers, newServer(addr, r))
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			zlog.Info("server running", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		zlog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
