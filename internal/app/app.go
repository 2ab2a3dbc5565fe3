package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	dbpkg "github.com/yungbote/team-alchemy-backend/internal/data/db"
	httpserver "github.com/yungbote/team-alchemy-backend/internal/http"
	"github.com/yungbote/team-alchemy-backend/internal/observability"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/casestudy"
)

const (
	otelServiceName = "team-alchemy"
	shutdownTimeout = 10 * time.Second
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients

	server       *httpserver.Server
	store        *dbpkg.Service
	shutdownOtel func(context.Context) error
	closeOnce    sync.Once
}

// New builds the logger from LOG_MODE and the config from LoadConfig.
func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return NewWithConfig(ctx, cfg, log)
}

func NewWithConfig(ctx context.Context, cfg Config, log *logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownOtel := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.OtelEnabled,
		ServiceName: otelServiceName,
		Environment: cfg.Environment,
		Version:     cfg.AppVersion,
	})

	store, err := dbpkg.Open(cfg.DatabaseURL, log)
	if err != nil {
		_ = shutdownOtel(ctx)
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbpkg.AutoMigrateAll(store.DB()); err != nil {
		_ = store.Close()
		_ = shutdownOtel(ctx)
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	theDB := store.DB()

	clientset, err := wireClients(ctx, log, cfg)
	if err != nil {
		_ = store.Close()
		_ = shutdownOtel(ctx)
		return nil, err
	}

	cases, err := casestudy.NewMapper()
	if err != nil {
		_ = clientset.Close()
		_ = store.Close()
		_ = shutdownOtel(ctx)
		return nil, fmt.Errorf("load case studies: %w", err)
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, clientset)
	handlerset := wireHandlers(log, cfg, serviceset, cases)
	middleware := wireMiddleware(log, serviceset)
	server := wireServer(log, cfg, handlerset, middleware)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       server.Engine,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Clients:      clientset,
		server:       server,
		store:        store,
		shutdownOtel: shutdownOtel,
	}, nil
}

// Run serves HTTP on addr until ctx is cancelled or SIGINT/SIGTERM arrives.
func (a *App) Run(ctx context.Context, addr string) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return a.Serve(ctx, ln)
}

func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", ln.Addr().String())
		return a.server.Serve(ln)
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Close releases every resource; it is safe to call more than once.
func (a *App) Close() {
	if a == nil {
		return
	}
	a.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if a.shutdownOtel != nil {
			if err := a.shutdownOtel(ctx); err != nil {
				a.Log.Warn("otel shutdown failed", "error", err)
			}
		}
		if err := a.Clients.Close(); err != nil {
			a.Log.Warn("cache close failed", "error", err)
		}
		if a.store != nil {
			if err := a.store.Close(); err != nil {
				a.Log.Warn("database close failed", "error", err)
			}
		}
		a.Log.Sync()
	})
}
