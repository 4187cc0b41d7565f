package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EventCatalog/internal/config"
	"github.com/stpnv0/EventCatalog/internal/favorites"
	"github.com/stpnv0/EventCatalog/internal/handler"
	"github.com/stpnv0/EventCatalog/internal/metrics"
	"github.com/stpnv0/EventCatalog/internal/middleware"
	"github.com/stpnv0/EventCatalog/internal/notification"
	"github.com/stpnv0/EventCatalog/internal/repository"
	"github.com/stpnv0/EventCatalog/internal/router"
	"github.com/stpnv0/EventCatalog/internal/scheduler"
	"github.com/stpnv0/EventCatalog/internal/seed"
	"github.com/stpnv0/EventCatalog/internal/service"
	"github.com/stpnv0/EventCatalog/internal/store"
	"github.com/stpnv0/EventCatalog/internal/view"
	"github.com/stpnv0/EventCatalog/internal/websocket"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	store      *store.Store
	list       *view.ListView
	hub        *websocket.Hub
	stopFeeds  []func()
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventCatalog",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	ctx := context.Background()

	eventRepo := repository.NewEventRepo(a.db)
	kvRepo := repository.NewKVRepo(a.db)
	m := metrics.New()
	clock := clockwork.NewRealClock()

	if a.cfg.Seed.Path != "" {
		if err := a.seedEvents(ctx, eventRepo, clock); err != nil {
			return fmt.Errorf("seed events: %w", err)
		}
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	eventService := service.NewEventService(eventRepo, n, m, clock, a.log)

	a.store = store.New(eventService, a.log)
	favs := favorites.New(ctx, kvRepo, a.cfg.Favorites.StorageKey, a.log)
	a.list = view.NewListView(a.store, favs, clock, a.cfg.UI.SearchDebounce, a.log)
	a.hub = websocket.NewHub(m, a.log)

	a.stopFeeds = append(a.stopFeeds,
		a.hub.PublishCatalog(a.store, favs),
		a.store.Subscribe(func(snap store.Snapshot) { m.ObserveCounts(snap.Counts) }),
	)

	a.scheduler = scheduler.New(a.store, clock, a.cfg.Scheduler.Interval, a.log)

	h := handler.NewHandler(
		a.store,
		a.list,
		favs,
		a.hub,
		clock,
		a.cfg.UI.CountdownTick,
		a.cfg.CORS.AllowOrigins,
		a.log,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		m.Handler(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log, m),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.AllowOrigins),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) seedEvents(ctx context.Context, repo *repository.EventRepository, clock clockwork.Clock) error {
	events, err := seed.Load(a.cfg.Seed.Path)
	if err != nil {
		return err
	}

	_, err = seed.Apply(ctx, repo, events, clock.Now().UTC(), a.log)
	return err
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// a failed first load is kept in the store error and retried by the scheduler
	if err := a.store.LoadEvents(ctx); err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "initial events load failed",
			logger.String("error", err.Error()),
		)
	}

	go a.hub.Run(ctx)
	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.list.Close()
	for _, stopFeed := range a.stopFeeds {
		stopFeed()
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
