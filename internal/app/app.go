package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/HoursLedger/internal/calendar"
	"github.com/stpnv0/HoursLedger/internal/config"
	"github.com/stpnv0/HoursLedger/internal/handler"
	"github.com/stpnv0/HoursLedger/internal/ledger"
	"github.com/stpnv0/HoursLedger/internal/middleware"
	"github.com/stpnv0/HoursLedger/internal/notification"
	"github.com/stpnv0/HoursLedger/internal/repository"
	"github.com/stpnv0/HoursLedger/internal/router"
	"github.com/stpnv0/HoursLedger/internal/scheduler"
	"github.com/stpnv0/HoursLedger/internal/service"
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
	digest     *scheduler.Digest
	workers    sync.WaitGroup
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HoursLedger",
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

	applyPoolLimits(db.Master, a.cfg.Postgres)

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

// applyPoolLimits applies the configured pool sizes and connection lifetime.
func applyPoolLimits(db *sql.DB, p config.PostgresConfig) {
	db.SetMaxOpenConns(p.MaxOpenConns)
	db.SetMaxIdleConns(p.MaxIdleConns)
	db.SetConnMaxLifetime(p.ConnMaxLifetime)
}

func (a *App) initServices() error {
	cal, err := calendar.Load(a.cfg.Ledger.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}
	clock := calendar.SystemClock{}
	// Движок расчёта часов: политика берётся из конфига
	engine := ledger.New(cal, a.cfg.Ledger.Policy())

	clientRepo := repository.NewClientRepo(a.db)

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.AdminChatID,
		cal.Location(),
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	clientService := service.NewClientService(clientRepo, clock, a.log)
	ledgerService := service.NewLedgerService(clientRepo, engine, n, clock, a.log)

	a.scheduler = scheduler.New(
		ledgerService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	// Пустое расписание отключает дайджест
	if a.cfg.Scheduler.Digest != "" {
		a.digest, err = scheduler.NewDigest(ledgerService, a.cfg.Scheduler.Digest, cal.Location(), a.log)
		if err != nil {
			return fmt.Errorf("init digest: %w", err)
		}
	}

	h := handler.NewHandler(clientService, ledgerService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
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

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.workers.Add(1)
	go func() {
		defer a.workers.Done()
		a.scheduler.Start(ctx)
	}()
	if a.digest != nil {
		a.workers.Add(1)
		go func() {
			defer a.workers.Done()
			a.digest.Start(ctx)
		}()
	}

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

	// Ждём, пока sweep или дайджест допишут в базу
	a.workers.Wait()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "background jobs stopped")

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

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "migrations applied",
		logger.String("dir", migrationsDir),
	)
	return nil
}
