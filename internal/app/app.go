package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/config"
	"github.com/GlebRadaev/frontdesk/internal/erp"
	"github.com/GlebRadaev/frontdesk/internal/handlers"
	"github.com/GlebRadaev/frontdesk/internal/pg"
	"github.com/GlebRadaev/frontdesk/internal/reconcile"
	"github.com/GlebRadaev/frontdesk/internal/repo"
	paymentrepo "github.com/GlebRadaev/frontdesk/internal/repo/payment-repo"
	"github.com/GlebRadaev/frontdesk/internal/service"
	"github.com/GlebRadaev/frontdesk/internal/session"
	"github.com/GlebRadaev/frontdesk/pkg/auth"
	"github.com/GlebRadaev/frontdesk/pkg/clients"
	"github.com/GlebRadaev/frontdesk/pkg/logger"
	"github.com/GlebRadaev/frontdesk/pkg/metrics"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	sessions *session.Store
	ext      *reconcile.Service
	registry *prometheus.Registry

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := cfg.LoadRoles(); err != nil {
		return fmt.Errorf("can't load roles: %w", err)
	}
	a.cfg = cfg

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(a.registry)

	gateway := erp.New(cfg.ERPURL,
		clients.NewHTTPClient(erp.AuthHeaders(cfg.ERPAPIKey, cfg.ERPAPISecret)),
		erp.WithTimeouts(cfg.ERPReadTimeout, cfg.ERPWriteTimeout),
		erp.WithObserver(m.ObserveERP),
	)

	var (
		conn      pg.Database
		txManager pg.TXManager
	)
	if cfg.Database != "" {
		pool, err := getPgxpool(ctx, cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			return fmt.Errorf("can't run migrations: %w", err)
		}
		conn = pg.New(pool)
		txManager = pg.NewTXManager(pool)
	} else {
		zap.L().Warn("DATABASE_URI is empty, payment attempts are not journaled")
	}

	a.sessions = session.NewStore(cfg.SessionTTL)
	m.RegisterSessions(a.registry, a.sessions.Len)

	a.repo = repo.New(gateway, paymentrepo.Settings{
		Company:           cfg.Company,
		ModeOfPayment:     cfg.ModeOfPayment,
		ReceivableAccount: cfg.ReceivableAccount,
		CashAccount:       cfg.CashAccount,
		Currency:          cfg.Currency,
	}, conn, txManager)
	a.srv = service.New(a.repo, a.sessions, cfg, m)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.KioskSecret),
		promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSessionSweeper(ctx)

	if conn != nil {
		a.ext = reconcile.New(a.repo.Attempts, a.repo.Payments, cfg.ReconcileInterval, m)
		a.ext.Start(ctx)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSessionSweeper(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sessions.Run(ctx, a.cfg.SessionSweepInterval)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
