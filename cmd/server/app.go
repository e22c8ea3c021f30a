package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/unilab/labdash/internal/gateway"
	"github.com/unilab/labdash/internal/gateway/middleware"
	"github.com/unilab/labdash/internal/modules/agenda"
	"github.com/unilab/labdash/internal/modules/directory"
	"github.com/unilab/labdash/internal/modules/filestorage"
	"github.com/unilab/labdash/internal/modules/monitor"
	monitorApplication "github.com/unilab/labdash/internal/modules/monitor/application"
	"github.com/unilab/labdash/internal/modules/movements"
	"github.com/unilab/labdash/internal/modules/notification"
	"github.com/unilab/labdash/internal/modules/preferences"
	"github.com/unilab/labdash/internal/modules/reports"
	reportsApplication "github.com/unilab/labdash/internal/modules/reports/application"
	"github.com/unilab/labdash/internal/modules/requests"
	"github.com/unilab/labdash/internal/modules/session"
	sessionApplication "github.com/unilab/labdash/internal/modules/session/application"
	"github.com/unilab/labdash/internal/modules/shell"
	"github.com/unilab/labdash/internal/modules/supplies"
	"github.com/unilab/labdash/internal/shared/infrastructure/config"
	"github.com/unilab/labdash/internal/shared/infrastructure/database"
	"github.com/unilab/labdash/internal/shared/infrastructure/email"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
	"github.com/unilab/labdash/pkg/migration"
)

// app is the wired process: the HTTP handler plus the background loops.
type app struct {
	handler       http.Handler
	notifications *notification.Module
	monitors      *monitor.Module
	agenda        *agenda.Module
	preferences   *preferences.Module
	logger        *slog.Logger
	closers       []func()
}

func buildApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{logger: logger}

	prefsModule, err := a.openPreferences(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.preferences = prefsModule

	storage, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		a.Close()
		return nil, err
	}

	client := labapi.NewClient(labapi.Config{BaseURL: cfg.LabAPI.BaseURL, Timeout: cfg.LabAPI.Timeout})
	mailer := email.NewSender(email.Config{
		SendGridKey: cfg.Email.SendGridKey,
		FromName:    cfg.Email.FromName,
		FromAddress: cfg.Email.FromAddress,
	})

	a.notifications = notification.NewModule(cfg.Monitor.ToastDuration)
	a.closers = append(a.closers, a.notifications.Shutdown)
	store := a.notifications.Store()

	sessionModule := session.NewModule(sessionApplication.Config{
		AdminUser:         cfg.Session.AdminUser,
		AdminPasswordHash: cfg.Session.AdminPasswordHash,
		Secret:            cfg.Session.Secret,
		Expiry:            cfg.Session.Expiry,
	}, logger)

	shellModule, err := shell.NewModule(prefsModule.Store(), logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	requestsModule := requests.NewModule(client, mailer, logger)
	lowStock := monitorApplication.NewLowStockHandler(prefsModule.Store(), store, logger)
	suppliesModule := supplies.NewModule(client, lowStock, logger)
	movementsModule := movements.NewModule(client)
	directoryModule := directory.NewModule(client, logger)

	a.agenda = agenda.NewModule(requestsModule.Repository(), cfg.Monitor.AgendaRefresh, cfg.Monitor.FetchTimeout, logger)
	a.monitors = monitor.NewModule(monitor.Config{
		RequestsInterval: cfg.Monitor.RequestsInterval,
		SuppliesInterval: cfg.Monitor.SuppliesInterval,
		FetchTimeout:     cfg.Monitor.FetchTimeout,
	}, requestsModule.Repository(), suppliesModule.Repository(), lowStock, store, logger)
	a.closers = append(a.closers, a.monitors.Stop)

	reportsModule := reports.NewModule(client, reportsApplication.Sources{
		Solicitudes: requestsModule.Repository(),
		Insumos:     suppliesModule.Repository(),
		Movimientos: movementsModule.Repository(),
	}, storage.Service(), logger)

	a.handler = gateway.NewHandler(gateway.RouterConfig{
		AuthMiddleware:      middleware.NewAuthMiddleware(cfg.Session.Secret),
		SessionHandler:      sessionModule.HTTPHandler(),
		NotificationHandler: a.notifications.HTTPHandler(),
		MonitorHandler:      a.monitors.HTTPHandler(),
		ShellHandler:        shellModule.HTTPHandler(),
		SupplyHandler:       suppliesModule.HTTPHandler(),
		RequestHandler:      requestsModule.HTTPHandler(),
		DocenteHandler:      directoryModule.DocenteHandler(),
		AlumnoHandler:       directoryModule.AlumnoHandler(),
		MovementHandler:     movementsModule.HTTPHandler(),
		AgendaHandler:       a.agenda.HTTPHandler(),
		ReportHandler:       reportsModule.HTTPHandler(),
		ExportsDir:          storage.LocalDir(),
	}, cfg.Server.AllowedOrigins)

	logger.Info("labdash wired",
		"lab_api", cfg.LabAPI.BaseURL,
		"preferences", prefsModule.Backend(),
		"s3", cfg.FileStorage.UseS3,
	)
	return a, nil
}

// openPreferences connects the configured preference backend. Postgres gets
// its schema applied before use.
func (a *app) openPreferences(cfg config.Config) (*preferences.Module, error) {
	var (
		rdb *goredis.Client
		db  *sqlx.DB
		err error
	)
	switch cfg.Preferences.Backend {
	case preferences.BackendRedis:
		rdb, err = database.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { rdb.Close() })
	case preferences.BackendPostgres:
		runner := migration.NewRunner(migration.Config{
			MigrationsPath: cfg.Preferences.MigrationsPath,
			DatabaseURL:    cfg.Database.URL(),
			Logger:         a.logger,
		})
		if err := runner.EnsureSchema(); err != nil {
			return nil, fmt.Errorf("preference schema: %w", err)
		}
		db, err = database.NewPostgresDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { db.Close() })
	}
	return preferences.NewModule(cfg.Preferences.Backend, rdb, db)
}

func (a *app) Handler() http.Handler {
	return a.handler
}

// StartBackground launches the change monitors and the agenda refresh.
func (a *app) StartBackground(ctx context.Context) {
	a.monitors.Start(ctx)
	go a.agenda.Run(ctx)
}

// Close releases everything in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
