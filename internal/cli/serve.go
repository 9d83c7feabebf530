package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"propdesk/internal/config"
	"propdesk/internal/database/migration"
	"propdesk/internal/events"
	handlers "propdesk/internal/http/handler"
	"propdesk/internal/http/middleware"
	"propdesk/internal/otel"
	"propdesk/internal/repository/postgres"
	"propdesk/internal/scheduler"
	"propdesk/internal/service"
	"propdesk/internal/storage"
)

const (
	bodyLimit       = 32 << 20
	shutdownTimeout = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  "Apply pending migrations, start the background sweep and serve the HTTP API until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default: $PORT or 8080)")

	return cmd
}

func runServe(parent context.Context, port string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer e.close()
	if port != "" {
		e.cfg.Port = port
	}

	shutdownTracing, err := otel.Init(ctx, e.log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			e.log.WithError(err).Warn("tracing shutdown")
		}
	}()

	if err := migration.EnsureMigrated(ctx, e.db, e.log, e.cfg.Database.Host); err != nil {
		return err
	}

	pub, nc := newPublisher(e.cfg.NATS, e.log)
	if nc != nil {
		defer func() {
			if err := nc.Drain(); err != nil {
				e.log.WithError(err).Warn("draining NATS connection")
			}
		}()
	}

	store, err := newStorage(ctx, e.cfg.MinIO, e.log)
	if err != nil {
		return err
	}

	app, svc, err := newApp(e.cfg, e.log, e.db, store, pub, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	if e.cfg.Sweep.Enabled {
		sweeper := scheduler.NewSweeper(postgres.NewLeasePostgres(e.db), postgres.NewPaymentPostgres(e.db),
			postgres.NewUnitPostgres(e.db), svc.Settings, e.log)
		timeout := time.Duration(e.cfg.Sweep.TimeoutSec) * time.Second
		c, err := scheduler.Start(sweeper, e.cfg.Sweep.Spec, e.cfg.Location(), timeout)
		if err != nil {
			return err
		}
		defer func() { <-c.Stop().Done() }()
	}

	errCh := make(chan error, 1)
	go func() {
		e.log.WithField("port", e.cfg.Port).Info("http server starting")
		errCh <- app.Listen(":" + e.cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	e.log.Info("http server shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// newPublisher connects to NATS when a URL is configured. A broker that cannot
// be reached is logged and events are dropped instead.
func newPublisher(cfg config.NATSConfig, log logrus.FieldLogger) (events.Publisher, *nats.Conn) {
	if cfg.URL == "" {
		log.WithField("events_enabled", false).Info("events configured")
		return events.Noop{}, nil
	}
	nc, err := events.Connect(cfg.URL)
	if err != nil {
		log.WithError(err).Warn("events disabled")
		return events.Noop{}, nil
	}
	log.WithFields(logrus.Fields{"events_enabled": true, "prefix": cfg.SubjectPrefix}).Info("events configured")
	return events.NewNATSPublisher(nc, cfg.SubjectPrefix), nc
}

func newStorage(ctx context.Context, cfg config.MinIOConfig, log logrus.FieldLogger) (storage.Storage, error) {
	if !cfg.Enabled() {
		log.WithField("attachments_enabled", false).Info("object storage configured")
		return storage.Disabled{}, nil
	}
	store, err := storage.NewMinIO(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize object storage: %w", err)
	}
	log.WithFields(logrus.Fields{"attachments_enabled": true, "bucket": cfg.Bucket}).Info("object storage configured")
	return store, nil
}

// newApp wires repositories, services, middleware and routes into a Fiber app.
func newApp(cfg *config.AppConfig, log *logrus.Logger, db *sql.DB, store storage.Storage, pub events.Publisher, reg *prometheus.Registry) (*fiber.App, handlers.Services, error) {
	if store == nil {
		return nil, handlers.Services{}, errors.New("storage is required")
	}
	em := events.NewEmitter(pub, log.WithField("component", "events"))

	cities := postgres.NewCityPostgres(db)
	districts := postgres.NewDistrictPostgres(db)
	owners := postgres.NewOwnerPostgres(db)
	buildings := postgres.NewBuildingPostgres(db)
	units := postgres.NewUnitPostgres(db)
	leases := postgres.NewLeasePostgres(db)
	payments := postgres.NewPaymentPostgres(db)
	stock := postgres.NewStockPostgres(db)
	requests := postgres.NewServiceRequestPostgres(db)
	attachments := postgres.NewAttachmentPostgres(db)

	settings := service.NewSettingsService(postgres.NewSettingsPostgres(db), em)
	svc := handlers.Services{
		Locations:       service.NewLocationService(cities, districts, em),
		Owners:          service.NewOwnerService(owners, em),
		Buildings:       service.NewBuildingService(buildings, owners, cities, districts, em),
		Units:           service.NewUnitService(units, buildings, owners, cities, districts, attachments, em),
		Leases:          service.NewLeaseService(leases, units, buildings, attachments, settings, em),
		Payments:        service.NewPaymentService(payments, leases, units, settings, em),
		Stock:           service.NewStockService(stock, settings, em, log.WithField("component", "stock")),
		ServiceRequests: service.NewServiceRequestService(requests, units, attachments, settings, em),
		Attachments: service.NewAttachmentService(store, attachments, units, leases, requests,
			time.Duration(cfg.MinIO.PresignExpirySec)*time.Second, em),
		Settings: settings,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    bodyLimit,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))

	if cfg.MetricsEnabled {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewDBStatsCollector(db, cfg.Database.Name),
		)
		pm, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			return nil, handlers.Services{}, fmt.Errorf("register metrics: %w", err)
		}
		app.Use(pm.Handler())
		app.Get("/metrics", handlers.Metrics(reg))
	}

	handlers.RegisterRoutes(app, db, svc)
	return app, svc, nil
}
