package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/frio-catalog/internal/config"
	"github.com/you-humble/frio-catalog/internal/model"
	productrepo "github.com/you-humble/frio-catalog/internal/repository/product"
	"github.com/you-humble/frio-catalog/internal/transport/http/health"
	"github.com/you-humble/frio-catalog/internal/transport/http/middleware"
	"github.com/you-humble/frio-catalog/platform/closer"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initIndexes,
		a.initAdmin,
		a.initSeed,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.L().Sync()
		return nil
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if err := a.di.Migrator(ctx).Up(ctx); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initIndexes(ctx context.Context) error {
	for name, repo := range a.di.Indexers(ctx) {
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Error(ctx, "failed to ensure indexes", logger.String("collection", name), logger.ErrorF(err))
			return err
		}
	}
	return nil
}

func (a *app) initAdmin(ctx context.Context) error {
	cfg := config.C().Auth

	err := a.di.AuthService(ctx).Bootstrap(ctx, model.Credentials{
		Username: cfg.AdminName(),
		Password: cfg.AdminPassword(),
	})
	if err != nil {
		logger.Error(ctx, "failed to bootstrap admin", logger.ErrorF(err))
		return err
	}
	return nil
}

// initSeed fills an empty catalog with demo products when SEED_DEMO_DATA is set.
func (a *app) initSeed(ctx context.Context) error {
	if !config.C().Seed.DemoData() {
		return nil
	}

	repo := a.di.ProductRepository(ctx)
	counts, err := repo.Counts(ctx)
	if err != nil {
		return err
	}
	if counts.Total > 0 {
		logger.Info(ctx, "catalog not empty, skipping demo data", logger.Int64("products", counts.Total))
		return nil
	}

	rate, err := a.di.SettingsService(ctx).ExchangeRate(ctx)
	if err != nil {
		return err
	}
	if err := productrepo.ProductsBootstrap(ctx, repo, rate); err != nil {
		logger.Error(ctx, "failed to seed demo products", logger.ErrorF(err))
		return err
	}

	logger.Info(ctx, "demo products seeded")
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.Logging,
		chimw.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins(),
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut,
				http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	admin := middleware.Auth(a.di.AuthService(ctx))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.Handler(map[string]health.Check{
			"mongo":    func(ctx context.Context) error { return a.di.MongoClient(ctx).Ping(ctx, nil) },
			"postgres": func(ctx context.Context) error { return a.di.DBPool(ctx).Ping(ctx) },
		}))
		a.di.CatalogHandler(ctx).Mount(r, admin)
	})

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	if config.C().Notifications.Enabled() {
		eg.Go(func() error {
			logger.Info(egCtx,
				"🚀 order notifications consumer running",
				logger.Strings("kafka_brokers", config.C().Kafka.Brokers()),
			)
			return a.di.OrderConsumer(egCtx).RunOrderCreatedConsume(egCtx)
		})
	}

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 catalog server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		//nolint:contextcheck
		sdCtx, cancel := context.WithTimeout(context.Background(), config.C().Server.ShutdownTimeout())
		defer cancel()

		return a.server.Shutdown(sdCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
