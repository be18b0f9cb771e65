package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/cases/internal/cache"
	"github.com/umalmyha/cases/internal/config"
	"github.com/umalmyha/cases/internal/infra"
	"github.com/umalmyha/cases/internal/repository"
	"github.com/umalmyha/cases/internal/service"
	"github.com/umalmyha/cases/internal/validation"
	"github.com/umalmyha/cases/pkg/db/transactor"
)

// @title       Cases API
// @version     1.0
// @description Case tracking REST API
// @BasePath    /
func main() {
	if err := run(); err != nil {
		logrus.Fatal(err)
	}
}

type storage struct {
	caseRepo  repository.CaseRepository
	fieldRepo repository.CustomFieldRepository
	trx       transactor.Transactor
	close     func(context.Context)
}

func run() error {
	cfg, err := config.Build()
	if err != nil {
		return err
	}

	if err := infra.Logger(cfg.LogCfg); err != nil {
		return err
	}

	store, err := connectStorage(cfg)
	if err != nil {
		return err
	}
	defer store.close(context.Background())

	caseCache, closeCache, err := connectCache(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	v, err := validation.New(validation.Policy{
		Departments:          cfg.PolicyCfg.Departments,
		RequireContactFields: cfg.PolicyCfg.RequireContactFields,
	})
	if err != nil {
		return fmt.Errorf("failed to build validator - %w", err)
	}

	caseSvc := service.NewCaseService(store.caseRepo, caseCache, store.trx, v, service.CasePolicy{
		MaxListLimit: cfg.PolicyCfg.MaxListLimit,
	})
	fieldSvc := service.NewCustomFieldService(store.fieldRepo, v, service.CustomFieldPolicy{
		UniqueKeys: cfg.PolicyCfg.UniqueCustomFieldIDs,
	})

	return start(infra.Router(caseSvc, fieldSvc, cfg.HTTPCfg.CorsAllowOrigins), cfg.HTTPCfg)
}

func connectStorage(cfg config.Config) (*storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StorageCfg.ConnectTimeout)
	defer cancel()

	if cfg.StorageCfg.Driver == config.StoragePostgres {
		pool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, err
		}
		logrus.Info("connected to postgresql")

		executor := transactor.NewPgxWithinTransactionExecutor(pool)
		return &storage{
			caseRepo:  repository.NewPostgresCaseRepository(executor),
			fieldRepo: repository.NewPostgresCustomFieldRepository(executor),
			trx:       transactor.NewPgxTransactor(pool),
			close:     func(context.Context) { pool.Close() },
		}, nil
	}

	client, err := infra.Mongodb(ctx, cfg.MongoCfg)
	if err != nil {
		return nil, err
	}
	logrus.Info("connected to mongodb")

	db := client.Database(cfg.MongoCfg.Database)
	if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &storage{
		caseRepo:  repository.NewMongoCaseRepository(db),
		fieldRepo: repository.NewMongoCustomFieldRepository(db),
		trx:       transactor.NewNopTransactor(),
		close: func(ctx context.Context) {
			if err := client.Disconnect(ctx); err != nil {
				logrus.WithError(err).Error("failed to disconnect from mongodb")
			}
		},
	}, nil
}

func connectCache(cfg config.Config) (cache.CaseCache, func(), error) {
	if !cfg.RedisCfg.Enabled {
		return cache.NewNopCaseCache(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StorageCfg.ConnectTimeout)
	defer cancel()

	client, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return nil, nil, err
	}
	logrus.Info("connected to redis")

	closeFn := func() {
		if err := client.Close(); err != nil {
			logrus.WithError(err).Error("failed to close redis connection")
		}
	}
	return cache.NewRedisCaseCache(client, cfg.RedisCfg.CaseTTL), closeFn, nil
}

func start(app *echo.Echo, cfg config.HTTPCfg) error {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logrus.Infof("server running on port %d", cfg.Port)
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to stop server gracefully - %w", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutting down the server, unexpected error occurred - %w", err)
		}
	}
	return nil
}
