package main

import (
	"context"
	"fmt"
	"net/http"

	"covid-dashboard-service/internal/dashboard/core/usecase"
	"covid-dashboard-service/internal/dataset/adapters/owid"
	datasetpg "covid-dashboard-service/internal/dataset/adapters/postgres"
	datasetprom "covid-dashboard-service/internal/dataset/adapters/prometheus"
	"covid-dashboard-service/internal/dataset/cache"
	"covid-dashboard-service/internal/dataset/core/domain"
	"covid-dashboard-service/internal/dataset/core/ports"
	datasetusecase "covid-dashboard-service/internal/dataset/core/usecase"
	"covid-dashboard-service/internal/platform/config"
	"covid-dashboard-service/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type deps struct {
	cfg       *config.Config
	log       logger.Logger
	registry  *prometheus.Registry
	loader    *datasetusecase.LoadDatasetUseCase
	dashboard *usecase.GetDashboardUseCase
	closers   []func() error
}

func (d *deps) Close() {
	for _, c := range d.closers {
		if err := c(); err != nil {
			d.log.Warn("close failed", logger.Error(err))
		}
	}
	_ = d.log.Sync()
}

func newDeps(ctx context.Context, path string) (*deps, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	d := &deps{cfg: cfg, log: log, registry: prometheus.NewRegistry()}
	d.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	source, err := d.newSource(ctx)
	if err != nil {
		d.Close()
		return nil, err
	}

	datasets := cache.New[*domain.Dataset](cfg.Dataset.TTL)
	d.loader = datasetusecase.NewLoadDatasetUseCase(
		source,
		datasets,
		cfg.SourceKey(),
		datasetprom.NewLoaderMetrics(d.registry),
		log,
	)
	d.dashboard = usecase.NewGetDashboardUseCase(d.loader, cfg.Dashboard.DefaultLocations)
	return d, nil
}

func (d *deps) newSource(ctx context.Context) (ports.DatasetSourcePort, error) {
	switch d.cfg.Dataset.Source {
	case config.SourcePostgres:
		db, closer, err := datasetpg.Open(ctx, d.cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, closer.Close)

		d.log.Info("dataset source: postgres", logger.String("table", d.cfg.Postgres.Table))
		return datasetpg.NewRecordRepository(db, d.cfg.Postgres.Table), nil
	default:
		d.log.Info("dataset source: http", logger.String("url", d.cfg.Dataset.URL))
		client := &http.Client{Timeout: d.cfg.Dataset.Timeout}
		return owid.NewSource(
			d.cfg.Dataset.URL,
			client,
			owid.WithAttempts(d.cfg.Dataset.FetchAttempts),
			owid.WithLogger(d.log),
		), nil
	}
}
