package usecase

import (
	"context"
	"errors"
	"time"

	"covid-dashboard-service/internal/dataset/cache"
	"covid-dashboard-service/internal/dataset/core/domain"
	"covid-dashboard-service/internal/dataset/core/ports"
	"covid-dashboard-service/internal/platform/logger"

	"github.com/google/uuid"
)

var ErrEmptyDataset = errors.New("dataset has no records")

type LoadDatasetUseCase struct {
	source  ports.DatasetSourcePort
	cache   *cache.TTLCache[*domain.Dataset]
	key     string
	metrics ports.LoaderMetricsPort
	log     logger.Logger
	now     func() time.Time
}

// NewLoadDatasetUseCase wires a source to a cache under key. metrics may be nil.
func NewLoadDatasetUseCase(
	source ports.DatasetSourcePort,
	c *cache.TTLCache[*domain.Dataset],
	key string,
	metrics ports.LoaderMetricsPort,
	log logger.Logger,
) *LoadDatasetUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &LoadDatasetUseCase{
		source:  source,
		cache:   c,
		key:     key,
		metrics: metrics,
		log:     log.With(logger.String("source", source.Name())),
		now:     time.Now,
	}
}

// Execute returns the cached dataset, fetching it when the entry is missing or stale.
// Every failure is reported as *domain.FetchError.
func (uc *LoadDatasetUseCase) Execute(ctx context.Context) (*domain.Dataset, error) {
	entry, hit, err := uc.cache.GetOrLoad(ctx, uc.key, uc.fetch)
	if err != nil {
		return nil, err
	}
	if hit {
		uc.metrics.CacheHit()
	}
	return entry.Value, nil
}

func (uc *LoadDatasetUseCase) fetch(ctx context.Context) (*domain.Dataset, error) {
	started := uc.now()
	uc.log.Info("fetching dataset")

	records, err := uc.source.FetchRecords(ctx)
	if err == nil && len(records) == 0 {
		err = ErrEmptyDataset
	}
	if err != nil {
		uc.metrics.FetchFailed()
		uc.log.Error("dataset fetch failed", logger.Error(err))

		var fe *domain.FetchError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &domain.FetchError{Source: uc.key, Err: err}
	}

	elapsed := uc.now().Sub(started)
	ds := &domain.Dataset{
		Version:   uuid.NewString(),
		Source:    uc.key,
		FetchedAt: uc.now().UTC(),
		Records:   records,
	}

	uc.metrics.FetchSucceeded(len(records), elapsed.Seconds())
	uc.log.Info("dataset loaded",
		logger.String("version", ds.Version),
		logger.Int("records", len(records)),
		logger.Duration("elapsed", elapsed),
	)
	return ds, nil
}

type noopMetrics struct{}

func (noopMetrics) CacheHit()                   {}
func (noopMetrics) FetchSucceeded(int, float64) {}
func (noopMetrics) FetchFailed()                {}
