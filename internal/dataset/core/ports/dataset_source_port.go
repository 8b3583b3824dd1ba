package ports

import (
	"context"

	"covid-dashboard-service/internal/dataset/core/domain"
)

// DatasetSourcePort fetches the whole table. Implementations return records only;
// versioning and caching happen in the loader.
type DatasetSourcePort interface {
	FetchRecords(ctx context.Context) ([]*domain.Record, error)
	Name() string
}

// LoaderMetricsPort receives loader observations.
type LoaderMetricsPort interface {
	CacheHit()
	FetchSucceeded(records int, seconds float64)
	FetchFailed()
}
