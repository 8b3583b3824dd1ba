package ports

import (
	"context"

	dataset "covid-dashboard-service/internal/dataset/core/domain"
)

// DatasetProviderPort hands out the current (possibly cached) dataset.
type DatasetProviderPort interface {
	Execute(ctx context.Context) (*dataset.Dataset, error)
}
