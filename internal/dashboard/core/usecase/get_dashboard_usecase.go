package usecase

import (
	"context"
	"time"

	"covid-dashboard-service/internal/dashboard/core/domain"
	"covid-dashboard-service/internal/dashboard/core/ports"
	dataset "covid-dashboard-service/internal/dataset/core/domain"
)

// LastUpdatedLayout renders the dataset's latest date for display.
const LastUpdatedLayout = "January 02, 2006"

// GetDashboardInput carries the user's controls. A nil Locations slice means
// "not chosen yet" and selects the defaults; an empty non-nil slice selects
// nothing. Nil dates fall back to the dataset bounds.
type GetDashboardInput struct {
	Locations []string
	From      *time.Time
	To        *time.Time
}

type GetDashboardUseCase struct {
	provider         ports.DatasetProviderPort
	defaultLocations []string
}

func NewGetDashboardUseCase(provider ports.DatasetProviderPort, defaultLocations []string) *GetDashboardUseCase {
	return &GetDashboardUseCase{provider: provider, defaultLocations: defaultLocations}
}

// Options describes what the controls may offer.
func (uc *GetDashboardUseCase) Options(ctx context.Context) (*domain.Options, error) {
	ds, err := uc.provider.Execute(ctx)
	if err != nil {
		return nil, err
	}

	first, last, _ := ds.DateBounds()
	return &domain.Options{
		Locations:        ds.Locations(),
		DefaultLocations: uc.presentDefaults(ds),
		MinDate:          first,
		MaxDate:          last,
		LastUpdated:      last.Format(LastUpdatedLayout),
		DatasetVersion:   ds.Version,
	}, nil
}

// Summary fails with ErrSnapshotNotFound when the dataset has no World rows.
func (uc *GetDashboardUseCase) Summary(ctx context.Context) (*domain.SummaryCards, error) {
	ds, err := uc.provider.Execute(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := LatestSnapshot(ds)
	if err != nil {
		return nil, err
	}
	cards := BuildSummary(snap)
	cards.DatasetVersion = ds.Version
	return &cards, nil
}

// Execute runs one full recomputation pass. Only a load failure is returned as
// an error; a missing snapshot is reported on the result.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.Dashboard, error) {
	ds, err := uc.provider.Execute(ctx)
	if err != nil {
		return nil, err
	}

	criteria := uc.resolveCriteria(ds, in)
	view := FilterRecords(ds, criteria)
	latest, _ := ds.LatestDate()

	out := &domain.Dashboard{
		DatasetVersion: ds.Version,
		LatestDate:     latest,
		Criteria:       criteria,
		Trend:          TrendSeries(view),
		Map:            ChoroplethPoints(ds),
		Vaccinations:   VaccinationBars(ds, criteria.Locations),
		Testing:        TestingScatter(view),
	}

	if snap, err := LatestSnapshot(ds); err != nil {
		out.SummaryErr = err
	} else {
		cards := BuildSummary(snap)
		cards.DatasetVersion = ds.Version
		out.Summary = &cards
	}
	return out, nil
}

func (uc *GetDashboardUseCase) resolveCriteria(ds *dataset.Dataset, in GetDashboardInput) domain.Criteria {
	locations := in.Locations
	if locations == nil {
		locations = uc.presentDefaults(ds)
	}

	first, last, _ := ds.DateBounds()
	from, to := first, last
	if in.From != nil {
		from = *in.From
	}
	if in.To != nil {
		to = *in.To
	}
	return domain.NewCriteria(locations, from, to)
}

// presentDefaults keeps the configured defaults that exist in ds.
func (uc *GetDashboardUseCase) presentDefaults(ds *dataset.Dataset) []string {
	present := make(map[string]struct{})
	for _, r := range ds.Records {
		present[r.Location] = struct{}{}
	}
	out := []string{}
	for _, l := range uc.defaultLocations {
		if _, ok := present[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
