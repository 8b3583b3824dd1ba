package usecase

import (
	"covid-dashboard-service/internal/dashboard/core/domain"
	dataset "covid-dashboard-service/internal/dataset/core/domain"
)

// FilterRecords keeps records whose location is selected and whose date lies in
// [From, To], both ends inclusive. An empty selection or From after To gives an
// empty view.
func FilterRecords(ds *dataset.Dataset, c domain.Criteria) domain.FilteredView {
	view := domain.FilteredView{Records: []*dataset.Record{}}
	if ds == nil || len(c.Locations) == 0 || c.From.After(c.To) {
		return view
	}

	for _, r := range ds.Records {
		if _, ok := c.Locations[r.Location]; !ok {
			continue
		}
		if r.Date.Before(c.From) || r.Date.After(c.To) {
			continue
		}
		view.Records = append(view.Records, r)
	}
	return view
}
