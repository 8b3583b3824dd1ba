package usecase

import (
	"sort"
	"strings"
	"time"

	"covid-dashboard-service/internal/dashboard/core/domain"
	dataset "covid-dashboard-service/internal/dataset/core/domain"
)

// aggregatePrefix marks OWID pseudo-countries (World, continents, income groups).
const aggregatePrefix = "OWID_"

func BuildSummary(r *dataset.Record) domain.SummaryCards {
	return domain.SummaryCards{
		Date:              r.Date,
		TotalCases:        FormatMagnitude(r.TotalCases),
		NewCases:          FormatMagnitude(r.NewCases),
		TotalDeaths:       FormatMagnitude(r.TotalDeaths),
		NewDeaths:         FormatMagnitude(r.NewDeaths),
		TotalVaccinations: FormatMagnitude(r.TotalVaccinations),
		MortalityRate:     FormatPercent(MortalityRate(r.TotalDeaths, r.TotalCases)),
	}
}

// TrendSeries projects the view to (date, location, smoothed new cases),
// ordered by location then date. Missing values stay nil so gaps are visible.
func TrendSeries(view domain.FilteredView) []domain.TrendPoint {
	out := make([]domain.TrendPoint, 0, len(view.Records))
	for _, r := range view.Records {
		out = append(out, domain.TrendPoint{
			Date:             r.Date,
			Location:         r.Location,
			NewCasesSmoothed: r.NewCasesSmoothed,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func rowsAt(ds *dataset.Dataset, day time.Time) []*dataset.Record {
	var out []*dataset.Record
	for _, r := range ds.Records {
		if r.Date.Equal(day) {
			out = append(out, r)
		}
	}
	return out
}

// ChoroplethPoints takes every country row at the dataset's latest date that has total_cases.
func ChoroplethPoints(ds *dataset.Dataset) []domain.MapPoint {
	out := []domain.MapPoint{}
	latest, ok := ds.LatestDate()
	if !ok {
		return out
	}
	for _, r := range rowsAt(ds, latest) {
		if r.TotalCases == nil || r.ISOCode == "" || strings.HasPrefix(r.ISOCode, aggregatePrefix) {
			continue
		}
		out = append(out, domain.MapPoint{ISOCode: r.ISOCode, Location: r.Location, TotalCases: *r.TotalCases})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISOCode < out[j].ISOCode })
	return out
}

// VaccinationBars takes the selected locations' rows at the dataset's latest date.
// A location without a row on that date is absent; a missing percentage stays nil.
func VaccinationBars(ds *dataset.Dataset, locations map[string]struct{}) []domain.VaccinationBar {
	out := []domain.VaccinationBar{}
	latest, ok := ds.LatestDate()
	if !ok || len(locations) == 0 {
		return out
	}
	for _, r := range rowsAt(ds, latest) {
		if _, ok := locations[r.Location]; !ok {
			continue
		}
		out = append(out, domain.VaccinationBar{
			Location:               r.Location,
			FullyVaccinatedPercent: r.PeopleFullyVaccinatedPerHundred,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

// TestingScatter drops view rows lacking tests-per-thousand or positivity.
func TestingScatter(view domain.FilteredView) []domain.ScatterPoint {
	out := []domain.ScatterPoint{}
	for _, r := range view.Records {
		if r.NewTestsPerThousand == nil || r.PositiveRate == nil {
			continue
		}
		out = append(out, domain.ScatterPoint{
			Date:                r.Date,
			Location:            r.Location,
			NewTestsPerThousand: *r.NewTestsPerThousand,
			PositiveRate:        *r.PositiveRate,
			TotalCases:          r.TotalCases,
		})
	}
	return out
}
