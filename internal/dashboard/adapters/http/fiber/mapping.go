package fiber

import (
	"sort"

	"covid-dashboard-service/internal/dashboard/core/domain"
	"covid-dashboard-service/internal/dashboard/core/usecase"
	dataset "covid-dashboard-service/internal/dataset/core/domain"
)

func toSummaryResponse(s *domain.SummaryCards) *SummaryResponse {
	if s == nil {
		return nil
	}
	return &SummaryResponse{
		Date:              s.Date.Format(dataset.DateLayout),
		TotalCases:        s.TotalCases,
		NewCases:          s.NewCases,
		TotalDeaths:       s.TotalDeaths,
		NewDeaths:         s.NewDeaths,
		TotalVaccinations: s.TotalVaccinations,
		MortalityRate:     s.MortalityRate,
	}
}

func toTrendResponse(pts []domain.TrendPoint) []TrendPointResponse {
	out := make([]TrendPointResponse, 0, len(pts))
	for _, p := range pts {
		out = append(out, TrendPointResponse{
			Date:             p.Date.Format(dataset.DateLayout),
			Location:         p.Location,
			NewCasesSmoothed: p.NewCasesSmoothed,
		})
	}
	return out
}

func toMapResponse(pts []domain.MapPoint) []MapPointResponse {
	out := make([]MapPointResponse, 0, len(pts))
	for _, p := range pts {
		out = append(out, MapPointResponse{ISOCode: p.ISOCode, Location: p.Location, TotalCases: p.TotalCases})
	}
	return out
}

func toVaccinationResponse(bars []domain.VaccinationBar) []VaccinationBarResponse {
	out := make([]VaccinationBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, VaccinationBarResponse{Location: b.Location, FullyVaccinatedPercent: b.FullyVaccinatedPercent})
	}
	return out
}

func toScatterResponse(pts []domain.ScatterPoint) []ScatterPointResponse {
	out := make([]ScatterPointResponse, 0, len(pts))
	for _, p := range pts {
		out = append(out, ScatterPointResponse{
			Date:                p.Date.Format(dataset.DateLayout),
			Location:            p.Location,
			NewTestsPerThousand: p.NewTestsPerThousand,
			PositiveRate:        p.PositiveRate,
			TotalCases:          p.TotalCases,
		})
	}
	return out
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	locations := d.Criteria.LocationList()
	sort.Strings(locations)

	resp := DashboardResponse{
		LatestDate:  d.LatestDate.Format(dataset.DateLayout),
		LastUpdated: d.LatestDate.Format(usecase.LastUpdatedLayout),
		Criteria: CriteriaResponse{
			Locations: locations,
			From:      d.Criteria.From.Format(dataset.DateLayout),
			To:        d.Criteria.To.Format(dataset.DateLayout),
		},
		Summary:      toSummaryResponse(d.Summary),
		Trend:        toTrendResponse(d.Trend),
		Map:          toMapResponse(d.Map),
		Vaccinations: toVaccinationResponse(d.Vaccinations),
		Testing:      toScatterResponse(d.Testing),
	}
	if d.SummaryErr != nil {
		resp.SummaryError = d.SummaryErr.Error()
	}
	return resp
}
