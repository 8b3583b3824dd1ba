package domain

import (
	"time"

	dataset "covid-dashboard-service/internal/dataset/core/domain"
)

// Criteria selects the filtered view: location set and inclusive date interval.
type Criteria struct {
	Locations map[string]struct{}
	From      time.Time
	To        time.Time
}

func NewCriteria(locations []string, from, to time.Time) Criteria {
	set := make(map[string]struct{}, len(locations))
	for _, l := range locations {
		set[l] = struct{}{}
	}
	return Criteria{Locations: set, From: dataset.Date(from), To: dataset.Date(to)}
}

// LocationList returns the selected locations in no particular order.
func (c Criteria) LocationList() []string {
	out := make([]string, 0, len(c.Locations))
	for l := range c.Locations {
		out = append(out, l)
	}
	return out
}

// FilteredView is a read-only projection of a dataset; the records are shared, never copied.
type FilteredView struct {
	Records []*dataset.Record
}

type Options struct {
	Locations        []string
	DefaultLocations []string
	MinDate          time.Time
	MaxDate          time.Time
	LastUpdated      string
	DatasetVersion   string
}

// SummaryCards are the formatted World totals. DatasetVersion is set when
// the cards come from a loaded dataset.
type SummaryCards struct {
	DatasetVersion    string
	Date              time.Time
	TotalCases        string
	NewCases          string
	TotalDeaths       string
	NewDeaths         string
	TotalVaccinations string
	MortalityRate     string
}

type TrendPoint struct {
	Date             time.Time
	Location         string
	NewCasesSmoothed *float64
}

type MapPoint struct {
	ISOCode    string
	Location   string
	TotalCases float64
}

type VaccinationBar struct {
	Location               string
	FullyVaccinatedPercent *float64
}

type ScatterPoint struct {
	Date                time.Time
	Location            string
	NewTestsPerThousand float64
	PositiveRate        float64
	TotalCases          *float64
}

// Dashboard is the result of one interaction. Summary is nil when the
// aggregate snapshot is missing; SummaryErr then says why.
type Dashboard struct {
	DatasetVersion string
	LatestDate     time.Time
	Criteria       Criteria
	Summary        *SummaryCards
	SummaryErr     error
	Trend          []TrendPoint
	Map            []MapPoint
	Vaccinations   []VaccinationBar
	Testing        []ScatterPoint
}
