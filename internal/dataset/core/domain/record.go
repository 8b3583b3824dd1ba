package domain

import (
	"sort"
	"time"
)

// WorldLocation is the synthetic aggregate location in the OWID dataset.
const WorldLocation = "World"

// DateLayout is the calendar date format used by the source and the API.
const DateLayout = "2006-01-02"

// Record is one (location, date) row. A nil metric means the source had no value.
type Record struct {
	ISOCode   string
	Continent string
	Location  string
	Date      time.Time // UTC midnight

	TotalCases        *float64
	NewCases          *float64
	NewCasesSmoothed  *float64
	TotalDeaths       *float64
	NewDeaths         *float64
	TotalVaccinations *float64

	PeopleFullyVaccinatedPerHundred *float64
	NewTestsPerThousand             *float64
	PositiveRate                    *float64
}

// Dataset is immutable once built; every reader shares the same instance.
type Dataset struct {
	Version   string
	Source    string
	FetchedAt time.Time
	Records   []*Record
}

// Float returns a pointer to v, for building records.
func Float(v float64) *float64 {
	return &v
}

// Date truncates t to a UTC calendar date.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Locations returns the distinct location names, sorted.
func (d *Dataset) Locations() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range d.Records {
		if _, ok := seen[r.Location]; ok {
			continue
		}
		seen[r.Location] = struct{}{}
		out = append(out, r.Location)
	}
	sort.Strings(out)
	return out
}

// DateBounds returns the min and max record dates; ok is false for an empty dataset.
func (d *Dataset) DateBounds() (first, last time.Time, ok bool) {
	for i, r := range d.Records {
		if i == 0 || r.Date.Before(first) {
			first = r.Date
		}
		if i == 0 || r.Date.After(last) {
			last = r.Date
		}
	}
	return first, last, len(d.Records) > 0
}

// LatestDate is the maximum date across all locations.
func (d *Dataset) LatestDate() (time.Time, bool) {
	_, last, ok := d.DateBounds()
	return last, ok
}
