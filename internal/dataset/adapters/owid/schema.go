package owid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"covid-dashboard-service/internal/dataset/core/domain"
)

var (
	ErrMissingColumn = errors.New("missing expected column")
	ErrMalformedRow  = errors.New("malformed row")
)

// Columns lists the fields read from the OWID table. continent is optional.
var Columns = []string{
	"iso_code",
	"continent",
	"location",
	"date",
	"total_cases",
	"new_cases",
	"new_cases_smoothed",
	"total_deaths",
	"new_deaths",
	"total_vaccinations",
	"people_fully_vaccinated_per_hundred",
	"new_tests_per_thousand",
	"positive_rate",
}

var optionalColumns = map[string]bool{"continent": true}

// metricFields binds metric columns to record fields.
var metricFields = map[string]func(*domain.Record) **float64{
	"total_cases":                         func(r *domain.Record) **float64 { return &r.TotalCases },
	"new_cases":                           func(r *domain.Record) **float64 { return &r.NewCases },
	"new_cases_smoothed":                  func(r *domain.Record) **float64 { return &r.NewCasesSmoothed },
	"total_deaths":                        func(r *domain.Record) **float64 { return &r.TotalDeaths },
	"new_deaths":                          func(r *domain.Record) **float64 { return &r.NewDeaths },
	"total_vaccinations":                  func(r *domain.Record) **float64 { return &r.TotalVaccinations },
	"people_fully_vaccinated_per_hundred": func(r *domain.Record) **float64 { return &r.PeopleFullyVaccinatedPerHundred },
	"new_tests_per_thousand":              func(r *domain.Record) **float64 { return &r.NewTestsPerThousand },
	"positive_rate":                       func(r *domain.Record) **float64 { return &r.PositiveRate },
}

// ParseCSV reads an OWID-shaped CSV. Unknown columns are ignored; a missing
// required column, an unparseable date or a non-numeric metric fails the whole parse.
func ParseCSV(r io.Reader) ([]*domain.Record, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range Columns {
		if _, ok := index[c]; !ok && !optionalColumns[c] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []*domain.Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}

		date, err := time.Parse(domain.DateLayout, cell(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: date %q", ErrMalformedRow, line, cell(row, "date"))
		}

		rec := &domain.Record{
			ISOCode:   cell(row, "iso_code"),
			Continent: cell(row, "continent"),
			Location:  cell(row, "location"),
			Date:      date,
		}
		if rec.Location == "" {
			return nil, fmt.Errorf("%w: line %d: empty location", ErrMalformedRow, line)
		}

		for col, field := range metricFields {
			v, err := ParseMetric(cell(row, col))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s: %v", ErrMalformedRow, line, col, err)
			}
			*field(rec) = v
		}
		records = append(records, rec)
	}

	return records, nil
}

var errNonFinite = errors.New("non-finite value")

// ParseMetric maps an empty cell to nil. NaN and infinities are rejected.
func ParseMetric(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %q", errNonFinite, s)
	}
	return &v, nil
}
