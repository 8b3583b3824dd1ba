package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"covid-dashboard-service/internal/dataset/core/domain"
	"covid-dashboard-service/internal/dataset/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// RecordRepository reads an OWID mirror table. It never writes.
type RecordRepository struct {
	db    DB
	table string
}

var _ ports.DatasetSourcePort = (*RecordRepository)(nil)

func NewRecordRepository(db DB, table string) *RecordRepository {
	return &RecordRepository{db: db, table: table}
}

func (r *RecordRepository) Name() string {
	return "postgres:" + r.table
}

func (r *RecordRepository) selectSQL() string {
	return fmt.Sprintf(`
SELECT
    COALESCE(iso_code, ''),
    COALESCE(continent, ''),
    location,
    date,
    total_cases,
    new_cases,
    new_cases_smoothed,
    total_deaths,
    new_deaths,
    total_vaccinations,
    people_fully_vaccinated_per_hundred,
    new_tests_per_thousand,
    positive_rate
FROM %s
ORDER BY location, date`, pq.QuoteIdentifier(r.table))
}

func (r *RecordRepository) FetchRecords(ctx context.Context) ([]*domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, r.selectSQL())
	if err != nil {
		return nil, &domain.FetchError{Source: r.Name(), Err: err}
	}
	defer rows.Close()

	var records []*domain.Record
	for rows.Next() {
		var (
			rec     domain.Record
			date    time.Time
			metrics [9]sql.NullFloat64
		)

		dest := []any{&rec.ISOCode, &rec.Continent, &rec.Location, &date}
		for i := range metrics {
			dest = append(dest, &metrics[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &domain.FetchError{Source: r.Name(), Err: err}
		}

		rec.Date = domain.Date(date)
		rec.TotalCases = nullable(metrics[0])
		rec.NewCases = nullable(metrics[1])
		rec.NewCasesSmoothed = nullable(metrics[2])
		rec.TotalDeaths = nullable(metrics[3])
		rec.NewDeaths = nullable(metrics[4])
		rec.TotalVaccinations = nullable(metrics[5])
		rec.PeopleFullyVaccinatedPerHundred = nullable(metrics[6])
		rec.NewTestsPerThousand = nullable(metrics[7])
		rec.PositiveRate = nullable(metrics[8])

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.FetchError{Source: r.Name(), Err: err}
	}

	return records, nil
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
