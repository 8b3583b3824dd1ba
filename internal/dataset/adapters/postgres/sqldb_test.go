package postgres

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLDB_FetchRecordsThroughDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	day := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{
		"iso_code", "continent", "location", "date",
		"total_cases", "new_cases", "new_cases_smoothed", "total_deaths", "new_deaths",
		"total_vaccinations", "people_fully_vaccinated_per_hundred", "new_tests_per_thousand", "positive_rate",
	}
	mock.ExpectQuery(`(?s)SELECT .* FROM "owid_covid_data"`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("BRA", "South America", "Brazil", day, 100.0, nil, nil, 3.0, nil, nil, nil, 0.5, 0.1))

	repo := NewRecordRepository(NewSQLDB(db), "owid_covid_data")
	recs, err := repo.FetchRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.Location != "Brazil" || r.Continent != "South America" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.NewCases != nil || r.TotalDeaths == nil || *r.TotalDeaths != 3 {
		t.Fatalf("unexpected metrics: new_cases=%v total_deaths=%v", r.NewCases, r.TotalDeaths)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSQLDB_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(context.DeadlineExceeded)

	if _, err := NewSQLDB(db).QueryContext(context.Background(), "SELECT 1"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestPrepare_PingsAndConfiguresPool(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()

	if err := prepare(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := db.Stats().MaxOpenConnections; got != maxOpenConns {
		t.Fatalf("expected max open conns %d, got %d", maxOpenConns, got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPrepare_PingError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = prepare(context.Background(), db)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "ping postgres") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSQLDB_NullISOCodeIsCoalesced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	day := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{
		"iso_code", "continent", "location", "date",
		"total_cases", "new_cases", "new_cases_smoothed", "total_deaths", "new_deaths",
		"total_vaccinations", "people_fully_vaccinated_per_hundred", "new_tests_per_thousand", "positive_rate",
	}
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(iso_code, '')")).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("", "", "International", day, 700.0, nil, nil, nil, nil, nil, nil, nil, nil))

	recs, err := NewRecordRepository(NewSQLDB(db), "owid_covid_data").FetchRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ISOCode != "" || recs[0].Location != "International" {
		t.Fatalf("unexpected records: %+v", recs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
