package usecase_test

import (
	"time"

	dataset "covid-dashboard-service/internal/dataset/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(dataset.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func f(v float64) *float64 { return dataset.Float(v) }

func rec(location, iso, date string) *dataset.Record {
	return &dataset.Record{Location: location, ISOCode: iso, Date: day(date)}
}

// sampleDataset: three locations over three days; latest date 2021-06-03.
func sampleDataset() *dataset.Dataset {
	var recs []*dataset.Record
	for _, d := range []string{"2021-06-01", "2021-06-02", "2021-06-03"} {
		w := rec("World", "OWID_WRL", d)
		w.TotalCases = f(1000)
		w.NewCases = f(10)
		w.NewCasesSmoothed = f(9.5)
		w.TotalDeaths = f(50)
		w.NewDeaths = f(1)
		w.TotalVaccinations = f(2_300_000_000)
		w.PeopleFullyVaccinatedPerHundred = f(12.5)

		b := rec("Brazil", "BRA", d)
		b.TotalCases = f(500)
		b.NewTestsPerThousand = f(0.8)
		b.PositiveRate = f(0.12)

		p := rec("Peru", "PER", d)
		p.NewTestsPerThousand = f(1.1)

		recs = append(recs, w, b, p)
	}
	return &dataset.Dataset{Version: "v1", Records: recs}
}
