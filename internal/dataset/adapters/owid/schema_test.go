package owid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "iso_code,continent,location,date,total_cases,new_cases,new_cases_smoothed,total_deaths,new_deaths,total_vaccinations,people_fully_vaccinated_per_hundred,new_tests_per_thousand,positive_rate,population\n"

func TestParseCSV_ParsesRowsAndMissingValues(t *testing.T) {
	body := header +
		"OWID_WRL,,World,2021-06-01,1000,10,9.5,50,1,2000000,12.5,,,7800000000\n" +
		"BRA,South America,Brazil,2021-06-01,,,,,,,,0.8,0.12,212000000\n"

	recs, err := ParseCSV(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	w := recs[0]
	assert.Equal(t, "OWID_WRL", w.ISOCode)
	assert.Equal(t, "", w.Continent)
	assert.Equal(t, "World", w.Location)
	assert.Equal(t, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), w.Date)
	require.NotNil(t, w.TotalCases)
	assert.Equal(t, 1000.0, *w.TotalCases)
	require.NotNil(t, w.NewCasesSmoothed)
	assert.Equal(t, 9.5, *w.NewCasesSmoothed)
	assert.Nil(t, w.NewTestsPerThousand)
	assert.Nil(t, w.PositiveRate)

	b := recs[1]
	assert.Nil(t, b.TotalCases)
	assert.Nil(t, b.TotalDeaths)
	require.NotNil(t, b.PositiveRate)
	assert.Equal(t, 0.12, *b.PositiveRate)
}

func TestParseCSV_ColumnOrderIndependentAndContinentOptional(t *testing.T) {
	body := "location,date,iso_code,total_cases,new_cases,new_cases_smoothed,total_deaths,new_deaths,total_vaccinations,people_fully_vaccinated_per_hundred,new_tests_per_thousand,positive_rate\n" +
		"Peru,2020-12-31,PER,5,,,,,,,,\n"

	recs, err := ParseCSV(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "PER", recs[0].ISOCode)
	assert.Equal(t, 5.0, *recs[0].TotalCases)
}

func TestParseCSV_MissingColumn(t *testing.T) {
	body := "iso_code,location,date\nPER,Peru,2020-01-01\n"

	_, err := ParseCSV(strings.NewReader(body))
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "total_cases")
}

func TestParseCSV_MalformedDate(t *testing.T) {
	body := header + "PER,South America,Peru,01/02/2020,1,,,,,,,,,\n"

	_, err := ParseCSV(strings.NewReader(body))
	require.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseCSV_MalformedNumber(t *testing.T) {
	body := header + "PER,South America,Peru,2020-01-02,many,,,,,,,,,\n"

	_, err := ParseCSV(strings.NewReader(body))
	require.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), "total_cases")
}

func TestParseCSV_EmptyInput(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestParseMetric(t *testing.T) {
	v, err := ParseMetric("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseMetric("1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, *v)

	_, err = ParseMetric("n/a")
	assert.Error(t, err)

	for _, in := range []string{"NaN", "nan", "Inf", "-Inf", "+Infinity"} {
		_, err = ParseMetric(in)
		assert.ErrorIs(t, err, errNonFinite, in)
	}
}

func TestParseCSV_NonFiniteNumber(t *testing.T) {
	body := header + "OWID_WRL,,World,2021-06-01,100,1,NaN,,,,,,,\n"

	recs, err := ParseCSV(strings.NewReader(body))
	require.ErrorIs(t, err, ErrMalformedRow)
	assert.Nil(t, recs)
	assert.Contains(t, err.Error(), "new_cases_smoothed")
}
