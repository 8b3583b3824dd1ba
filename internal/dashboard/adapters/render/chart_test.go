package render

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"covid-dashboard-service/internal/dashboard/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func assertPNG(t *testing.T, buf *bytes.Buffer, r *ChartRenderer) {
	t.Helper()
	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, r.Width, img.Bounds().Dx())
	assert.Equal(t, r.Height, img.Bounds().Dy())
}

func TestTrend_RendersPNG(t *testing.T) {
	r := NewChartRenderer()
	d0 := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	pts := []domain.TrendPoint{
		{Date: d0, Location: "World", NewCasesSmoothed: fp(100)},
		{Date: d0.AddDate(0, 0, 1), Location: "World", NewCasesSmoothed: fp(150)},
		{Date: d0.AddDate(0, 0, 2), Location: "World", NewCasesSmoothed: nil},
		{Date: d0, Location: "Brazil", NewCasesSmoothed: fp(20)},
		{Date: d0.AddDate(0, 0, 1), Location: "Brazil", NewCasesSmoothed: fp(30)},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Trend(&buf, pts))
	assertPNG(t, &buf, r)
}

func TestTrend_NoData(t *testing.T) {
	r := NewChartRenderer()
	pts := []domain.TrendPoint{{Date: time.Now(), Location: "World", NewCasesSmoothed: fp(1)}}

	var buf bytes.Buffer
	assert.ErrorIs(t, r.Trend(&buf, pts), ErrNoData)
	assert.ErrorIs(t, r.Trend(&buf, nil), ErrNoData)
}

func TestVaccinations_RendersPNG(t *testing.T) {
	r := NewChartRenderer()
	bars := []domain.VaccinationBar{
		{Location: "Brazil", FullyVaccinatedPercent: fp(40)},
		{Location: "Peru", FullyVaccinatedPercent: nil},
		{Location: "World", FullyVaccinatedPercent: fp(55.5)},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Vaccinations(&buf, bars))
	assertPNG(t, &buf, r)
}

func TestVaccinations_NoData(t *testing.T) {
	var buf bytes.Buffer
	err := NewChartRenderer().Vaccinations(&buf, []domain.VaccinationBar{{Location: "Peru"}})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestTesting_RendersPNG(t *testing.T) {
	r := NewChartRenderer()
	pts := []domain.ScatterPoint{
		{Location: "Brazil", NewTestsPerThousand: 0.5, PositiveRate: 0.1},
		{Location: "Brazil", NewTestsPerThousand: 1.5, PositiveRate: 0.2},
		{Location: "Peru", NewTestsPerThousand: 2.0, PositiveRate: 0.05},
		{Location: "Peru", NewTestsPerThousand: 2.5, PositiveRate: 0.07},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Testing(&buf, pts))
	assertPNG(t, &buf, r)
}

func TestTesting_NoData(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, NewChartRenderer().Testing(&buf, nil), ErrNoData)
}
