// Package render draws dashboard charts as PNG images with go-chart.
package render

import (
	"errors"
	"io"
	"sort"
	"time"

	"covid-dashboard-service/internal/dashboard/core/domain"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData means there is nothing plottable; go-chart needs two points per line.
var ErrNoData = errors.New("not enough data to draw chart")

type ChartRenderer struct {
	Width  int
	Height int
}

func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{Width: 1024, Height: 480}
}

// dotStyle renders points only, no connecting line.
func dotStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// Trend draws one line per location. Missing values are skipped.
func (r *ChartRenderer) Trend(w io.Writer, points []domain.TrendPoint) error {
	byLocation := make(map[string]*chart.TimeSeries)
	for _, p := range points {
		if p.NewCasesSmoothed == nil {
			continue
		}
		s, ok := byLocation[p.Location]
		if !ok {
			s = &chart.TimeSeries{Name: p.Location}
			byLocation[p.Location] = s
		}
		s.XValues = append(s.XValues, p.Date)
		s.YValues = append(s.YValues, *p.NewCasesSmoothed)
	}

	names := make([]string, 0, len(byLocation))
	for name, s := range byLocation {
		if len(s.XValues) >= 2 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ErrNoData
	}
	sort.Strings(names)

	var ys []float64
	for _, name := range names {
		ys = append(ys, byLocation[name].YValues...)
	}
	if flat(ys) {
		return ErrNoData
	}

	series := make([]chart.Series, 0, len(names))
	for i, name := range names {
		s := byLocation[name]
		s.Style = chart.Style{StrokeColor: chart.GetDefaultColor(i), StrokeWidth: 2}
		series = append(series, *s)
	}

	ch := chart.Chart{
		Title:      "Daily New Cases (7-day avg)",
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Date", ValueFormatter: chart.TimeValueFormatterWithFormat(time.DateOnly)},
		YAxis:      chart.YAxis{Name: "New Cases (7-day avg)"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// Vaccinations draws one bar per location with a known percentage.
func (r *ChartRenderer) Vaccinations(w io.Writer, bars []domain.VaccinationBar) error {
	values := make([]chart.Value, 0, len(bars))
	for i, b := range bars {
		if b.FullyVaccinatedPercent == nil {
			continue
		}
		values = append(values, chart.Value{
			Label: b.Location,
			Value: *b.FullyVaccinatedPercent,
			Style: chart.Style{FillColor: chart.GetDefaultColor(i), StrokeColor: chart.GetDefaultColor(i)},
		})
	}
	if len(values) == 0 {
		return ErrNoData
	}

	bc := chart.BarChart{
		Title:    "Fully Vaccinated % by Country",
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: values,
	}
	return bc.Render(chart.PNG, w)
}

// Testing draws tests-per-thousand against positivity, one colour per location.
func (r *ChartRenderer) Testing(w io.Writer, points []domain.ScatterPoint) error {
	byLocation := make(map[string]*chart.ContinuousSeries)
	for _, p := range points {
		s, ok := byLocation[p.Location]
		if !ok {
			s = &chart.ContinuousSeries{Name: p.Location}
			byLocation[p.Location] = s
		}
		s.XValues = append(s.XValues, p.NewTestsPerThousand)
		s.YValues = append(s.YValues, p.PositiveRate)
	}
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.NewTestsPerThousand)
		ys = append(ys, p.PositiveRate)
	}
	if flat(xs) || flat(ys) {
		return ErrNoData
	}

	names := make([]string, 0, len(byLocation))
	for name := range byLocation {
		names = append(names, name)
	}
	sort.Strings(names)

	series := make([]chart.Series, 0, len(names))
	for i, name := range names {
		s := byLocation[name]
		s.Style = dotStyle(chart.GetDefaultColor(i))
		series = append(series, *s)
	}

	ch := chart.Chart{
		Title:      "Testing vs Positivity",
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "New Tests (per 1k)"},
		YAxis:      chart.YAxis{Name: "Positivity Rate"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// flat reports whether vs has no spread; go-chart refuses a zero-width axis range.
func flat(vs []float64) bool {
	if len(vs) < 2 {
		return true
	}
	for _, v := range vs[1:] {
		if v != vs[0] {
			return false
		}
	}
	return true
}
