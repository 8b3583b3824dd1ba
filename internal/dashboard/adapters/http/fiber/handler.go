package fiber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"covid-dashboard-service/internal/dashboard/adapters/render"
	"covid-dashboard-service/internal/dashboard/core/domain"
	"covid-dashboard-service/internal/dashboard/core/usecase"
	dataset "covid-dashboard-service/internal/dataset/core/domain"

	"github.com/gofiber/fiber/v2"
)

const datasetVersionHeader = "X-Dataset-Version"

var errInvalidQuery = errors.New("invalid query")

type GetDashboardUseCase interface {
	Options(ctx context.Context) (*domain.Options, error)
	Summary(ctx context.Context) (*domain.SummaryCards, error)
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
}

type ChartRenderer interface {
	Trend(w io.Writer, points []domain.TrendPoint) error
	Vaccinations(w io.Writer, bars []domain.VaccinationBar) error
	Testing(w io.Writer, points []domain.ScatterPoint) error
}

type DashboardHandler struct {
	uc       GetDashboardUseCase
	renderer ChartRenderer
}

func NewDashboardHandler(uc GetDashboardUseCase, renderer ChartRenderer) *DashboardHandler {
	return &DashboardHandler{uc: uc, renderer: renderer}
}

// GetOptions godoc
// @Summary Filter control options
// @Description Returns selectable locations, default selection and the dataset date bounds
// @Tags Dashboard
// @Produce json
// @Success 200 {object} OptionsResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/options [get]
func (h *DashboardHandler) GetOptions(c *fiber.Ctx) error {
	opts, err := h.uc.Options(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(datasetVersionHeader, opts.DatasetVersion)

	return c.Status(http.StatusOK).JSON(OptionsResponse{
		Locations:        opts.Locations,
		DefaultLocations: opts.DefaultLocations,
		MinDate:          opts.MinDate.Format(dataset.DateLayout),
		MaxDate:          opts.MaxDate.Format(dataset.DateLayout),
		LastUpdated:      opts.LastUpdated,
	})
}

// GetSummary godoc
// @Summary Global summary cards
// @Description Latest World totals, formatted for display
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	s, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(datasetVersionHeader, s.DatasetVersion)
	return c.Status(http.StatusOK).JSON(toSummaryResponse(s))
}

// GetDashboard godoc
// @Summary Full dashboard
// @Description Summary cards plus the data of every chart for one filter selection
// @Tags Dashboard
// @Produce json
// @Param locations query string false "Comma separated locations; omit for defaults, empty for none"
// @Param from query string false "Start date YYYY-MM-DD (inclusive)"
// @Param to query string false "End date YYYY-MM-DD (inclusive)"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.execute(c)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(d))
}

// GetTrend godoc
// @Summary Daily new cases trend
// @Description Smoothed new cases per location and date
// @Tags Charts
// @Produce json
// @Param locations query string false "Comma separated locations; omit for defaults, empty for none"
// @Param from query string false "Start date YYYY-MM-DD (inclusive)"
// @Param to query string false "End date YYYY-MM-DD (inclusive)"
// @Success 200 {array} TrendPointResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/trend [get]
func (h *DashboardHandler) GetTrend(c *fiber.Ctx) error {
	d, err := h.execute(c)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTrendResponse(d.Trend))
}

// GetMap godoc
// @Summary Choropleth data
// @Description Total cases per country at the latest dataset date
// @Tags Charts
// @Produce json
// @Success 200 {array} MapPointResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/map [get]
func (h *DashboardHandler) GetMap(c *fiber.Ctx) error {
	// the map is not filtered, so query parameters are ignored
	d, err := h.uc.Execute(c.UserContext(), usecase.GetDashboardInput{})
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(datasetVersionHeader, d.DatasetVersion)
	return c.Status(http.StatusOK).JSON(toMapResponse(d.Map))
}

// GetVaccinations godoc
// @Summary Vaccination progress
// @Description Fully vaccinated per hundred for the selected locations at the latest dataset date
// @Tags Charts
// @Produce json
// @Param locations query string false "Comma separated locations; omit for defaults, empty for none"
// @Success 200 {array} VaccinationBarResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/vaccinations [get]
func (h *DashboardHandler) GetVaccinations(c *fiber.Ctx) error {
	d, err := h.execute(c)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toVaccinationResponse(d.Vaccinations))
}

// GetTesting godoc
// @Summary Testing vs positivity
// @Description Scatter points for rows reporting both tests and positivity
// @Tags Charts
// @Produce json
// @Param locations query string false "Comma separated locations; omit for defaults, empty for none"
// @Param from query string false "Start date YYYY-MM-DD (inclusive)"
// @Param to query string false "End date YYYY-MM-DD (inclusive)"
// @Success 200 {array} ScatterPointResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/testing [get]
func (h *DashboardHandler) GetTesting(c *fiber.Ctx) error {
	d, err := h.execute(c)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toScatterResponse(d.Testing))
}

// GetTrendPNG godoc
// @Summary Trend chart image
// @Description Renders the daily trend line as PNG
// @Tags Charts
// @Produce png
// @Param locations query string false "Comma separated locations; omit for defaults, empty for none"
// @Param from query string false "Start date YYYY-MM-DD (inclusive)"
// @Param to query string false "End date YYYY-MM-DD (inclusive)"
// @Success 200 {file} binary
// @Success 204 "nothing to draw"
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /charts/trend.png [get]
func (h *DashboardHandler) GetTrendPNG(c *fiber.Ctx) error {
	return h.renderPNG(c, func(w io.Writer, d *domain.Dashboard) error {
		return h.renderer.Trend(w, d.Trend)
	})
}

// GetVaccinationsPNG godoc
// @Summary Vaccination chart image
// @Description Renders the vaccination bars as PNG
// @Tags Charts
// @Produce png
// @Param locations query string false "Comma separated locations; omit for defaults, empty for none"
// @Success 200 {file} binary
// @Success 204 "nothing to draw"
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /charts/vaccinations.png [get]
func (h *DashboardHandler) GetVaccinationsPNG(c *fiber.Ctx) error {
	return h.renderPNG(c, func(w io.Writer, d *domain.Dashboard) error {
		return h.renderer.Vaccinations(w, d.Vaccinations)
	})
}

// GetTestingPNG godoc
// @Summary Testing scatter image
// @Description Renders the testing scatter as PNG
// @Tags Charts
// @Produce png
// @Param locations query string false "Comma separated locations; omit for defaults, empty for none"
// @Param from query string false "Start date YYYY-MM-DD (inclusive)"
// @Param to query string false "End date YYYY-MM-DD (inclusive)"
// @Success 200 {file} binary
// @Success 204 "nothing to draw"
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /charts/testing.png [get]
func (h *DashboardHandler) GetTestingPNG(c *fiber.Ctx) error {
	return h.renderPNG(c, func(w io.Writer, d *domain.Dashboard) error {
		return h.renderer.Testing(w, d.Testing)
	})
}

func (h *DashboardHandler) renderPNG(c *fiber.Ctx, draw func(io.Writer, *domain.Dashboard) error) error {
	d, err := h.execute(c)
	if err != nil {
		return h.writeError(c, err)
	}

	var buf bytes.Buffer
	if err := draw(&buf, d); err != nil {
		if errors.Is(err, render.ErrNoData) {
			return c.SendStatus(http.StatusNoContent)
		}
		return h.writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (h *DashboardHandler) execute(c *fiber.Ctx) (*domain.Dashboard, error) {
	in, err := parseInput(c)
	if err != nil {
		return nil, err
	}
	d, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return nil, err
	}
	c.Set(datasetVersionHeader, d.DatasetVersion)
	return d, nil
}

// parseInput reads locations (comma separated, repeatable), from and to.
// An absent locations parameter leaves the selection to the defaults.
func parseInput(c *fiber.Ctx) (usecase.GetDashboardInput, error) {
	var in usecase.GetDashboardInput

	args := c.Context().QueryArgs()
	if args.Has("locations") {
		in.Locations = []string{}
		for _, raw := range args.PeekMulti("locations") {
			for _, l := range strings.Split(string(raw), ",") {
				if l = strings.TrimSpace(l); l != "" {
					in.Locations = append(in.Locations, l)
				}
			}
		}
	}

	for name, dst := range map[string]**time.Time{"from": &in.From, "to": &in.To} {
		v := c.Query(name, "")
		if v == "" {
			continue
		}
		t, err := time.Parse(dataset.DateLayout, v)
		if err != nil {
			return in, fmt.Errorf("%w: invalid '%s' parameter, want YYYY-MM-DD", errInvalidQuery, name)
		}
		*dst = &t
	}

	return in, nil
}

func (h *DashboardHandler) writeError(c *fiber.Ctx, err error) error {
	var fe *dataset.FetchError
	switch {
	case errors.Is(err, errInvalidQuery):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "snapshot_not_found",
			Message: err.Error(),
		})
	case errors.As(err, &fe):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "dataset_unavailable",
			Message: fe.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
