package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	dashboardHttp "covid-dashboard-service/internal/dashboard/adapters/http/fiber"
	"covid-dashboard-service/internal/dashboard/adapters/render"
	"covid-dashboard-service/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newApp(d *deps) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(requestid.New())

	// dashboard endpoints
	h := dashboardHttp.NewDashboardHandler(d.dashboard, render.NewChartRenderer())
	app.Get("/dashboard", h.GetDashboard)
	app.Get("/dashboard/options", h.GetOptions)
	app.Get("/dashboard/summary", h.GetSummary)
	app.Get("/dashboard/trend", h.GetTrend)
	app.Get("/dashboard/map", h.GetMap)
	app.Get("/dashboard/vaccinations", h.GetVaccinations)
	app.Get("/dashboard/testing", h.GetTesting)

	// rendered charts
	app.Get("/charts/trend.png", h.GetTrendPNG)
	app.Get("/charts/vaccinations.png", h.GetVaccinationsPNG)
	app.Get("/charts/testing.png", h.GetTestingPNG)

	// ops
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{})))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	return app
}

func runServe(ctx context.Context) error {
	d, err := newDeps(ctx, configPath)
	if err != nil {
		return err
	}
	defer d.Close()

	app := newApp(d)
	addr := d.cfg.Server.Addr

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			d.log.Error("fiber stopped", logger.Error(err))
		}
	}()

	d.log.Info("server started", logger.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-ctx.Done():
	}

	d.log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), d.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		d.log.Error("fiber shutdown error", logger.Error(err))
	}

	d.log.Info("server exiting")
	return nil
}
