package main

import (
	"fmt"
	"io"

	"covid-dashboard-service/internal/dashboard/core/domain"
	"covid-dashboard-service/internal/dashboard/core/usecase"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the global summary cards",
		Long:  `Loads the dataset once and prints the latest World totals as a table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			defer d.Close()

			s, err := d.dashboard.Summary(cmd.Context())
			if err != nil {
				return fmt.Errorf("summary: %w", err)
			}
			renderSummary(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func renderSummary(w io.Writer, s *domain.SummaryCards) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Global summary, " + s.Date.Format(usecase.LastUpdatedLayout))
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Total cases", s.TotalCases},
		{"New cases", s.NewCases},
		{"Total deaths", s.TotalDeaths},
		{"New deaths", s.NewDeaths},
		{"Total vaccinations", s.TotalVaccinations},
		{"Mortality rate", s.MortalityRate},
	})
	t.Render()
}
