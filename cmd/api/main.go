package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "covid-dashboard-service/docs"
)

var configPath string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "covid-dashboard",
		Short:         "COVID-19 dashboard API",
		Long:          `Serves filtered OWID COVID-19 data, summary cards and chart projections.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file (optional)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newSummaryCommand())
	return root
}

// @title COVID-19 Dashboard API
// @version 1.0
// @description Filtered OWID COVID-19 data, summary cards and chart projections.
// @BasePath /
func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
