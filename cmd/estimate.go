package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drivesight/drivesight/app"
	"github.com/drivesight/drivesight/pkg/export"
)

var (
	estimateDistance float64
	estimateBattery  float64
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate energy, cost and charging stops for a planned trip",
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().Float64VarP(&estimateDistance, "distance", "d", 0, "planned distance in miles")
	estimateCmd.Flags().Float64VarP(&estimateBattery, "battery", "b", 100, "current charge percent")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if estimateDistance <= 0 {
		return fmt.Errorf("--distance must be positive")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	est := svc.EstimateFutureTrip(estimateDistance, estimateBattery)
	return export.WriteJSON(os.Stdout, est)
}
