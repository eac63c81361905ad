package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drivesight/drivesight/app"
	"github.com/drivesight/drivesight/pkg/export"
)

var tripsCSV bool

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "Merge raw drives into continuous journeys",
	RunE:  runTrips,
}

func init() {
	tripsCmd.Flags().BoolVar(&tripsCSV, "csv", false, "emit CSV instead of JSON")
	rootCmd.AddCommand(tripsCmd)
}

func runTrips(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	drives, err := readDrives()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	merged, err := svc.MergeTrips(drives)
	if err != nil {
		return err
	}
	if tripsCSV {
		return export.WriteTripsCSV(os.Stdout, merged)
	}
	return export.WriteJSON(os.Stdout, merged)
}
