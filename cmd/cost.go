package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drivesight/drivesight/app"
	"github.com/drivesight/drivesight/pkg/export"
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Compute charging cost versus an equivalent gas vehicle",
	RunE:  runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
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
	analysis, err := svc.TripCost(drives)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, analysis)
}
