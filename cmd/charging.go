package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drivesight/drivesight/app"
	"github.com/drivesight/drivesight/core/model"
	"github.com/drivesight/drivesight/pkg/export"
)

var chargingCSV bool

var chargingCmd = &cobra.Command{
	Use:   "charging",
	Short: "Detect charging sessions and attribute their cost",
	RunE:  runCharging,
}

func init() {
	chargingCmd.Flags().BoolVar(&chargingCSV, "csv", false, "emit session CSV instead of JSON")
	rootCmd.AddCommand(chargingCmd)
}

func runCharging(cmd *cobra.Command, args []string) error {
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
	sessions, analysis, err := svc.DetectCharging(drives)
	if err != nil {
		return err
	}
	if chargingCSV {
		return export.WriteSessionsCSV(os.Stdout, sessions)
	}
	return export.WriteJSON(os.Stdout, struct {
		Sessions []model.ChargingSession `json:"sessions"`
		Analysis model.ChargingAnalysis  `json:"analysis"`
	}{sessions, analysis})
}
