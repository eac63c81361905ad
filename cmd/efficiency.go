package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drivesight/drivesight/app"
	"github.com/drivesight/drivesight/pkg/export"
)

var efficiencyCmd = &cobra.Command{
	Use:   "efficiency",
	Short: "Analyze energy efficiency trends and contributing factors",
	RunE:  runEfficiency,
}

func init() {
	rootCmd.AddCommand(efficiencyCmd)
}

func runEfficiency(cmd *cobra.Command, args []string) error {
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
	analysis, err := svc.AnalyzeEfficiency(drives)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, analysis)
}
