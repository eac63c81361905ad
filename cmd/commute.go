package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drivesight/drivesight/app"
	"github.com/drivesight/drivesight/pkg/export"
)

var commuteCmd = &cobra.Command{
	Use:   "commute",
	Short: "Cluster drives into recurring routes",
	RunE:  runCommute,
}

func init() {
	rootCmd.AddCommand(commuteCmd)
}

func runCommute(cmd *cobra.Command, args []string) error {
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
	analysis, err := svc.AnalyzeCommutes(drives)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, analysis)
}
