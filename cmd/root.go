package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/model"
	"github.com/drivesight/drivesight/pkg/export"
)

var (
	cfgPath   string
	inputPath string
)

var rootCmd = &cobra.Command{
	Use:   "drivesight",
	Short: "Driving data analytics engine",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (defaults apply when empty)")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-", "drives JSON file, - for stdin")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func readDrives() ([]model.RawDrive, error) {
	var r io.Reader = os.Stdin
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		return export.ReadDrives(f)
	}
	return export.ReadDrives(r)
}
