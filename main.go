package main

import (
	"os"

	"github.com/drivesight/drivesight/cmd"

	_ "github.com/drivesight/drivesight/app/plugins"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
