package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkirkendall/armeasure/version"
)

var rootCmd = &cobra.Command{
	Use:   "armeasure",
	Short: "Point-to-point AR measuring core and device bridge",
	Long: `armeasure hosts the core of a single-screen AR measuring tool: a box
gizmo stretched between a fixed start point and the live surface hit
point, with the distance shown as it grows. It can serve device shells
over a websocket bridge, replay recorded measuring runs, and measure
directly between two points.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
