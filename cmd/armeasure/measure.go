package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkirkendall/armeasure/pkg/geometry"
	"github.com/rkirkendall/armeasure/pkg/measure"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure the distance between two points",
	Long: `Measure the straight-line distance between two 3D points and report
the box pose the core would render for that run: a start point latched
at the first point and the box stretched to the second.`,
	Run: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of the start point (meters)")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of the start point (meters)")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of the start point (meters)")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of the target point (meters)")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of the target point (meters)")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of the target point (meters)")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runMeasure(cmd *cobra.Command, args []string) {
	start := geometry.NewVector3(point1X, point1Y, point1Z)
	target := geometry.NewVector3(point2X, point2Y, point2Z)

	session := measure.NewSession()
	session.SetMeasuring(true)
	session.Tick(&start, measure.TrackingNormal)
	snap := session.Tick(&target, measure.TrackingNormal)

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")

	fmt.Printf("\nStart:  %s\n", measure.FormatVector(start))
	fmt.Printf("Target: %s\n", measure.FormatVector(target))

	fmt.Printf("\nDistance:   %.6f m (%s)\n", snap.Distance, measure.FormatDistance(snap.Distance))
	fmt.Printf("Box size:   %.6f x %.6f x %.6f m\n", snap.Pose.Width, snap.Pose.Height, snap.Pose.Depth)
	fmt.Printf("Box yaw:    %.6f rad about %s\n", snap.Pose.RotationRadians, measure.FormatVector(snap.Pose.RotationAxis))
	fmt.Printf("Box center: %s\n", measure.FormatVector(snap.Pose.Center()))
}
