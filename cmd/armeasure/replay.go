package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkirkendall/armeasure/pkg/measure"
	"github.com/rkirkendall/armeasure/pkg/replay"
)

var replayVerbose bool

var replayCmd = &cobra.Command{
	Use:   "replay <frame-log>",
	Short: "Replay a recorded frame log through the measuring core",
	Long: `Replay a JSONL frame log (as written by 'serve --record') through a
fresh measuring session and summarize the run.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVarP(&replayVerbose, "verbose", "v", false, "print every frame's status and distance")
}

func runReplay(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening frame log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	frames, err := replay.ReadFrames(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading frame log: %v\n", err)
		os.Exit(1)
	}

	var observe func(i int, frame replay.Frame, snap measure.Snapshot)
	if replayVerbose {
		observe = func(i int, frame replay.Frame, snap measure.Snapshot) {
			fmt.Printf("frame %4d  t=%8.3fs  %-9s  %s\n",
				i+1, frame.T, snap.Status, measure.FormatDistance(snap.Distance))
		}
	}

	report, err := replay.Run(frames, observe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying frame log: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Replay Report")
	fmt.Println("=============")
	fmt.Printf("\nFrames:         %d (%d with a surface hit)\n", report.Frames, report.HitFrames)
	fmt.Printf("Final status:   %s\n", report.FinalStatus)
	fmt.Printf("Final distance: %.6f m (%s)\n", report.FinalDistance, measure.FormatDistance(report.FinalDistance))
	fmt.Printf("Max distance:   %.6f m (%s)\n", report.MaxDistance, measure.FormatDistance(report.MaxDistance))

	if report.HitFrames > 0 {
		bounds := report.SweptBounds
		fmt.Printf("\nSwept bounds:   %s to %s\n",
			measure.FormatVector(bounds.Min), measure.FormatVector(bounds.Max))
		fmt.Printf("Swept diagonal: %.6f m\n", bounds.Diagonal())
		fmt.Printf("Swept center:   %s\n", measure.FormatVector(bounds.Center()))
	}

	// A run that never latched shows as zero everywhere; call it out.
	if report.HitFrames == 0 || math.Abs(report.MaxDistance) < 1e-12 {
		fmt.Println("\nNo measurement was completed in this log.")
	}
}
