package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/profiscan/blobvol/pkg/blob"
	"github.com/profiscan/blobvol/pkg/watcher"
)

var (
	watchThickness float64
	watchMinPoints int
	watchCell      float64
	watchDebounce  time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-measure a scan whenever the file changes",
	Long: `Watch a scan file and re-run the volume estimate on every change.
Useful while a sensor exporter keeps overwriting the same scan file.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Float64VarP(&watchThickness, "thickness", "t", 1.0, "Slice thickness in cloud units")
	watchCmd.Flags().IntVar(&watchMinPoints, "min-points", blob.DefaultMinPointsPerSlice, "Minimum points per slice")
	watchCmd.Flags().Float64Var(&watchCell, "cell", 0.0, "Voxel cell size for downsampling before measuring (0 = off)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Quiet period before re-measuring")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	measure := func(path string) {
		cloud, result, err := measureFile(path, watchCell, watchThickness, watchMinPoints)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error measuring scan: %v\n", err)
			return
		}
		fmt.Printf("[%s] %s: %d points, %d slices, volume %.6f cubic units\n",
			time.Now().Format("15:04:05"), path, cloud.Len(), len(result.Slices), result.Volume)
	}

	// Initial measurement before the first change
	measure(filename)

	sw, err := watcher.NewScanWatcher(watchDebounce)
	if err != nil {
		fail("creating watcher", err)
	}
	defer sw.Close()

	if err := sw.Watch([]string{filename}, measure); err != nil {
		fail("watching file", err)
	}
	sw.Start()

	fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", filename)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	fmt.Println("\nStopped.")
}
