package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/profiscan/blobvol/version"
)

var rootCmd = &cobra.Command{
	Use:   "blobvol",
	Short: "A CLI tool for measuring deposit volumes in 3D point clouds",
	Long: `blobvol analyzes point clouds captured by laser-profiling sensors.
It fits a reference plane to the scanned baseline surface, slices the material
protruding above it into height bands and reports the deposited volume, along
with downsampling, picking and profile charting utilities.
Supported scan formats: PCD, XYZ and STL (flattened to vertices).`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
