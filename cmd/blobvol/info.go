package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/profiscan/blobvol/pkg/analysis"
)

var infoCell float64

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a scan file",
	Long:  "Show point count, bounds, dimensions, centroid and estimated point spacing of a point cloud.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64Var(&infoCell, "cell", 0.0, "Voxel cell size for downsampling before analysis (0 = off)")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	cloud, err := loadCloud(filename, infoCell)
	if err != nil {
		fail("reading scan file", err)
	}

	report := analysis.AnalyzeCloud(cloud)

	fmt.Println("Scan File Information")
	fmt.Println("=====================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Cloud Statistics:")
	fmt.Printf("  Points: %d\n", report.PointCount)
	fmt.Printf("  Mean spacing: %s\n\n", analysis.FormatMeasurement(report.MeanSpacing, "units"))

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(report.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(report.Max))
	fmt.Printf("  Centroid: %s\n\n", analysis.FormatVector(report.Centroid))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", report.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", report.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", report.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", report.Diagonal)
}
