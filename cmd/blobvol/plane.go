package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
)

var (
	planeCell                    float64
	planeP1X, planeP1Y, planeP1Z float64
	planeP2X, planeP2Y, planeP2Z float64
	planeP3X, planeP3Y, planeP3Z float64
)

var planeCmd = &cobra.Command{
	Use:   "plane [file]",
	Short: "Fit a reference plane to a scan",
	Long: `Fit the baseline reference plane of a scan.
By default the plane is a least-squares fit through the whole cloud.
Alternatively three explicit points define the plane, following their winding.`,
	Args: cobra.ExactArgs(1),
	Run:  runPlane,
}

func init() {
	rootCmd.AddCommand(planeCmd)

	planeCmd.Flags().Float64Var(&planeCell, "cell", 0.0, "Voxel cell size for downsampling before fitting (0 = off)")
	planeCmd.Flags().Float64Var(&planeP1X, "x1", 0.0, "X coordinate of first plane point")
	planeCmd.Flags().Float64Var(&planeP1Y, "y1", 0.0, "Y coordinate of first plane point")
	planeCmd.Flags().Float64Var(&planeP1Z, "z1", 0.0, "Z coordinate of first plane point")
	planeCmd.Flags().Float64Var(&planeP2X, "x2", 0.0, "X coordinate of second plane point")
	planeCmd.Flags().Float64Var(&planeP2Y, "y2", 0.0, "Y coordinate of second plane point")
	planeCmd.Flags().Float64Var(&planeP2Z, "z2", 0.0, "Z coordinate of second plane point")
	planeCmd.Flags().Float64Var(&planeP3X, "x3", 0.0, "X coordinate of third plane point")
	planeCmd.Flags().Float64Var(&planeP3Y, "y3", 0.0, "Y coordinate of third plane point")
	planeCmd.Flags().Float64Var(&planeP3Z, "z3", 0.0, "Z coordinate of third plane point")

	planeCmd.MarkFlagsRequiredTogether(
		"x1", "y1", "z1",
		"x2", "y2", "z2",
		"x3", "y3", "z3",
	)
}

func runPlane(cmd *cobra.Command, args []string) {
	filename := args[0]

	cloud, err := loadCloud(filename, planeCell)
	if err != nil {
		fail("reading scan file", err)
	}

	fromPoints := cmd.Flags().Changed("x1")

	var fit geometry.PlaneFit
	if fromPoints {
		p1 := geometry.NewVector3(planeP1X, planeP1Y, planeP1Z)
		p2 := geometry.NewVector3(planeP2X, planeP2Y, planeP2Z)
		p3 := geometry.NewVector3(planeP3X, planeP3Y, planeP3Z)

		basis, err := geometry.NewPlaneFromPoints(p1, p2, p3)
		if err != nil {
			fail("building plane", err)
		}
		fit = geometry.PlaneFit{Basis: basis, Centroid: basis.Origin}
	} else {
		fit, err = pointcloud.FitPlane(cloud)
		if err != nil {
			fail("fitting plane", err)
		}
	}

	fmt.Println("Reference Plane Fit")
	fmt.Println("===================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Points used: %d\n", cloud.Len())
	if fromPoints {
		fmt.Println("Method: three explicit points")
	} else {
		fmt.Println("Method: least-squares fit")
	}
	fmt.Println()
	printFit(fit)

	// Height spread of the cloud relative to the fitted plane
	minH, maxH := 0.0, 0.0
	for i, p := range cloud {
		h := p.Sub(fit.Centroid).Dot(fit.Basis.Normal)
		if i == 0 || h < minH {
			minH = h
		}
		if i == 0 || h > maxH {
			maxH = h
		}
	}
	fmt.Println()
	fmt.Println("Height Range:")
	fmt.Printf("  Below plane: %.6f units\n", minH)
	fmt.Printf("  Above plane: %.6f units\n", maxH)
}
