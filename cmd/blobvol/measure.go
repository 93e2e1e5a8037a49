package main

import (
	"fmt"
	"os"

	"github.com/profiscan/blobvol/pkg/analysis"
	"github.com/profiscan/blobvol/pkg/blob"
	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
	"github.com/profiscan/blobvol/pkg/scanio"
)

// loadCloud reads a scan file and optionally voxel-downsamples it. A cell
// size of zero keeps the cloud as scanned.
func loadCloud(filename string, cellSize float64) (pointcloud.Cloud, error) {
	cloud, err := scanio.Load(filename)
	if err != nil {
		return nil, err
	}
	if cellSize > 0 {
		cloud, err = pointcloud.VoxelDownsample(cloud, cellSize)
		if err != nil {
			return nil, err
		}
	}
	return cloud, nil
}

// measureFile runs the full pipeline: load, optional downsample, PCA plane
// fit, volume estimate.
func measureFile(filename string, cellSize, thickness float64, minPoints int) (pointcloud.Cloud, blob.Result, error) {
	cloud, err := loadCloud(filename, cellSize)
	if err != nil {
		return nil, blob.Result{}, err
	}

	fit, err := pointcloud.FitPlane(cloud)
	if err != nil {
		return nil, blob.Result{}, fmt.Errorf("failed to fit reference plane: %w", err)
	}

	result, err := blob.EstimateVolume(cloud, fit, blob.Options{
		SliceThickness:    thickness,
		MinPointsPerSlice: minPoints,
	})
	if err != nil {
		return nil, blob.Result{}, err
	}
	return cloud, result, nil
}

// printFit prints the reference plane section shared by several commands.
func printFit(fit geometry.PlaneFit) {
	fmt.Println("Reference Plane:")
	fmt.Printf("  Centroid: %s\n", analysis.FormatVector(fit.Centroid))
	fmt.Printf("  Normal:   %s\n", analysis.FormatVector(fit.Basis.Normal))
	fmt.Printf("  U axis:   %s\n", analysis.FormatVector(fit.Basis.U))
	fmt.Printf("  V axis:   %s\n", analysis.FormatVector(fit.Basis.V))
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", msg, err)
	os.Exit(1)
}
