package analysis

import (
	"fmt"
	"math"

	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
)

// CloudReport contains summary measurements of a point cloud
type CloudReport struct {
	PointCount int
	Min        geometry.Vector3
	Max        geometry.Vector3
	Dimensions geometry.Vector3
	Diagonal   float64
	Centroid   geometry.Vector3

	// MeanSpacing estimates the typical point-to-point distance from the
	// bounding volume, assuming a roughly uniform cloud. Zero when the
	// bounding box is degenerate.
	MeanSpacing float64
}

// AnalyzeCloud summarizes a point cloud for reporting
func AnalyzeCloud(cloud pointcloud.Cloud) *CloudReport {
	report := &CloudReport{PointCount: cloud.Len()}

	min, max, ok := cloud.Bounds()
	if !ok {
		return report
	}
	report.Min = min
	report.Max = max
	report.Dimensions = max.Sub(min)
	report.Diagonal = max.Distance(min)

	if centroid, ok := cloud.Centroid(); ok {
		report.Centroid = centroid
	}

	volume := report.Dimensions.X * report.Dimensions.Y * report.Dimensions.Z
	if volume > 0 {
		report.MeanSpacing = math.Cbrt(volume / float64(report.PointCount))
	}

	return report
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
