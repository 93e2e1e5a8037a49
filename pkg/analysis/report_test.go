package analysis

import (
	"math"
	"testing"

	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
)

func unitCubeCorners() pointcloud.Cloud {
	var cloud pointcloud.Cloud
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				cloud = append(cloud, geometry.NewVector3(x, y, z))
			}
		}
	}
	return cloud
}

func TestAnalyzeCloud(t *testing.T) {
	report := AnalyzeCloud(unitCubeCorners())

	if report.PointCount != 8 {
		t.Errorf("PointCount failed: expected 8, got %d", report.PointCount)
	}
	if report.Min != geometry.NewVector3(0, 0, 0) {
		t.Errorf("Min failed: expected (0 0 0), got %v", report.Min)
	}
	if report.Max != geometry.NewVector3(1, 1, 1) {
		t.Errorf("Max failed: expected (1 1 1), got %v", report.Max)
	}
	if report.Dimensions != geometry.NewVector3(1, 1, 1) {
		t.Errorf("Dimensions failed: expected (1 1 1), got %v", report.Dimensions)
	}
	if math.Abs(report.Diagonal-math.Sqrt(3)) > 1e-9 {
		t.Errorf("Diagonal failed: expected sqrt(3), got %v", report.Diagonal)
	}
	if report.Centroid != geometry.NewVector3(0.5, 0.5, 0.5) {
		t.Errorf("Centroid failed: expected (0.5 0.5 0.5), got %v", report.Centroid)
	}
	// Eight points in a unit box: one point per 1/8 volume
	if math.Abs(report.MeanSpacing-0.5) > 1e-9 {
		t.Errorf("MeanSpacing failed: expected 0.5, got %v", report.MeanSpacing)
	}
}

func TestAnalyzeCloudEmpty(t *testing.T) {
	report := AnalyzeCloud(nil)
	if report.PointCount != 0 {
		t.Errorf("PointCount failed: expected 0, got %d", report.PointCount)
	}
	if report.Diagonal != 0 || report.MeanSpacing != 0 {
		t.Errorf("empty cloud should report zero extents, got %+v", report)
	}
}

func TestAnalyzeCloudPlanar(t *testing.T) {
	cloud := pointcloud.Cloud{
		geometry.NewVector3(0, 0, 2),
		geometry.NewVector3(1, 0, 2),
		geometry.NewVector3(0, 1, 2),
	}
	report := AnalyzeCloud(cloud)

	if report.Dimensions.Z != 0 {
		t.Errorf("Dimensions failed: expected flat cloud, got %v", report.Dimensions)
	}
	if report.MeanSpacing != 0 {
		t.Errorf("MeanSpacing failed: a degenerate box has no volume estimate, got %v", report.MeanSpacing)
	}
}

func TestFormatMeasurement(t *testing.T) {
	if got := FormatMeasurement(1.5, "mm"); got != "1.500000 mm" {
		t.Errorf("FormatMeasurement failed: got %q", got)
	}
	if got := FormatMeasurement(2, ""); got != "2.000000 units" {
		t.Errorf("FormatMeasurement default unit failed: got %q", got)
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(1, -2.5, 3))
	if got != "(1.000000, -2.500000, 3.000000)" {
		t.Errorf("FormatVector failed: got %q", got)
	}
}
