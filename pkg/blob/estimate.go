// Package blob estimates the volume of material protruding above a reference
// plane. The cloud is cut into height bands along the plane normal; each band
// is approximated by a circle whose radius is the RMS planar distance of the
// band's points from their centroid, and the band volumes are summed.
package blob

import (
	"errors"
	"fmt"
	"math"

	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
)

// ErrInvalidSliceThickness reports a non-positive slice thickness.
var ErrInvalidSliceThickness = errors.New("slice thickness must be positive")

// DefaultMinPointsPerSlice is the band population below which a slice is
// considered noise and skipped.
const DefaultMinPointsPerSlice = 50

const degenerateNormalSq = 1e-12

// Options controls the volume estimation.
type Options struct {
	// SliceThickness is the height of each band along the plane normal,
	// in cloud units. Must be positive.
	SliceThickness float64

	// MinPointsPerSlice is the minimum band population for a slice to
	// contribute volume. Non-positive values fall back to
	// DefaultMinPointsPerSlice.
	MinPointsPerSlice int
}

// DefaultOptions returns Options for the given thickness with the default
// minimum band population.
func DefaultOptions(thickness float64) Options {
	return Options{
		SliceThickness:    thickness,
		MinPointsPerSlice: DefaultMinPointsPerSlice,
	}
}

// Slice is one accepted height band of the blob.
type Slice struct {
	// H0 and H1 bound the band above the reference plane; a point belongs
	// to the band when H0 <= h < H1.
	H0 float64
	H1 float64

	// HCenter is the band midpoint height.
	HCenter float64

	// CenterWorld is the band centroid lifted back into world coordinates.
	CenterWorld geometry.Vector3

	// Normal is the oriented plane normal the band was measured along.
	Normal geometry.Vector3

	// Radius is the equivalent-circle radius: the RMS planar distance of
	// the band's points from their centroid.
	Radius float64

	// Area is the equivalent-circle area, pi times Radius squared.
	Area float64

	// PointCount is the number of cloud points in the band.
	PointCount int
}

// Result is the outcome of a volume estimation.
type Result struct {
	// Volume is the summed slice volume in cubic cloud units.
	Volume float64

	// Slices lists the accepted bands in ascending height order.
	Slices []Slice

	// Fit is the reference plane the estimate was actually measured
	// against. Its normal may be the negation of the caller's when the
	// input faced away from world +Z; the caller's value is never touched.
	Fit geometry.PlaneFit
}

type bandPoint struct {
	planar geometry.PlanarPoint
	height float64
}

// EstimateVolume slices the cloud into height bands above the fitted plane
// and sums the equivalent-circle volume of each band.
//
// Points at or below the plane are ignored. A band with fewer than
// MinPointsPerSlice points, or with zero RMS radius, is skipped without
// error. A degenerate fit normal yields a zero result rather than an error,
// so a live caller sees "no deposit" instead of a failure.
func EstimateVolume(cloud pointcloud.Cloud, fit geometry.PlaneFit, opts Options) (Result, error) {
	if opts.SliceThickness <= 0 {
		return Result{}, fmt.Errorf("%w: got %v", ErrInvalidSliceThickness, opts.SliceThickness)
	}
	minPoints := opts.MinPointsPerSlice
	if minPoints <= 0 {
		minPoints = DefaultMinPointsPerSlice
	}

	normal := fit.Basis.Normal
	if normal.LengthSquared() < degenerateNormalSq {
		return Result{Fit: fit}, nil
	}

	// Positive height must mean "above the plane" regardless of the
	// winding the fit came from
	if normal.Dot(geometry.NewVector3(0, 0, 1)) < 0 {
		normal = normal.Negate()
	}
	normal = normal.Normalize()
	u, v := geometry.OrthonormalBasis(normal)
	centroid := fit.Centroid

	oriented := geometry.PlaneFit{
		Basis:    geometry.Plane{Origin: centroid, U: u, V: v, Normal: normal},
		Centroid: centroid,
	}

	retained := make([]bandPoint, 0, len(cloud))
	minH := math.Inf(1)
	maxH := math.Inf(-1)
	for _, p := range cloud {
		d := p.Sub(centroid)
		h := d.Dot(normal)
		if h <= 0 {
			continue
		}
		retained = append(retained, bandPoint{
			planar: geometry.PlanarPoint{U: d.Dot(u), V: d.Dot(v)},
			height: h,
		})
		if h < minH {
			minH = h
		}
		if h > maxH {
			maxH = h
		}
	}
	if len(retained) == 0 {
		return Result{Fit: oriented}, nil
	}
	if minH < 0 {
		minH = 0
	}

	thickness := opts.SliceThickness
	sliceCount := int(math.Ceil((maxH - minH) / thickness))
	if sliceCount <= 0 {
		return Result{Fit: oriented}, nil
	}

	// Bucket by band in one pass; a height landing exactly on the top
	// boundary belongs to no half-open band
	buckets := make([][]geometry.PlanarPoint, sliceCount)
	for _, bp := range retained {
		idx := int(math.Floor((bp.height - minH) / thickness))
		if idx < 0 || idx >= sliceCount {
			continue
		}
		buckets[idx] = append(buckets[idx], bp.planar)
	}

	volume := 0.0
	slices := make([]Slice, 0, sliceCount)
	for i, band := range buckets {
		if len(band) < minPoints {
			continue
		}

		n := float64(len(band))
		var cx, cy float64
		for _, q := range band {
			cx += q.U
			cy += q.V
		}
		cx /= n
		cy /= n

		meanSq := 0.0
		for _, q := range band {
			du := q.U - cx
			dv := q.V - cy
			meanSq += du*du + dv*dv
		}
		meanSq /= n
		radius := math.Sqrt(meanSq)
		if radius <= 0 {
			continue
		}

		area := math.Pi * radius * radius
		volume += area * thickness

		h0 := minH + float64(i)*thickness
		h1 := h0 + thickness
		hCenter := h0 + thickness/2
		slices = append(slices, Slice{
			H0:          h0,
			H1:          h1,
			HCenter:     hCenter,
			CenterWorld: centroid.Add(normal.Mul(hCenter)).Add(u.Mul(cx)).Add(v.Mul(cy)),
			Normal:      normal,
			Radius:      radius,
			Area:        area,
			PointCount:  len(band),
		})
	}

	return Result{Volume: volume, Slices: slices, Fit: oriented}, nil
}
