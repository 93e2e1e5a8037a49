// Package pointcloud holds the scan point container and the cloud-level
// operations that prepare a scan for measurement: voxel thinning and
// reference plane fitting. Operations never mutate their input cloud, so a
// single cloud may be shared by concurrent calls.
package pointcloud

import (
	"github.com/profiscan/blobvol/pkg/geometry"
)

// Cloud is an ordered sequence of scan points. Order is meaningful: thinning
// preserves first-occurrence order, and callers may rely on index stability
// for the duration of a call. Points are not unique unless the cloud has been
// voxel downsampled.
type Cloud []geometry.Vector3

// Len returns the number of points in the cloud
func (c Cloud) Len() int {
	return len(c)
}

// Clone returns an independent copy of the cloud
func (c Cloud) Clone() Cloud {
	if c == nil {
		return nil
	}
	out := make(Cloud, len(c))
	copy(out, c)
	return out
}

// Bounds returns the axis-aligned bounding box of the cloud.
// ok is false for an empty cloud.
func (c Cloud) Bounds() (min, max geometry.Vector3, ok bool) {
	if len(c) == 0 {
		return geometry.Vector3{}, geometry.Vector3{}, false
	}
	min, max = c[0], c[0]
	for _, p := range c[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max, true
}

// Centroid returns the mean position of all points.
// ok is false for an empty cloud.
func (c Cloud) Centroid() (geometry.Vector3, bool) {
	if len(c) == 0 {
		return geometry.Vector3{}, false
	}
	var sum geometry.Vector3
	for _, p := range c {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(c))), true
}
