// Package picking resolves a 2D screen interaction to a 3D cloud point. An
// exact hit from the host's hit-test pass wins; otherwise the pick falls back
// to the cloud point nearest the interaction ray, and finally to the point
// nearest the ray origin. The cloud is scanned linearly on every call, so
// interactive callers should downsample first.
package picking

import (
	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
)

// Hit is one candidate from an external hit-test pass, orderable by its
// reported distance.
type Hit struct {
	Point    geometry.Vector3
	Distance float64
}

// Viewport is the narrow capability a host window must provide. The core
// never reimplements a render pipeline to obtain rays or hits.
type Viewport interface {
	// FindHits returns the hit-test candidates under the screen point,
	// possibly none.
	FindHits(x, y float64) []Hit

	// ProjectRay unprojects the screen point into a world ray. ok is
	// false when the host cannot construct one.
	ProjectRay(x, y float64) (ray geometry.Ray, ok bool)
}

// Resolve picks the 3D point for an interaction.
//
// A non-empty hit list always wins: the minimum-distance hit is returned,
// first of equals. Without hits, a ray with a usable direction selects the
// forward cloud point nearest the ray line; a ray without direction, or a
// cloud entirely behind the ray origin, selects the point nearest the
// origin. ok is false only when there is nothing to pick: no hits and an
// empty cloud.
func Resolve(hits []Hit, ray geometry.Ray, points pointcloud.Cloud) (geometry.Vector3, bool) {
	if len(hits) > 0 {
		best := hits[0]
		for _, h := range hits[1:] {
			if h.Distance < best.Distance {
				best = h
			}
		}
		return best.Point, true
	}

	if !ray.HasDirection() {
		return nearestTo(ray.Origin, points)
	}

	line := geometry.NewRay(ray.Origin, ray.Dir.Normalize())
	bestSq := 0.0
	var best geometry.Vector3
	found := false
	for _, p := range points {
		t := line.ClosestParam(p)
		if t <= 0 {
			continue
		}
		perpSq := p.DistanceSquared(line.At(t))
		if !found || perpSq < bestSq {
			best = p
			bestSq = perpSq
			found = true
		}
	}
	if found {
		return best, true
	}

	// Everything sits behind the origin; a non-empty cloud must still
	// yield a pick
	return nearestTo(ray.Origin, points)
}

// ResolveScreenPoint gathers hits and a ray from the viewport and resolves
// them against the cloud. A failed ray construction degrades to a zero ray,
// which measures the fallback from the host's last-resort origin.
func ResolveScreenPoint(vp Viewport, x, y float64, points pointcloud.Cloud) (geometry.Vector3, bool) {
	hits := vp.FindHits(x, y)
	ray, ok := vp.ProjectRay(x, y)
	if !ok {
		ray = geometry.Ray{}
	}
	return Resolve(hits, ray, points)
}

func nearestTo(origin geometry.Vector3, points pointcloud.Cloud) (geometry.Vector3, bool) {
	if len(points) == 0 {
		return geometry.Vector3{}, false
	}
	best := points[0]
	bestSq := origin.DistanceSquared(best)
	for _, p := range points[1:] {
		if sq := origin.DistanceSquared(p); sq < bestSq {
			best = p
			bestSq = sq
		}
	}
	return best, true
}
