package picking

import (
	"math"

	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
)

// DefaultPickRadius is the screen-space pick tolerance in pixels.
const DefaultPickRadius = 8.0

// Camera is a perspective view of a cloud. It carries no rendering state;
// it exists so screen-space pick requests can be resolved headlessly with
// the same projection math a host window would use.
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // vertical field of view in radians
	Width    float64 // viewport size in pixels
	Height   float64
}

// NewCamera frames the cloud from along +Z at twice its largest extent,
// matching the default view a host application opens with. An empty cloud
// is framed around the origin at unit distance.
func NewCamera(points pointcloud.Cloud, width, height float64) *Camera {
	center := geometry.Vector3{}
	distance := 1.0
	if min, max, ok := points.Bounds(); ok {
		center = min.Add(max).Mul(0.5)
		size := max.Sub(min)
		if d := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0; d > 0 {
			distance = d
		}
	}

	return &Camera{
		Position: center.Add(geometry.NewVector3(0, 0, distance)),
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Width:    width,
		Height:   height,
	}
}

// axes returns the orthonormal view frame derived from Position, Target
// and Up.
func (c *Camera) axes() (right, up, forward geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// Project maps a world point to pixel coordinates and its depth along the
// view direction. ok is false for points at or behind the camera plane,
// which can never be picked, and for a viewport without usable size.
func (c *Camera) Project(p geometry.Vector3) (x, y, depth float64, ok bool) {
	if c.Width <= 0 || c.Height <= 0 {
		return 0, 0, 0, false
	}
	right, up, forward := c.axes()

	relative := p.Sub(c.Position)
	vx := relative.Dot(right)
	vy := relative.Dot(up)
	vz := relative.Dot(forward)
	if vz <= 0 {
		return 0, 0, 0, false
	}

	aspect := c.Width / c.Height
	fovScale := math.Tan(c.FOV / 2)

	x = (vx/(vz*fovScale*aspect))*(c.Width/2) + c.Width/2
	y = (-vy/(vz*fovScale))*(c.Height/2) + c.Height/2
	return x, y, vz, true
}

// ProjectRay unprojects a pixel into a world ray from the camera position.
// ok is false when the viewport has no usable size.
func (c *Camera) ProjectRay(x, y float64) (geometry.Ray, bool) {
	if c.Width <= 0 || c.Height <= 0 {
		return geometry.Ray{}, false
	}

	right, up, forward := c.axes()

	ndcX := (2.0*x/c.Width) - 1.0
	ndcY := 1.0 - (2.0*y/c.Height)

	aspect := c.Width / c.Height
	fovScale := math.Tan(c.FOV / 2)

	dir := forward.
		Add(right.Mul(ndcX * fovScale * aspect)).
		Add(up.Mul(ndcY * fovScale)).
		Normalize()
	return geometry.NewRay(c.Position, dir), true
}

// CloudViewport pairs a Camera with the cloud it views. It satisfies
// Viewport with a brute-force projection pass over the cloud, standing in
// for the hit test a rendering host would run on the GPU.
type CloudViewport struct {
	Camera     *Camera
	Points     pointcloud.Cloud
	PickRadius float64 // pixels; non-positive means DefaultPickRadius
}

// FindHits projects every cloud point and returns those within PickRadius
// pixels of the screen point. Hit distance is the depth along the view
// direction, so the nearest visible point wins the pick.
func (v *CloudViewport) FindHits(x, y float64) []Hit {
	radius := v.PickRadius
	if radius <= 0 {
		radius = DefaultPickRadius
	}
	radiusSq := radius * radius

	var hits []Hit
	for _, p := range v.Points {
		px, py, depth, ok := v.Camera.Project(p)
		if !ok {
			continue
		}
		dx := px - x
		dy := py - y
		if dx*dx+dy*dy <= radiusSq {
			hits = append(hits, Hit{Point: p, Distance: depth})
		}
	}
	return hits
}

// ProjectRay implements Viewport by delegating to the camera.
func (v *CloudViewport) ProjectRay(x, y float64) (geometry.Ray, bool) {
	return v.Camera.ProjectRay(x, y)
}
