package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateTriangle is returned when three points are too close together
// or too close to a single line to define a plane.
var ErrDegenerateTriangle = errors.New("triangle is degenerate")

// degenerateLengthSq is the squared-length threshold below which an edge or
// normal vector is considered zero.
const degenerateLengthSq = 1e-12

// PlanarPoint is a 2D coordinate inside a plane, expressed along the plane's
// U and V axes.
type PlanarPoint struct {
	U, V float64
}

// Plane is an orthonormal frame anchored to a surface: an origin point and
// three mutually perpendicular unit vectors. U and V span the plane, Normal
// is perpendicular to it.
type Plane struct {
	Origin Vector3
	U      Vector3
	V      Vector3
	Normal Vector3
}

// NewPlaneFromPoints builds a plane basis from three points. The normal
// follows the winding order of the points, so callers that need reproducible
// orientation must keep their winding consistent. Fails with
// ErrDegenerateTriangle when either edge from p0 or the resulting normal is
// shorter than the degeneracy tolerance; no partial plane is ever returned.
func NewPlaneFromPoints(p0, p1, p2 Vector3) (Plane, error) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)

	if e1.LengthSquared() < degenerateLengthSq {
		return Plane{}, fmt.Errorf("%w: edge p0->p1 is too short", ErrDegenerateTriangle)
	}
	if e2.LengthSquared() < degenerateLengthSq {
		return Plane{}, fmt.Errorf("%w: edge p0->p2 is too short", ErrDegenerateTriangle)
	}

	cross := e1.Cross(e2)
	if cross.LengthSquared() < degenerateLengthSq {
		return Plane{}, fmt.Errorf("%w: points are collinear", ErrDegenerateTriangle)
	}

	normal := cross.Normalize()
	u := e1.Normalize()
	v := normal.Cross(u).Normalize()

	return Plane{Origin: p0, U: u, V: v, Normal: normal}, nil
}

// OrthonormalBasis derives in-plane unit axes u and v for the given plane
// normal. The u axis is seeded from the world Z axis, or from the world Y
// axis when the normal is close to vertical (|normal.Z| >= 0.9), which keeps
// the basis well conditioned. The normal does not have to be unit length.
func OrthonormalBasis(normal Vector3) (u, v Vector3) {
	helper := NewVector3(0, 0, 1)
	if math.Abs(normal.Z) >= 0.9*normal.Length() {
		helper = NewVector3(0, 1, 0)
	}
	u = helper.Cross(normal).Normalize()
	v = normal.Cross(u).Normalize()
	return u, v
}

// Project2D maps a point into the plane's 2D coordinate system.
func (p Plane) Project2D(point Vector3) PlanarPoint {
	d := point.Sub(p.Origin)
	return PlanarPoint{U: d.Dot(p.U), V: d.Dot(p.V)}
}

// Project3D flattens a point onto the plane along the plane normal.
// Projecting an already projected point leaves it unchanged within floating
// point tolerance.
func (p Plane) Project3D(point Vector3) Vector3 {
	h := point.Sub(p.Origin).Dot(p.Normal)
	return point.Sub(p.Normal.Mul(h))
}

// Project2DAll maps every point into plane coordinates, preserving order.
func (p Plane) Project2DAll(points []Vector3) []PlanarPoint {
	out := make([]PlanarPoint, len(points))
	for i, pt := range points {
		out[i] = p.Project2D(pt)
	}
	return out
}

// Project3DAll flattens every point onto the plane, preserving order.
func (p Plane) Project3DAll(points []Vector3) []Vector3 {
	out := make([]Vector3, len(points))
	for i, pt := range points {
		out[i] = p.Project3D(pt)
	}
	return out
}

// PlaneFit is a reference plane fitted to a baseline surface: the basis plus
// the centroid the fit is anchored to. Heights are measured from the centroid
// along the basis normal. Values are never mutated; operations that re-orient
// the normal return a fresh PlaneFit.
type PlaneFit struct {
	Basis    Plane
	Centroid Vector3
}
