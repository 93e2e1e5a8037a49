package geometry

// Ray is a half-line through 3D space: an origin and a direction. A ray whose
// direction is shorter than the degeneracy tolerance carries position
// information only; consumers fall back to distance-from-origin queries for
// such rays.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates a ray from an origin and a direction.
func NewRay(origin, dir Vector3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// HasDirection reports whether the ray carries a usable direction.
func (r Ray) HasDirection() bool {
	return r.Dir.LengthSquared() >= degenerateLengthSq
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// ClosestParam returns the parameter t of the orthogonal projection of a
// point onto the ray's supporting line. Requires a usable direction; the
// direction does not have to be unit length.
func (r Ray) ClosestParam(point Vector3) float64 {
	return point.Sub(r.Origin).Dot(r.Dir) / r.Dir.LengthSquared()
}
