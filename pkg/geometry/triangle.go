package geometry

// Triangle is a mesh facet: three vertices plus the facet normal as stored in
// the source file. The stored normal is not recomputed on construction; use
// ComputedNormal for the geometric normal of the vertices.
type Triangle struct {
	Normal Vector3
	V1     Vector3
	V2     Vector3
	V3     Vector3
}

// NewTriangle creates a triangle from a facet normal and three vertices
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// Area returns the triangle's area
func (t Triangle) Area() float64 {
	e1 := t.V2.Sub(t.V1)
	e2 := t.V3.Sub(t.V1)
	return e1.Cross(e2).Length() / 2
}

// Center returns the centroid of the three vertices
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// ComputedNormal returns the unit normal implied by the vertex winding,
// ignoring the stored facet normal.
func (t Triangle) ComputedNormal() Vector3 {
	e1 := t.V2.Sub(t.V1)
	e2 := t.V3.Sub(t.V1)
	return e1.Cross(e2).Normalize()
}

// EdgeLengths returns the lengths of the three edges V1-V2, V2-V3, V3-V1
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the sum of the edge lengths
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Plane builds the orthonormal plane basis spanned by the triangle's
// vertices. The basis orientation follows the vertex winding. Fails with
// ErrDegenerateTriangle for zero-area triangles.
func (t Triangle) Plane() (Plane, error) {
	return NewPlaneFromPoints(t.V1, t.V2, t.V3)
}
