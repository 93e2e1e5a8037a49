// Package scene holds the minimal node tree the measurement core exchanges
// with its callers: groups for structure, meshes for geometry. It deliberately
// knows nothing about rendering; a node tree is just positions and indices
// until a viewer picks it up.
package scene

import (
	"fmt"

	"github.com/profiscan/blobvol/pkg/geometry"
)

// Node is either a *Group or a *Mesh. The interface is sealed so a tree can
// be walked exhaustively with a two-case type switch.
type Node interface {
	// Name returns the node's label, which may be empty.
	Name() string

	node()
}

// Group is an interior node holding child nodes in declaration order.
type Group struct {
	Label    string
	Children []Node
}

// Mesh is a leaf node: shared vertex positions plus index triangles.
type Mesh struct {
	Label     string
	Positions []geometry.Vector3
	Triangles []Tri
}

// Tri indexes three positions of its mesh, wound counter-clockwise.
type Tri [3]int

// NewGroup creates an empty group
func NewGroup(label string) *Group {
	return &Group{Label: label}
}

// NewMesh creates an empty mesh
func NewMesh(label string) *Mesh {
	return &Mesh{Label: label}
}

func (g *Group) Name() string { return g.Label }
func (m *Mesh) Name() string  { return m.Label }

func (g *Group) node() {}
func (m *Mesh) node()  {}

// Add appends children to the group and returns it for chaining.
func (g *Group) Add(children ...Node) *Group {
	g.Children = append(g.Children, children...)
	return g
}

// AddTriangle appends a triangle's vertices as three new positions plus an
// index entry. Positions are not deduplicated.
func (m *Mesh) AddTriangle(t geometry.Triangle) {
	base := len(m.Positions)
	m.Positions = append(m.Positions, t.V1, t.V2, t.V3)
	m.Triangles = append(m.Triangles, Tri{base, base + 1, base + 2})
}

// TriangleCount returns the number of index triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Triangle resolves index triangle i into a geometry.Triangle whose normal is
// computed from the vertex winding. Fails when i or any referenced position
// index is out of range.
func (m *Mesh) Triangle(i int) (geometry.Triangle, error) {
	if i < 0 || i >= len(m.Triangles) {
		return geometry.Triangle{}, fmt.Errorf("triangle index %d out of range for mesh with %d triangles", i, len(m.Triangles))
	}
	idx := m.Triangles[i]
	for _, p := range idx {
		if p < 0 || p >= len(m.Positions) {
			return geometry.Triangle{}, fmt.Errorf("triangle %d references position %d outside mesh with %d positions", i, p, len(m.Positions))
		}
	}
	tri := geometry.NewTriangle(geometry.Vector3{}, m.Positions[idx[0]], m.Positions[idx[1]], m.Positions[idx[2]])
	tri.Normal = tri.ComputedNormal()
	return tri, nil
}
