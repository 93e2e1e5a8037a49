package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/profiscan/blobvol/pkg/geometry"
)

func TestAddTriangle(t *testing.T) {
	m := NewMesh("facets")
	m.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))
	m.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(2, 1, 0),
	))

	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", m.TriangleCount())
	}
	if len(m.Positions) != 6 {
		t.Errorf("AddTriangle positions failed: expected 6, got %d", len(m.Positions))
	}
	if m.Triangles[1] != (Tri{3, 4, 5}) {
		t.Errorf("AddTriangle indices failed: expected {3 4 5}, got %v", m.Triangles[1])
	}
}

func TestMeshTriangle(t *testing.T) {
	m := NewMesh("")
	m.Positions = []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	}
	m.Triangles = []Tri{{0, 1, 2}}

	tri, err := m.Triangle(0)
	if err != nil {
		t.Fatalf("Triangle failed: %v", err)
	}
	if tri.V2 != m.Positions[1] {
		t.Errorf("Triangle vertex failed: expected %v, got %v", m.Positions[1], tri.V2)
	}
	// Counter-clockwise in the XY plane implies a +Z normal
	if math.Abs(tri.Normal.Z-1) > 1e-9 {
		t.Errorf("Triangle normal failed: expected +Z, got %v", tri.Normal)
	}
}

func TestMeshTriangleOutOfRange(t *testing.T) {
	m := NewMesh("")
	m.Positions = []geometry.Vector3{{}, {}}
	m.Triangles = []Tri{{0, 1, 7}}

	if _, err := m.Triangle(1); err == nil {
		t.Error("Triangle should fail for an index past the end")
	}
	if _, err := m.Triangle(-1); err == nil {
		t.Error("Triangle should fail for a negative index")
	}
	if _, err := m.Triangle(0); err == nil {
		t.Error("Triangle should fail for an index triangle referencing a missing position")
	}
}

func TestCollectPointsOrder(t *testing.T) {
	a := NewMesh("a")
	a.Positions = []geometry.Vector3{geometry.NewVector3(1, 0, 0), geometry.NewVector3(2, 0, 0)}
	b := NewMesh("b")
	b.Positions = []geometry.Vector3{geometry.NewVector3(3, 0, 0)}
	c := NewMesh("c")
	c.Positions = []geometry.Vector3{geometry.NewVector3(4, 0, 0)}

	root := NewGroup("root").Add(a, NewGroup("inner").Add(b), c)

	got, err := CollectPoints(root)
	if err != nil {
		t.Fatalf("CollectPoints failed: %v", err)
	}
	want := []geometry.Vector3{
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(4, 0, 0),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CollectPoints order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectPointsNil(t *testing.T) {
	got, err := CollectPoints(nil)
	if err != nil {
		t.Fatalf("CollectPoints failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("CollectPoints on nil root failed: expected no points, got %d", len(got))
	}

	root := NewGroup("sparse").Add(nil, NewMesh("empty"), nil)
	if _, err := CollectPoints(root); err != nil {
		t.Errorf("CollectPoints with nil children failed: %v", err)
	}
}

func TestCounts(t *testing.T) {
	m := NewMesh("m")
	m.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))
	root := NewGroup("root").Add(m, NewGroup("empty"))

	points, err := CountPoints(root)
	if err != nil {
		t.Fatalf("CountPoints failed: %v", err)
	}
	if points != 3 {
		t.Errorf("CountPoints failed: expected 3, got %d", points)
	}

	tris, err := CountTriangles(root)
	if err != nil {
		t.Fatalf("CountTriangles failed: %v", err)
	}
	if tris != 1 {
		t.Errorf("CountTriangles failed: expected 1, got %d", tris)
	}
}

func TestCollectPointsTooDeep(t *testing.T) {
	leaf := NewMesh("leaf")
	leaf.Positions = []geometry.Vector3{geometry.NewVector3(1, 2, 3)}

	var root Node = leaf
	for i := 0; i <= MaxDepth; i++ {
		root = NewGroup("wrap").Add(root)
	}

	if _, err := CollectPoints(root); !errors.Is(err, ErrTooDeep) {
		t.Errorf("CollectPoints depth guard failed: expected ErrTooDeep, got %v", err)
	}
	if _, err := CountPoints(root); !errors.Is(err, ErrTooDeep) {
		t.Errorf("CountPoints depth guard failed: expected ErrTooDeep, got %v", err)
	}
}
