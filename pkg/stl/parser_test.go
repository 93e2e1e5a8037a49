package stl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/profiscan/blobvol/pkg/geometry"
)

const asciiFixture = `solid wedge
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 1 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid wedge
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}
	return path
}

func TestParseASCII(t *testing.T) {
	path := writeFixture(t, "wedge.stl", asciiFixture)

	mesh, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if mesh.Label != "wedge" {
		t.Errorf("Parse name failed: expected wedge, got %q", mesh.Label)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("Parse triangle count failed: expected 2, got %d", mesh.TriangleCount())
	}

	tri, err := mesh.Triangle(0)
	if err != nil {
		t.Fatalf("Triangle failed: %v", err)
	}
	if tri.V2 != geometry.NewVector3(1, 0, 0) {
		t.Errorf("Parse vertex failed: expected (1 0 0), got %v", tri.V2)
	}
}

func TestParseASCIISkipsIncompleteFacet(t *testing.T) {
	broken := `solid broken
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid broken
`
	path := writeFixture(t, "broken.stl", broken)

	mesh, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("Parse should skip facets without three vertices: expected 1 triangle, got %d", mesh.TriangleCount())
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "missing.stl")); err == nil {
		t.Error("Parse should fail for a missing file")
	}
}

func TestParseTruncatedBinary(t *testing.T) {
	// Header claims more triangles than the file holds
	path := writeFixture(t, "trunc.stl", string(make([]byte, 80))+"\x05\x00\x00\x00")

	if _, err := Parse(path); err == nil {
		t.Error("Parse should fail for a truncated binary file")
	}
}
