package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/profiscan/blobvol/pkg/scene"
)

// Write stores a scene node as a binary STL file. Meshes are flattened
// depth-first; facet normals are computed from the vertex winding. The root
// node's name fills the 80-byte header.
func Write(filename string, root scene.Node) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := writeBinary(writer, root); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}
	return nil
}

// writeBinary writes the binary STL layout: 80-byte header, little-endian
// triangle count, then one 50-byte record per triangle.
func writeBinary(w io.Writer, root scene.Node) error {
	count, err := scene.CountTriangles(root)
	if err != nil {
		return fmt.Errorf("failed to count triangles: %w", err)
	}

	var header [80]byte
	if root != nil {
		copy(header[:], root.Name())
	}
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(count)); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	return scene.Walk(root, func(m *scene.Mesh) error {
		for i := range m.Triangles {
			triangle, err := m.Triangle(i)
			if err != nil {
				return fmt.Errorf("failed to resolve triangle %d of mesh %q: %w", i, m.Label, err)
			}

			record := [12]float32{
				float32(triangle.Normal.X), float32(triangle.Normal.Y), float32(triangle.Normal.Z),
				float32(triangle.V1.X), float32(triangle.V1.Y), float32(triangle.V1.Z),
				float32(triangle.V2.X), float32(triangle.V2.Y), float32(triangle.V2.Z),
				float32(triangle.V3.X), float32(triangle.V3.Y), float32(triangle.V3.Z),
			}
			if err := binary.Write(w, binary.LittleEndian, record); err != nil {
				return fmt.Errorf("failed to write triangle %d: %w", i, err)
			}
			if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
				return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
			}
		}
		return nil
	})
}
