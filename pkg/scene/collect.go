package scene

import (
	"errors"

	"github.com/profiscan/blobvol/pkg/geometry"
)

// MaxDepth bounds tree traversal. A well-formed measurement scene is a few
// levels deep; anything beyond this is a cycle or runaway construction.
const MaxDepth = 64

// ErrTooDeep reports a tree nested beyond MaxDepth.
var ErrTooDeep = errors.New("scene tree exceeds maximum depth")

type frame struct {
	node  Node
	depth int
}

// Walk visits every mesh depth-first, children in declaration order, using an
// explicit stack. It stops at the first error the visitor returns.
func Walk(root Node, visit func(*Mesh) error) error {
	if root == nil {
		return nil
	}
	stack := []frame{{node: root, depth: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > MaxDepth {
			return ErrTooDeep
		}
		switch n := f.node.(type) {
		case *Mesh:
			if err := visit(n); err != nil {
				return err
			}
		case *Group:
			// Push in reverse so children pop in declaration order
			for i := len(n.Children) - 1; i >= 0; i-- {
				if n.Children[i] == nil {
					continue
				}
				stack = append(stack, frame{node: n.Children[i], depth: f.depth + 1})
			}
		}
	}
	return nil
}

// CollectPoints flattens the tree into a single position sequence: meshes in
// depth-first declaration order, each mesh's positions in storage order.
func CollectPoints(root Node) ([]geometry.Vector3, error) {
	var points []geometry.Vector3
	err := Walk(root, func(m *Mesh) error {
		points = append(points, m.Positions...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// CountPoints returns the total number of positions in the tree.
func CountPoints(root Node) (int, error) {
	total := 0
	err := Walk(root, func(m *Mesh) error {
		total += len(m.Positions)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CountTriangles returns the total number of index triangles in the tree.
func CountTriangles(root Node) (int, error) {
	total := 0
	err := Walk(root, func(m *Mesh) error {
		total += len(m.Triangles)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
