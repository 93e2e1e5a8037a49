package blob

import (
	"fmt"
	"math"

	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/scene"
)

// DefaultAngleStepDegrees is the rim resolution used when the caller passes a
// non-positive angle step.
const DefaultAngleStepDegrees = 15.0

// BuildSliceModel turns estimator slices into a renderable group of
// fan-triangulated discs, one mesh per slice with positive radius. Each disc
// lies in the plane of its slice, centered at CenterWorld. The model carries
// no physical meaning beyond visualizing the equivalent circles.
func BuildSliceModel(slices []Slice, angleStepDegrees float64) *scene.Group {
	if angleStepDegrees <= 0 {
		angleStepDegrees = DefaultAngleStepDegrees
	}
	steps := int(math.Round(360 / angleStepDegrees))
	if steps < 6 {
		steps = 6
	}

	group := scene.NewGroup("blob-slices")
	for i, s := range slices {
		if s.Radius <= 0 {
			continue
		}
		group.Add(discMesh(fmt.Sprintf("slice-%d", i), s, steps))
	}
	return group
}

// discMesh builds a single disc: a center vertex, a rim of steps vertices,
// and steps fan triangles wound so the computed normal matches the slice
// normal.
func discMesh(label string, s Slice, steps int) *scene.Mesh {
	u, v := geometry.OrthonormalBasis(s.Normal)

	m := scene.NewMesh(label)
	m.Positions = make([]geometry.Vector3, 0, steps+1)
	m.Positions = append(m.Positions, s.CenterWorld)
	for k := 0; k < steps; k++ {
		angle := 2 * math.Pi * float64(k) / float64(steps)
		offset := u.Mul(s.Radius * math.Cos(angle)).Add(v.Mul(s.Radius * math.Sin(angle)))
		m.Positions = append(m.Positions, s.CenterWorld.Add(offset))
	}

	m.Triangles = make([]scene.Tri, 0, steps)
	for k := 0; k < steps; k++ {
		next := k + 1
		if next == steps {
			next = 0
		}
		m.Triangles = append(m.Triangles, scene.Tri{0, k + 1, next + 1})
	}
	return m
}
