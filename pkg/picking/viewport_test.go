package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
)

func viewCloud() pointcloud.Cloud {
	return pointcloud.Cloud{
		geometry.NewVector3(-1, -1, -1),
		geometry.NewVector3(1, 1, 1),
		geometry.NewVector3(0.5, -0.25, 0),
		geometry.NewVector3(0, 0, 0),
	}
}

func TestNewCameraFramesCloud(t *testing.T) {
	cam := NewCamera(viewCloud(), 800, 600)

	assert.Equal(t, geometry.NewVector3(0, 0, 4), cam.Position, "twice the largest extent along +Z")
	assert.Equal(t, geometry.NewVector3(0, 0, 0), cam.Target)

	x, y, depth, ok := cam.Project(cam.Target)
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-9, "target lands on the viewport center")
	assert.InDelta(t, 300, y, 1e-9)
	assert.InDelta(t, 4, depth, 1e-9)
}

func TestNewCameraEmptyCloud(t *testing.T) {
	cam := NewCamera(nil, 100, 100)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), cam.Position)
	assert.Equal(t, geometry.NewVector3(0, 0, 0), cam.Target)
}

func TestCameraProjectBehindCamera(t *testing.T) {
	cam := NewCamera(viewCloud(), 800, 600)

	_, _, _, ok := cam.Project(geometry.NewVector3(0, 0, 10))
	assert.False(t, ok, "points behind the camera are not visible")
}

func TestCameraRayThroughPixel(t *testing.T) {
	cam := NewCamera(viewCloud(), 800, 600)
	p := geometry.NewVector3(0.5, -0.25, 0)

	x, y, _, ok := cam.Project(p)
	require.True(t, ok)

	ray, ok := cam.ProjectRay(x, y)
	require.True(t, ok)
	assert.Equal(t, cam.Position, ray.Origin)

	nearest := ray.At(ray.ClosestParam(p))
	assert.InDelta(t, 0, p.Distance(nearest), 1e-9, "unprojected ray passes through the point")
}

func TestCloudViewportPicksNearestDepth(t *testing.T) {
	base := viewCloud()
	cam := NewCamera(base, 800, 600)

	// A second point on the same sight line, further from the camera
	near := geometry.NewVector3(0, 0, 0)
	far := cam.Position.Add(near.Sub(cam.Position).Mul(2.5))
	points := append(base.Clone(), far)

	vp := &CloudViewport{Camera: cam, Points: points}

	x, y, _, ok := cam.Project(near)
	require.True(t, ok)

	hits := vp.FindHits(x, y)
	require.Len(t, hits, 2)

	got, ok := ResolveScreenPoint(vp, x, y, points)
	require.True(t, ok)
	assert.Equal(t, near, got, "the shallower of two stacked points wins")
}

func TestCloudViewportMissFallsBackToRay(t *testing.T) {
	points := pointcloud.Cloud{geometry.NewVector3(0.5, -0.25, 0)}
	cam := NewCamera(viewCloud(), 800, 600)
	vp := &CloudViewport{Camera: cam, Points: points, PickRadius: 2}

	assert.Empty(t, vp.FindHits(5, 5), "nothing projects near the corner")

	got, ok := ResolveScreenPoint(vp, 5, 5, points)
	require.True(t, ok)
	assert.Equal(t, points[0], got, "ray fallback still picks from the cloud")
}

func TestCloudViewportDegenerateSize(t *testing.T) {
	points := pointcloud.Cloud{
		geometry.NewVector3(5, 5, 5),
		geometry.NewVector3(1, 1, 1),
	}
	vp := &CloudViewport{Camera: &Camera{}, Points: points}

	assert.Empty(t, vp.FindHits(10, 10))
	_, ok := vp.ProjectRay(10, 10)
	assert.False(t, ok)

	got, ok := ResolveScreenPoint(vp, 10, 10, points)
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), got, "degrades to origin-distance pick")
}
