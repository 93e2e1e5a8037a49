package pointcloud

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/profiscan/blobvol/pkg/geometry"
)

// ErrNotEnoughPoints is returned when a cloud is too small for the requested
// fit.
var ErrNotEnoughPoints = errors.New("not enough points")

// ErrPlaneFitFailed is returned when the principal component decomposition of
// a cloud does not produce a usable plane normal.
var ErrPlaneFitFailed = errors.New("plane fit failed")

// FitPlane fits a least-squares plane through the cloud via principal
// component analysis. The plane normal is the principal direction of smallest
// variance, sign-normalized so that its dot product with (1,1,1) is
// non-negative; the basis is anchored at the cloud centroid. Requires at
// least 3 points.
func FitPlane(cloud Cloud) (geometry.PlaneFit, error) {
	if len(cloud) < 3 {
		return geometry.PlaneFit{}, fmt.Errorf("%w: plane fitting needs 3 points, got %d", ErrNotEnoughPoints, len(cloud))
	}

	coords := mat.NewDense(len(cloud), 3, nil)
	for i, p := range cloud {
		coords.Set(i, 0, p.X)
		coords.Set(i, 1, p.Y)
		coords.Set(i, 2, p.Z)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(coords, nil); !ok {
		return geometry.PlaneFit{}, fmt.Errorf("%w: principal component analysis did not converge", ErrPlaneFitFailed)
	}

	// Principal components are ordered by decreasing variance; the plane
	// normal is the direction of least variance, the last column.
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	normal := geometry.NewVector3(vecs.At(0, 2), vecs.At(1, 2), vecs.At(2, 2))
	if normal.LengthSquared() < 1e-12 {
		return geometry.PlaneFit{}, fmt.Errorf("%w: cloud has no planar extent", ErrPlaneFitFailed)
	}
	if normal.Dot(geometry.NewVector3(1, 1, 1)) < 0 {
		normal = normal.Negate()
	}
	normal = normal.Normalize()

	centroid, _ := cloud.Centroid()
	u, v := geometry.OrthonormalBasis(normal)
	basis := geometry.Plane{Origin: centroid, U: u, V: v, Normal: normal}
	return geometry.PlaneFit{Basis: basis, Centroid: centroid}, nil
}
