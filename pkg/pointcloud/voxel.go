package pointcloud

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCellSize is returned when a voxel cell size is not positive.
var ErrInvalidCellSize = errors.New("voxel cell size must be positive")

// cellIndex identifies one cubic grid cell by its integer coordinates.
type cellIndex struct {
	X, Y, Z int64
}

// VoxelDownsample thins a cloud on a cubic grid of the given cell size: the
// first point seen in each occupied cell is kept, later points in the same
// cell are dropped. The output preserves first-occurrence input order, not
// grid order, and never exceeds the input size. Fails with ErrInvalidCellSize
// when cellSize <= 0.
func VoxelDownsample(cloud Cloud, cellSize float64) (Cloud, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCellSize, cellSize)
	}

	seen := make(map[cellIndex]struct{}, len(cloud))
	out := make(Cloud, 0, len(cloud))
	for _, p := range cloud {
		idx := cellIndex{
			X: int64(math.Floor(p.X / cellSize)),
			Y: int64(math.Floor(p.Y / cellSize)),
			Z: int64(math.Floor(p.Z / cellSize)),
		}
		if _, occupied := seen[idx]; occupied {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
