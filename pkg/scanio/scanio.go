// Package scanio loads and stores the point cloud files the sensor tooling
// exchanges: PCD scans, plain XYZ text and, for loading only, STL meshes
// flattened to their vertices.
package scanio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/profiscan/blobvol/pkg/pointcloud"
	"github.com/profiscan/blobvol/pkg/stl"
)

// ErrUnsupportedFormat reports a file extension no codec handles.
var ErrUnsupportedFormat = errors.New("unsupported scan file format")

// Load reads a point cloud, choosing the codec by file extension: .pcd, .xyz
// or .stl. An STL mesh is flattened to its vertex positions.
func Load(filename string) (pointcloud.Cloud, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pcd":
		return ReadPCD(filename)
	case ".xyz":
		return ReadXYZ(filename)
	case ".stl":
		mesh, err := stl.Parse(filename)
		if err != nil {
			return nil, err
		}
		return pointcloud.Cloud(mesh.Positions), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}

// Save writes a point cloud, choosing the codec by file extension: .pcd or
// .xyz.
func Save(filename string, cloud pointcloud.Cloud) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pcd":
		return WritePCD(filename, cloud)
	case ".xyz":
		return WriteXYZ(filename, cloud)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}
