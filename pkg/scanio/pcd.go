package scanio

import (
	"fmt"
	"io"
	"os"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
)

// ReadPCD reads a PCD file and returns its x/y/z channel as a cloud. Extra
// channels (intensity, color) are ignored.
func ReadPCD(filename string) (pointcloud.Cloud, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return decodePCD(file)
}

// WritePCD stores the cloud as a binary PCD file with x/y/z float32 fields.
func WritePCD(filename string, cloud pointcloud.Cloud) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return encodePCD(file, cloud)
}

func decodePCD(reader io.Reader) (pointcloud.Cloud, error) {
	pp, err := pc.Unmarshal(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PCD: %w", err)
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCD position fields: %w", err)
	}

	cloud := make(pointcloud.Cloud, 0, pp.Points)
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		cloud = append(cloud, geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2])))
	}
	return cloud, nil
}

func encodePCD(writer io.Writer, cloud pointcloud.Cloud) error {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z"},
			Size:      []int{4, 4, 4},
			Type:      []string{"F", "F", "F"},
			Count:     []int{1, 1, 1},
			Width:     len(cloud),
			Height:    1,
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: len(cloud),
		Data:   make([]byte, len(cloud)*3*4),
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return fmt.Errorf("failed to build PCD position fields: %w", err)
	}
	for _, p := range cloud {
		it.SetVec3(mat.Vec3{float32(p.X), float32(p.Y), float32(p.Z)})
		it.Incr()
	}

	if err := pc.Marshal(pp, writer); err != nil {
		return fmt.Errorf("failed to encode PCD: %w", err)
	}
	return nil
}
