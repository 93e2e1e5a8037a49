package scanio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/pointcloud"
)

// ReadXYZ reads a whitespace-separated ASCII cloud: one point per line, at
// least three columns, extra columns ignored. Empty lines and lines starting
// with # are skipped.
func ReadXYZ(filename string) (pointcloud.Cloud, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return decodeXYZ(file)
}

// WriteXYZ stores the cloud as ASCII, one "x y z" line per point.
func WriteXYZ(filename string, cloud pointcloud.Cloud) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, p := range cloud {
		if _, err := fmt.Fprintf(writer, "%g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return fmt.Errorf("failed to write point: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}
	return nil
}

func decodeXYZ(reader io.Reader) (pointcloud.Cloud, error) {
	scanner := bufio.NewScanner(reader)
	var cloud pointcloud.Cloud

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 columns, got %d", lineNo, len(fields))
		}

		var coords [3]float64
		for i := 0; i < 3; i++ {
			value, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: failed to parse column %d: %w", lineNo, i+1, err)
			}
			coords[i] = value
		}
		cloud = append(cloud, geometry.NewVector3(coords[0], coords[1], coords[2]))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading XYZ: %w", err)
	}
	return cloud, nil
}
