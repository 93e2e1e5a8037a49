package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/profiscan/blobvol/pkg/analysis"
	"github.com/profiscan/blobvol/pkg/geometry"
	"github.com/profiscan/blobvol/pkg/picking"
)

var (
	pickCell               float64
	pickX, pickY, pickZ    float64
	pickDX, pickDY, pickDZ float64
)

var pickCmd = &cobra.Command{
	Use:   "pick [file]",
	Short: "Resolve a ray to the nearest cloud point",
	Long: `Resolve a pick ray against a scan: the forward cloud point nearest the
ray line wins. Without a direction the point nearest the ray origin is
returned, which also covers clouds entirely behind the origin.`,
	Args: cobra.ExactArgs(1),
	Run:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().Float64Var(&pickX, "x", 0.0, "X coordinate of the ray origin")
	pickCmd.Flags().Float64Var(&pickY, "y", 0.0, "Y coordinate of the ray origin")
	pickCmd.Flags().Float64Var(&pickZ, "z", 0.0, "Z coordinate of the ray origin")
	pickCmd.Flags().Float64Var(&pickDX, "dx", 0.0, "X component of the ray direction")
	pickCmd.Flags().Float64Var(&pickDY, "dy", 0.0, "Y component of the ray direction")
	pickCmd.Flags().Float64Var(&pickDZ, "dz", 0.0, "Z component of the ray direction")
	pickCmd.Flags().Float64Var(&pickCell, "cell", 0.0, "Voxel cell size for downsampling before picking (0 = off)")
}

func runPick(cmd *cobra.Command, args []string) {
	filename := args[0]

	cloud, err := loadCloud(filename, pickCell)
	if err != nil {
		fail("reading scan file", err)
	}

	ray := geometry.NewRay(
		geometry.NewVector3(pickX, pickY, pickZ),
		geometry.NewVector3(pickDX, pickDY, pickDZ),
	)

	point, ok := picking.Resolve(nil, ray, cloud)

	fmt.Println("Ray Pick")
	fmt.Println("========")
	fmt.Printf("Origin: %s\n", analysis.FormatVector(ray.Origin))
	if ray.HasDirection() {
		fmt.Printf("Direction: %s\n", analysis.FormatVector(ray.Dir.Normalize()))
	} else {
		fmt.Println("Direction: none (nearest to origin)")
	}
	fmt.Println()

	if !ok {
		fmt.Println("No point found: the cloud is empty.")
		return
	}

	fmt.Printf("Picked point: %s\n", analysis.FormatVector(point))
	fmt.Printf("Distance to origin: %s\n", analysis.FormatMeasurement(ray.Origin.Distance(point), "units"))
}
