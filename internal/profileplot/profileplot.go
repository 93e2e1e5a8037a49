// Package profileplot renders the slice profile of a volume estimate as a
// chart file for reports.
package profileplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/profiscan/blobvol/pkg/blob"
)

// Render writes an equivalent-radius and area versus height chart of the
// estimate's slices. The image format follows the file extension (.png,
// .svg, .pdf).
func Render(result blob.Result, filename string) error {
	if len(result.Slices) == 0 {
		return fmt.Errorf("no slices to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Blob slice profile (volume %.4f)", result.Volume)
	p.X.Label.Text = "Height above plane"
	p.Y.Label.Text = "Equivalent radius / area"

	radiusPts := make(plotter.XYs, 0, len(result.Slices))
	areaPts := make(plotter.XYs, 0, len(result.Slices))
	for _, s := range result.Slices {
		radiusPts = append(radiusPts, plotter.XY{X: s.HCenter, Y: s.Radius})
		areaPts = append(areaPts, plotter.XY{X: s.HCenter, Y: s.Area})
	}

	radiusLine, radiusPoints, err := plotter.NewLinePoints(radiusPts)
	if err != nil {
		return fmt.Errorf("failed to build radius series: %w", err)
	}
	radiusLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	radiusLine.Width = vg.Points(1.5)
	radiusPoints.Color = radiusLine.Color
	p.Add(radiusLine, radiusPoints)
	p.Legend.Add("radius", radiusLine)

	areaLine, err := plotter.NewLine(areaPts)
	if err != nil {
		return fmt.Errorf("failed to build area series: %w", err)
	}
	areaLine.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	areaLine.Width = vg.Points(1)
	areaLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(areaLine)
	p.Legend.Add("area", areaLine)

	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(8*vg.Inch, 6*vg.Inch, filename); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}
