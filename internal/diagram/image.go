package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportMoistureCurve exports the moisture-response curve to an image file
func ExportMoistureCurve(data SpreadCurveData, filename string) error {
	p := plot.New()
	p.Title.Text = "Rate of Fire Spread vs Fuel Moisture"
	p.X.Label.Text = "Fuel moisture content (fraction)"
	p.Y.Label.Text = "Rate of spread (ft/s)"

	rates, step := sampleCurve(data)

	// Spread rate curve
	curvePts := make(plotter.XYs, len(rates))
	var maxRate float64
	for i, r := range rates {
		curvePts[i] = plotter.XY{X: float64(i) * step, Y: r}
		if r > maxRate {
			maxRate = r
		}
	}

	curve, err := plotter.NewLine(curvePts)
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(curve)

	// Moisture of extinction reference line
	extLine, err := plotter.NewLine(plotter.XYs{
		{X: data.Bed.MoistureExtinction, Y: 0},
		{X: data.Bed.MoistureExtinction, Y: maxRate},
	})
	if err != nil {
		return err
	}
	extLine.LineStyle.Width = vg.Points(1.5)
	extLine.LineStyle.Color = color.Gray{Y: 128}
	extLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(extLine)

	// Operating point
	opPoint, err := plotter.NewScatter(plotter.XYs{
		{X: data.Moisture, Y: data.Rate},
	})
	if err != nil {
		return err
	}
	opPoint.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	opPoint.GlyphStyle.Radius = vg.Points(5)
	opPoint.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(opPoint)

	// Add annotations
	labels := []struct {
		x, y float64
		text string
	}{
		{data.Bed.MoistureExtinction, maxRate * 0.95, fmt.Sprintf("M_x=%.2f", data.Bed.MoistureExtinction)},
		{data.Moisture, data.Rate, fmt.Sprintf("R=%.3f ft/s", data.Rate)},
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	// Determine file format from extension
	ext := filepath.Ext(filename)
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
