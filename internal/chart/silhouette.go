package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	XMin = -0.2
	XMax = 1.0

	XLabel = "Silhouette Score"
	YLabel = "Silhouette width proportional \nsamples in each cluster"
)

// Silhouette describes a silhouette plot.
type Silhouette struct {
	Title string
	Mean  float64
	Bands []Band
	YMax  float64
}

// Draw renders the silhouette plot on the canvas.
func (s Silhouette) Draw(c *Canvas) error {
	p := c.Plot
	p.Title.Text = s.Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel

	for _, b := range s.Bands {
		poly, err := plotter.NewPolygon(outline(b))
		if err != nil {
			return fmt.Errorf("could not draw band '%s': %w", b.Name, err)
		}
		poly.Color = b.Color
		poly.LineStyle.Color = color.Black
		poly.LineStyle.Width = vg.Points(0.5)
		p.Add(poly)
	}

	mean, err := plotter.NewLine(plotter.XYs{
		{X: s.Mean, Y: 0},
		{X: s.Mean, Y: s.YMax},
	})
	if err != nil {
		return fmt.Errorf("could not draw mean line at %v: %w", s.Mean, err)
	}
	mean.LineStyle.Color = color.Black
	mean.LineStyle.Width = vg.Points(1)
	mean.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(mean)

	// fix the ranges after adding, the plotters widen them otherwise
	p.X.Min = XMin
	p.X.Max = XMax
	p.Y.Min = 0
	p.Y.Max = s.YMax
	return nil
}

// outline fills the area between x=0 and the sorted scores, one row per score.
func outline(b Band) plotter.XYs {
	xys := make(plotter.XYs, 0, len(b.Values)+2)
	xys = append(xys, plotter.XY{X: 0, Y: b.Lower})
	for i, v := range b.Values {
		xys = append(xys, plotter.XY{X: v, Y: b.Lower + float64(i)})
	}
	xys = append(xys, plotter.XY{X: 0, Y: b.Lower + float64(len(b.Values)-1)})
	return xys
}
