// Package render draws plot requests as raster images.
package render

import (
	"github.com/chertila/chertila-go/pkg/chertila/fit"
	"github.com/chertila/chertila-go/pkg/chertila/models"
)

// Box is an axis-aligned error rectangle in data coordinates.
type Box struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Corners returns the closed outline of the box, starting and ending at
// the bottom-left corner.
func (b Box) Corners() []models.Point {
	return []models.Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
		{X: b.MinX, Y: b.MinY},
	}
}

// Geometry is everything drawn for a request, in data coordinates.
type Geometry struct {
	// Scatter holds the measured points in request order.
	Scatter []models.Point
	// Line holds the sampled fit line over [min x, max x].
	Line []models.Point
	// Boxes holds one error rectangle per point, empty without a margin.
	Boxes []Box
	// Grid reports whether the background grid is drawn.
	Grid bool
}

// Layout computes the geometry for req and its fitted line f.
func Layout(req *models.PlotRequest, f models.FitResult, samples int) Geometry {
	if samples <= 0 {
		samples = fit.DefaultSamples
	}

	scatter := make([]models.Point, len(req.Points))
	copy(scatter, req.Points)

	lo, hi := req.XRange()
	g := Geometry{
		Scatter: scatter,
		Line:    fit.Sample(f, lo, hi, samples),
		Grid:    req.Grid,
	}

	if m := req.Margin; m != nil {
		g.Boxes = make([]Box, len(req.Points))
		for i, p := range req.Points {
			g.Boxes[i] = Box{
				MinX: p.X - m.XD,
				MinY: p.Y - m.YD,
				MaxX: p.X + m.XD,
				MaxY: p.Y + m.YD,
			}
		}
	}

	return g
}

// boxBounds finds the bounding box of all boxes.
func boxBounds(boxes []Box) (minX, maxX, minY, maxY float64) {
	for i, b := range boxes {
		if i == 0 || b.MinX < minX {
			minX = b.MinX
		}
		if i == 0 || b.MaxX > maxX {
			maxX = b.MaxX
		}
		if i == 0 || b.MinY < minY {
			minY = b.MinY
		}
		if i == 0 || b.MaxY > maxY {
			maxY = b.MaxY
		}
	}
	return
}
