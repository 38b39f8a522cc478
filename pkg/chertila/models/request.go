// Package models defines data structures for plot commands.
package models

// MinPoints is the smallest number of samples a line fit accepts.
const MinPoints = 2

// Point is a single measured sample.
type Point struct {
	// X is the abscissa.
	X float64 `json:"x"`
	// Y is the ordinate.
	Y float64 `json:"y"`
}

// ErrorMargin holds the per-point measurement uncertainty.
type ErrorMargin struct {
	// XD is the half-width of the error rectangle (>= 0).
	XD float64 `json:"xd"`
	// YD is the half-height of the error rectangle (>= 0).
	YD float64 `json:"yd"`
}

// PlotRequest is a validated plot command. It is built once by the parser
// and must not be mutated afterwards.
type PlotRequest struct {
	// Title is the plot title (never empty).
	Title string `json:"title"`
	// XLabel is the X axis label (may be empty).
	XLabel string `json:"x_label"`
	// YLabel is the Y axis label (may be empty).
	YLabel string `json:"y_label"`
	// Points are the samples in plotting order.
	Points []Point `json:"points"`
	// Grid enables the background grid.
	Grid bool `json:"grid"`
	// Margin enables error rectangles when non-nil.
	Margin *ErrorMargin `json:"margin,omitempty"`
}

// XYs returns copies of the X and Y coordinates.
func (r *PlotRequest) XYs() (xs, ys []float64) {
	xs = make([]float64, len(r.Points))
	ys = make([]float64, len(r.Points))
	for i, p := range r.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// XRange returns the smallest and largest X coordinate.
// Both are zero when there are no points.
func (r *PlotRequest) XRange() (lo, hi float64) {
	for i, p := range r.Points {
		if i == 0 || p.X < lo {
			lo = p.X
		}
		if i == 0 || p.X > hi {
			hi = p.X
		}
	}
	return lo, hi
}
