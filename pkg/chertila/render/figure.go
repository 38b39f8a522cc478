package render

import (
	"image/color"

	"github.com/chertila/chertila-go/pkg/chertila/models"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	scatterColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	lineColor    = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	boxColor     = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// newPlot composes the figure. The plotters are added grid first so the
// data is drawn on top of it.
func newPlot(req *models.PlotRequest, g Geometry) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = req.Title
	p.X.Label.Text = req.XLabel
	p.Y.Label.Text = req.YLabel

	if g.Grid {
		p.Add(plotter.NewGrid())
	}

	if len(g.Boxes) > 0 {
		p.Add(&boxes{
			boxes: g.Boxes,
			style: draw.LineStyle{Color: boxColor, Width: vg.Points(1)},
		})
	}

	line, err := plotter.NewLine(toXYs(g.Line))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build fit line")
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	scatter, err := plotter.NewScatter(toXYs(g.Scatter))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scatter")
	}
	scatter.GlyphStyle.Color = scatterColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	return p, nil
}

func toXYs(points []models.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}

// boxes draws unfilled error rectangles.
type boxes struct {
	boxes []Box
	style draw.LineStyle
}

// Plot implements plot.Plotter.
func (b *boxes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, box := range b.boxes {
		corners := box.Corners()
		outline := make([]vg.Point, len(corners))
		for i, pt := range corners {
			outline[i] = vg.Point{X: trX(pt.X), Y: trY(pt.Y)}
		}
		c.StrokeLines(b.style, c.ClipLinesXY(outline)...)
	}
}

// DataRange implements plot.DataRanger so rectangles are never clipped.
func (b *boxes) DataRange() (xmin, xmax, ymin, ymax float64) {
	return boxBounds(b.boxes)
}
