package render

import (
	"bytes"
	"io"

	"github.com/chertila/chertila-go/pkg/chertila/models"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Supported raster encodings.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// Default image size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Config controls the raster output.
type Config struct {
	// Width and Height are the image size in pixels.
	Width  int
	Height int
	// DPI is the raster resolution.
	DPI int
	// Format is FormatPNG or FormatJPEG.
	Format string
	// Samples is the number of points used to draw the fit line.
	Samples int
}

// Draw renders req with its fitted line f and returns the encoded image.
// Each call owns its canvas and buffer, so Draw is safe for concurrent use.
func Draw(req *models.PlotRequest, f models.FitResult, cfg Config) ([]byte, error) {
	g := Layout(req, f, cfg.Samples)

	p, err := newPlot(req, g)
	if err != nil {
		return nil, err
	}

	width, height, dpi := cfg.Width, cfg.Height, cfg.DPI
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	canvas := vgimg.NewWith(
		vgimg.UseWH(PixelsToLength(width, dpi), PixelsToLength(height, dpi)),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(canvas))

	var w io.WriterTo
	switch cfg.Format {
	case FormatPNG, "":
		w = &vgimg.PngCanvas{Canvas: canvas}
	case FormatJPEG:
		w = &vgimg.JpegCanvas{Canvas: canvas}
	default:
		return nil, errors.Errorf("unsupported image format %q", cfg.Format)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to encode image")
	}
	return buf.Bytes(), nil
}
