// Package chertila parses plot commands and renders them as scatter plots
// with a least squares line.
package chertila

import "github.com/chertila/chertila-go/pkg/chertila/render"

// Format is the raster encoding of a rendered plot.
type Format string

const (
	// FormatPNG encodes lossless PNG images.
	FormatPNG Format = render.FormatPNG
	// FormatJPEG encodes JPEG images.
	FormatJPEG Format = render.FormatJPEG
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatJPEG:
		return Format(s), nil
	case "jpg":
		return FormatJPEG, nil
	}
	return "", &OptionError{Option: "format", Value: s}
}

// ContentType returns the MIME type of the encoding.
func (f Format) ContentType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// Options configures rendering.
type Options struct {
	// Width is the image width in pixels.
	Width int
	// Height is the image height in pixels.
	Height int
	// DPI is the raster resolution.
	DPI int
	// Format is the image encoding.
	Format Format
	// Samples is the number of points used to draw the fit line.
	// If zero, defaults to 100.
	Samples int
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Width:  render.DefaultWidth,
		Height: render.DefaultHeight,
		DPI:    render.DefaultDPI,
		Format: FormatPNG,
	}
}

// Validate reports the first option outside its allowed range.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Width > MaxImageSide {
		return &OptionError{Option: "width", Value: o.Width}
	}
	if o.Height <= 0 || o.Height > MaxImageSide {
		return &OptionError{Option: "height", Value: o.Height}
	}
	if o.DPI < 0 {
		return &OptionError{Option: "dpi", Value: o.DPI}
	}
	if o.Samples < 0 {
		return &OptionError{Option: "samples", Value: o.Samples}
	}
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	return nil
}

// MaxImageSide caps either image dimension in pixels.
const MaxImageSide = 4096

func (o Options) renderConfig() render.Config {
	return render.Config{
		Width:   o.Width,
		Height:  o.Height,
		DPI:     o.DPI,
		Format:  string(o.Format),
		Samples: o.Samples,
	}
}
