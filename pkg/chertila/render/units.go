package render

import "gonum.org/v1/plot/vg"

// DefaultDPI is the raster resolution used when none is configured.
const DefaultDPI = 96

// PixelsToLength converts a pixel count at dpi to a vg length.
// 1 inch = dpi pixels, so px pixels span px/dpi inches.
func PixelsToLength(px, dpi int) vg.Length {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return vg.Length(px) * vg.Inch / vg.Length(dpi)
}
