package models

// FitResult is a fitted line y = Slope*x + Intercept.
type FitResult struct {
	// Slope is the line gradient (a).
	Slope float64 `json:"slope"`
	// Intercept is the value at x = 0 (b).
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at x.
func (f FitResult) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}
