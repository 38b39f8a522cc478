// Package fit computes ordinary least squares line fits.
package fit

import (
	"errors"
	"math"

	"github.com/chertila/chertila-go/pkg/chertila/models"
)

// DefaultSamples is the number of points used to draw a fitted line.
const DefaultSamples = 100

var (
	// ErrTooFewPoints indicates fewer than models.MinPoints samples.
	ErrTooFewPoints = errors.New("too few points for a line fit")
	// ErrDegenerate indicates all X coordinates coincide and the slope is undefined.
	ErrDegenerate = errors.New("all x coordinates are equal")
	// ErrOutOfRange indicates coordinates whose spread overflows or
	// underflows float64, so no finite line exists.
	ErrOutOfRange = errors.New("coordinates out of representable range")
)

// Linear fits y = a*x + b to points with the closed-form OLS solution
// a = (nΣxy - ΣxΣy) / (nΣx² - (Σx)²), b = (Σy - aΣx) / n.
// The sums are taken about the means: same solution, without the
// cancellation that large x offsets such as timestamps cause.
func Linear(points []models.Point) (models.FitResult, error) {
	if len(points) < models.MinPoints {
		return models.FitResult{}, ErrTooFewPoints
	}
	if allEqualX(points) {
		return models.FitResult{}, ErrDegenerate
	}

	n := float64(len(points))
	var meanX, meanY float64
	for _, p := range points {
		meanX += p.X
		meanY += p.Y
	}
	meanX /= n
	meanY /= n

	// sxx = (nΣx² - (Σx)²)/n, sxy = (nΣxy - ΣxΣy)/n
	var sxx, sxy float64
	for _, p := range points {
		dx := p.X - meanX
		sxx += dx * dx
		sxy += dx * (p.Y - meanY)
	}
	if sxx == 0 {
		return models.FitResult{}, ErrOutOfRange
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX
	if !finite(meanX, meanY, sxx, sxy, slope, intercept) {
		return models.FitResult{}, ErrOutOfRange
	}

	return models.FitResult{Slope: slope, Intercept: intercept}, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// allEqualX reports whether every point shares the first X exactly.
func allEqualX(points []models.Point) bool {
	for _, p := range points[1:] {
		if p.X != points[0].X {
			return false
		}
	}
	return true
}

// Sample evaluates f at n uniformly spaced points across [lo, hi], both ends
// included. n below 2 yields the two endpoints.
func Sample(f models.FitResult, lo, hi float64, n int) []models.Point {
	if n < 2 {
		n = 2
	}
	out := make([]models.Point, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi
		}
		out[i] = models.Point{X: x, Y: f.At(x)}
	}
	return out
}

// RSquared returns the coefficient of determination of f over points.
// It is 1 when every Y is identical and the fit is exact.
func RSquared(f models.FitResult, points []models.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	var mean float64
	for _, p := range points {
		mean += p.Y
	}
	mean /= float64(len(points))

	var ssRes, ssTot float64
	for _, p := range points {
		r := p.Y - f.At(p.X)
		d := p.Y - mean
		ssRes += r * r
		ssTot += d * d
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}
