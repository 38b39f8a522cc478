package fit

import (
	"testing"

	"github.com/chertila/chertila-go/pkg/chertila/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	t.Run("collinear points fit exactly", func(t *testing.T) {
		f, err := Linear([]models.Point{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 4}})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, f.Slope, 1e-12)
		assert.InDelta(t, 1.0, f.Intercept, 1e-12)
	})

	t.Run("two points pass through both", func(t *testing.T) {
		pts := []models.Point{{X: -2, Y: 7}, {X: 4, Y: -5}}
		f, err := Linear(pts)
		require.NoError(t, err)
		for _, p := range pts {
			assert.InDelta(t, p.Y, f.At(p.X), 1e-9)
		}
	})

	t.Run("noisy points", func(t *testing.T) {
		// y = 2x + 1 with symmetric noise
		f, err := Linear([]models.Point{{X: 0, Y: 1.5}, {X: 1, Y: 2.5}, {X: 2, Y: 5.5}, {X: 3, Y: 6.5}})
		require.NoError(t, err)
		assert.InDelta(t, 1.8, f.Slope, 1e-9)
		assert.InDelta(t, 1.3, f.Intercept, 1e-9)
	})

	t.Run("point order is irrelevant", func(t *testing.T) {
		a, err := Linear([]models.Point{{X: 1, Y: 1}, {X: 2, Y: 4}, {X: 3, Y: 8}})
		require.NoError(t, err)
		b, err := Linear([]models.Point{{X: 3, Y: 8}, {X: 1, Y: 1}, {X: 2, Y: 4}})
		require.NoError(t, err)
		assert.InDelta(t, a.Slope, b.Slope, 1e-12)
		assert.InDelta(t, a.Intercept, b.Intercept, 1e-12)
	})

	t.Run("vertical point cloud is degenerate", func(t *testing.T) {
		_, err := Linear([]models.Point{{X: 2, Y: 1}, {X: 2, Y: 5}, {X: 2, Y: 9}})
		assert.ErrorIs(t, err, ErrDegenerate)
	})

	t.Run("large equal x is degenerate", func(t *testing.T) {
		_, err := Linear([]models.Point{{X: 1e8 + 0.1, Y: 1}, {X: 1e8 + 0.1, Y: 2}})
		assert.ErrorIs(t, err, ErrDegenerate)
	})

	t.Run("large x offset with small spread", func(t *testing.T) {
		tests := []struct {
			name      string
			points    []models.Point
			slope     float64
			intercept float64
		}{
			{"two points near 1e6", []models.Point{{X: 1e6, Y: 1}, {X: 1e6 + 1, Y: 2}}, 1, 1 - 1e6},
			{"three points near 1e6", []models.Point{{X: 1e6, Y: 1}, {X: 1e6 + 1, Y: 2}, {X: 1e6 + 2, Y: 3}}, 1, 1 - 1e6},
			{"unix timestamps", []models.Point{{X: 1.7e9, Y: 1}, {X: 1.7e9 + 60, Y: 2}, {X: 1.7e9 + 120, Y: 3}}, 1.0 / 60, 1 - 1.7e9/60},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f, err := Linear(tt.points)
				require.NoError(t, err)
				assert.InDelta(t, tt.slope, f.Slope, 1e-9)
				assert.InEpsilon(t, tt.intercept, f.Intercept, 1e-9)
			})
		}
	})

	t.Run("overflowing spread is out of range", func(t *testing.T) {
		_, err := Linear([]models.Point{{X: 1e200, Y: 1}, {X: 2e200, Y: 2}})
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = Linear([]models.Point{{X: -1e200, Y: 1}, {X: 1e200, Y: 2}})
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.NotErrorIs(t, err, ErrDegenerate)
	})

	t.Run("underflowing spread is out of range", func(t *testing.T) {
		_, err := Linear([]models.Point{{X: 1e-200, Y: 1}, {X: 2e-200, Y: 2}})
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := Linear([]models.Point{{X: 1, Y: 1}})
		assert.ErrorIs(t, err, ErrTooFewPoints)
		_, err = Linear(nil)
		assert.ErrorIs(t, err, ErrTooFewPoints)
	})
}

func TestSample(t *testing.T) {
	f := models.FitResult{Slope: 1, Intercept: 1}

	pts := Sample(f, 1, 3, DefaultSamples)
	require.Len(t, pts, DefaultSamples)
	assert.Equal(t, models.Point{X: 1, Y: 2}, pts[0])
	assert.Equal(t, models.Point{X: 3, Y: 4}, pts[len(pts)-1])
	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i].X, pts[i-1].X)
	}

	assert.Len(t, Sample(f, 0, 1, 0), 2)
}

func TestRSquared(t *testing.T) {
	exact := []models.Point{{X: 1, Y: 2}, {X: 2, Y: 3}}
	assert.InDelta(t, 1.0, RSquared(models.FitResult{Slope: 1, Intercept: 1}, exact), 1e-12)

	flat := []models.Point{{X: 1, Y: 2}, {X: 2, Y: 2}}
	assert.InDelta(t, 1.0, RSquared(models.FitResult{Slope: 0, Intercept: 2}, flat), 1e-12)

	assert.Equal(t, 0.0, RSquared(models.FitResult{}, nil))
}
