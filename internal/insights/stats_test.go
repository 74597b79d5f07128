package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 2.5, mean([]float64{1, 2, 3, 4}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
}

func TestSampleStdDev(t *testing.T) {
	assert.Equal(t, 0.0, sampleStdDev(nil))
	assert.Equal(t, 0.0, sampleStdDev([]float64{42}))
	assert.InDelta(t, 1.29099, sampleStdDev([]float64{1, 2, 3, 4}), 1e-5)
	assert.Equal(t, 0.0, sampleStdDev([]float64{7, 7, 7}))
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	assert.Equal(t, 0.0, quantile(nil, 0.5))
	assert.Equal(t, 1.0, quantile(values, 0))
	assert.Equal(t, 4.0, quantile(values, 1))
	// Linear interpolation between closest ranks.
	assert.InDelta(t, 1.75, quantile(values, 0.25), 1e-9)
	assert.InDelta(t, 2.5, quantile(values, 0.5), 1e-9)
	assert.InDelta(t, 3.25, quantile(values, 0.75), 1e-9)
}

func TestLinearFit(t *testing.T) {
	slope, intercept, r2 := linearFit([]float64{1, 2, 3, 4})
	assert.InDelta(t, 1.0, slope, 1e-9)
	assert.InDelta(t, 1.0, intercept, 1e-9)
	assert.InDelta(t, 1.0, r2, 1e-9)

	// Constant series has no variance and therefore no fit strength.
	slope, _, r2 = linearFit([]float64{5, 5, 5})
	assert.Equal(t, 0.0, slope)
	assert.Equal(t, 0.0, r2)
}

func TestSimpleTrend(t *testing.T) {
	assert.Equal(t, 0.0, simpleTrend([]float64{1}))
	assert.InDelta(t, 2.0/3.0, simpleTrend([]float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, -1.0, simpleTrend([]float64{5, 4, 3, 2, 1}), 1e-9)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, round2(1.2345))
	assert.Equal(t, 3.14, round2(3.14159))
	assert.Equal(t, -2.5, round2(-2.499))
}
