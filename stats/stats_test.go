package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/golang-folds/collection"
	"github.com/ARM-software/golang-folds/fold"
)

const epsilon = 1e-9

func TestMean(t *testing.T) {
	assert.InDelta(t, 4.0, fold.RunSlice(Mean[int](), []int{2, 4, 6}), epsilon)
	assert.InDelta(t, 2.5, fold.RunSlice(Mean[float32](), []float32{1, 2, 3, 4}), epsilon)
	assert.InDelta(t, 49.5, fold.RunSlice(Mean[uint8](), collection.Range[uint8](0, 100, nil)), epsilon)
	assert.True(t, math.IsNaN(fold.RunSlice(Mean[int](), nil)))
}

func TestMean_Filtered(t *testing.T) {
	isEven := func(x int) bool { return x%2 == 0 }
	assert.InDelta(t, 4.0, fold.RunSlice(fold.Filter(Mean[int](), isEven), collection.Range(1, 8, nil)), epsilon)
}

func TestMoments(t *testing.T) {
	summary := fold.RunSlice(Moments[int](), []int{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, summary.Count)
	assert.InDelta(t, 5.0, summary.Mean, epsilon)
	assert.InDelta(t, 32.0/7, summary.Variance, epsilon)
	assert.InDelta(t, 0.65625, summary.Skewness, epsilon)
	assert.InDelta(t, 2.78125, summary.Kurtosis, epsilon)
}

func TestMoments_Symmetric(t *testing.T) {
	summary := fold.RunSlice(Moments[float64](), []float64{-2, -1, 0, 1, 2})
	assert.InDelta(t, 0.0, summary.Mean, epsilon)
	assert.InDelta(t, 2.5, summary.Variance, epsilon)
	assert.InDelta(t, 0.0, summary.Skewness, epsilon)
	assert.InDelta(t, 1.7, summary.Kurtosis, epsilon)
}

func TestMoments_Undefined(t *testing.T) {
	summary := fold.RunSlice(Moments[int](), nil)
	assert.Zero(t, summary.Count)
	assert.True(t, math.IsNaN(summary.Mean))
	assert.True(t, math.IsNaN(summary.Variance))

	summary = fold.RunSlice(Moments[int](), []int{3})
	assert.Equal(t, 1, summary.Count)
	assert.InDelta(t, 3.0, summary.Mean, epsilon)
	assert.True(t, math.IsNaN(summary.Variance))
	assert.True(t, math.IsNaN(summary.Skewness))

	summary = fold.RunSlice(Moments[int](), []int{3, 3, 3})
	assert.InDelta(t, 0.0, summary.Variance, epsilon)
	assert.True(t, math.IsNaN(summary.Kurtosis))
}

func TestMeanAndMoments_SinglePass(t *testing.T) {
	result := fold.RunSlice(fold.Par(Mean[int](), Moments[int]()), []int{2, 4, 4, 4, 5, 5, 7, 9})
	mean, summary := result.Values()
	assert.InDelta(t, summary.Mean, mean, epsilon)
}
