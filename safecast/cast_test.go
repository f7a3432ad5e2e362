package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	assert.Equal(t, 3.0, ToFloat64(3))
	assert.Equal(t, -3.0, ToFloat64(int8(-3)))
	assert.Equal(t, 255.0, ToFloat64(uint8(255)))
	assert.InDelta(t, 1.5, ToFloat64(float32(1.5)), 1e-9)
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int
	}{
		{name: "zero", value: 0, expected: 0},
		{name: "truncated", value: 2.9, expected: 2},
		{name: "negative", value: -2.9, expected: -2},
		{name: "NaN", value: math.NaN(), expected: 0},
		{name: "too large", value: math.Inf(1), expected: math.MaxInt},
		{name: "too small", value: math.Inf(-1), expected: math.MinInt},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ToInt(test.value))
		})
	}
}
