package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0))

	// Экстремальные значения не должны переполняться и давать ровно 0 или 1
	for _, z := range []float64{-1000, -745, -50, -10, 0, 10, 50, 745, 1000} {
		p := Sigmoid(z)
		assert.Greater(t, p, 0.0, "z=%g", z)
		assert.Less(t, p, 1.0, "z=%g", z)
		assert.False(t, math.IsNaN(p), "z=%g", z)
	}

	assert.InDelta(t, 1.0, Sigmoid(-5)+Sigmoid(5), 1e-12)
}

// За пределами ~|z|=745 экспонента денормализуется до нуля;
// сигмоида при этом обязана остаться строго внутри (0, 1)
func TestSigmoidUnderflowClamped(t *testing.T) {
	assert.Equal(t, math.SmallestNonzeroFloat64, Sigmoid(-1000))
	assert.Equal(t, math.Nextafter(1, 0), Sigmoid(1000))

	// Граница ветвления: чуть выше порога денормализации значение еще честное
	assert.Greater(t, Sigmoid(-700), 0.0)
	assert.Less(t, Sigmoid(700), 1.0)
}

func TestLogitInvertsSigmoid(t *testing.T) {
	for _, z := range []float64{-8, -1.5, 0, 0.3, 4.2} {
		assert.InDelta(t, z, Logit(Sigmoid(z)), 1e-9)
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-123.45))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger(60))
	assert.True(t, IsInteger(-3))
	assert.False(t, IsInteger(60.5))
}
