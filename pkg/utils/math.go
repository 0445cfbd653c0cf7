package utils

import "math"

// Sigmoid логистическая функция 1 / (1 + e^-z).
// Двухветвевая форма: при больших |z| e^-z не переполняется.
// На краях представимого диапазона (|z| больше ~745) экспонента
// денормализуется до 0, поэтому результат прижимается к ближайшим
// к 0 и 1 значениям float64 — он всегда строго внутри (0, 1).
func Sigmoid(z float64) float64 {
	if z < 0 {
		ez := math.Exp(z)
		p := ez / (1.0 + ez)
		if p == 0 {
			return math.SmallestNonzeroFloat64
		}
		return p
	}
	p := 1.0 / (1.0 + math.Exp(-z))
	if p == 1 {
		return math.Nextafter(1, 0)
	}
	return p
}

// Logit обратная к сигмоиде: log(p / (1-p)).
func Logit(p float64) float64 {
	return math.Log(p / (1.0 - p))
}

// IsFinite проверяет, что значение не NaN и не бесконечность
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsInteger проверяет, что вещественное значение целое
func IsInteger(v float64) bool {
	return v == math.Trunc(v)
}
