package scoring

import (
	"fmt"

	"stemi-service/internal/models"
	"stemi-service/pkg/utils"
)

// CoefficientTable фиксированная таблица логистической модели: свободный член
// и по одному весу на признак. Создается один раз при старте, не изменяется.
// Значения — внешне заданные константы модели, они не выводятся сервисом.
type CoefficientTable struct {
	Version   string
	Intercept float64
	Weights   map[string]float64
}

// RiskThresholds пороги категорий риска по вероятности.
// Интервалы закрыты снизу и открыты сверху: [0, Low) → Low,
// [Low, High) → Intermediate, [High, 1] → High.
type RiskThresholds struct {
	Low  float64 `json:"low" example:"0.15"`  // ниже — Low
	High float64 `json:"high" example:"0.60"` // начиная с этого значения — High
}

// DefaultCoefficients возвращает текущую версию таблицы коэффициентов.
// Веса заданы в log-odds; кодирование признаков описано в encode (engine.go):
// возраст и ЧСС центрированы и масштабированы на декаду, АД центрировано
// на 120, тропонин входит как log10(1+x), элевация ST — в миллиметрах.
func DefaultCoefficients() CoefficientTable {
	return CoefficientTable{
		Version:   "stemi-lr-v1",
		Intercept: -4.5,
		Weights: map[string]float64{
			"ageYears":          0.30,
			"male":              0.45,
			"chestPainTypical":  1.10,
			"stElevationMm":     0.80,
			"reciprocalChanges": 1.30,
			"troponinNgL":       0.85,
			"heartRateBpm":      0.10,
			"systolicBp":        -0.15,
			"smoker":            0.35,
			"diabetes":          0.40,
		},
	}
}

// DefaultThresholds пороговые значения категорий риска
func DefaultThresholds() RiskThresholds {
	return RiskThresholds{Low: 0.15, High: 0.60}
}

// Validate проверяет корректность таблицы перед использованием.
// Вызывается при старте сервиса; ошибка здесь фатальна.
func (t CoefficientTable) Validate() error {
	if !utils.IsFinite(t.Intercept) {
		return fmt.Errorf("intercept is not finite: %v", t.Intercept)
	}
	for _, name := range models.FeatureNames {
		w, ok := t.Weights[name]
		if !ok {
			return fmt.Errorf("missing weight for feature %q", name)
		}
		if !utils.IsFinite(w) {
			return fmt.Errorf("weight for feature %q is not finite: %v", name, w)
		}
	}
	return nil
}

// Validate проверяет, что пороги разбивают [0,1] без пропусков и пересечений
func (rt RiskThresholds) Validate() error {
	if !(rt.Low > 0 && rt.Low < rt.High && rt.High < 1) {
		return fmt.Errorf("thresholds must satisfy 0 < low < high < 1, got low=%g high=%g", rt.Low, rt.High)
	}
	return nil
}

// Categorize относит вероятность к категории риска
func (rt RiskThresholds) Categorize(p float64) string {
	switch {
	case p < rt.Low:
		return models.RiskLow
	case p < rt.High:
		return models.RiskIntermediate
	default:
		return models.RiskHigh
	}
}
