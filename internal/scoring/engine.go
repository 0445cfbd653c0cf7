package scoring

import (
	"fmt"
	"math"
	"sort"

	"stemi-service/internal/models"
	"stemi-service/pkg/utils"
)

// Engine скоринговый движок STEMI. Чистая детерминированная функция
// от валидированного FeatureRecord к PredictionResult: без ввода-вывода,
// без состояния кроме неизменяемой таблицы коэффициентов, поэтому
// безопасно вызывается из любого числа горутин.
type Engine struct {
	table      CoefficientTable
	thresholds RiskThresholds
}

// NewEngine создает движок с заданной таблицей и порогами.
// Таблица и пороги проверяются один раз здесь, а не на каждый запрос.
func NewEngine(table CoefficientTable, thresholds RiskThresholds) (*Engine, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid coefficient table: %w", err)
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid risk thresholds: %w", err)
	}
	return &Engine{table: table, thresholds: thresholds}, nil
}

// ModelVersion возвращает версию используемой таблицы коэффициентов
func (e *Engine) ModelVersion() string {
	return e.table.Version
}

// Thresholds возвращает пороги категорий риска
func (e *Engine) Thresholds() RiskThresholds {
	return e.thresholds
}

// Predict вычисляет вероятность STEMI и разложение по признакам.
// Линейный предиктор суммируется из вкладов в каноническом порядке
// признаков, поэтому z == intercept + Σ вкладов побитово, и повторный
// вызов с тем же входом дает идентичный результат.
func (e *Engine) Predict(f models.FeatureRecord) models.PredictionResult {
	contributions := make(map[string]float64, len(models.FeatureNames)+1)
	contributions[models.InterceptKey] = e.table.Intercept

	z := e.table.Intercept
	for _, name := range models.FeatureNames {
		c := e.table.Weights[name] * encode(f, name)
		contributions[name] = c
		z += c
	}

	// Ограниченные признаки и конечная таблица не могут дать не-число;
	// если оно появилось, таблица повреждена и маскировать это нельзя.
	if !utils.IsFinite(z) {
		panic(fmt.Sprintf("scoring: non-finite linear predictor %v for record %+v", z, f))
	}

	p := utils.Sigmoid(z)

	return models.PredictionResult{
		ModelVersion:  e.table.Version,
		Probability:   p,
		RiskCategory:  e.thresholds.Categorize(p),
		Contributions: contributions,
		TopFactors:    rankContributions(contributions),
	}
}

// encode переводит признак в числовое представление модели.
// Булевы признаки кодируются как 0/1, непрерывные — монотонным
// преобразованием, зафиксированным вместе с таблицей коэффициентов.
func encode(f models.FeatureRecord, name string) float64 {
	switch name {
	case "ageYears":
		return (float64(f.AgeYears) - 60.0) / 10.0
	case "male":
		return boolToFloat(f.Male)
	case "chestPainTypical":
		return boolToFloat(f.ChestPainTypical)
	case "stElevationMm":
		return f.STElevationMm
	case "reciprocalChanges":
		return boolToFloat(f.ReciprocalChanges)
	case "troponinNgL":
		return math.Log10(1.0 + f.TroponinNgL)
	case "heartRateBpm":
		return (float64(f.HeartRateBpm) - 75.0) / 10.0
	case "systolicBp":
		return (float64(f.SystolicBp) - 120.0) / 10.0
	case "smoker":
		return boolToFloat(f.Smoker)
	case "diabetes":
		return boolToFloat(f.Diabetes)
	default:
		panic(fmt.Sprintf("scoring: unknown feature %q", name))
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

// rankContributions сортирует вклады по убыванию абсолютной величины.
// При равенстве — по имени, чтобы порядок был стабильным.
func rankContributions(contributions map[string]float64) []models.Contribution {
	ranked := make([]models.Contribution, 0, len(contributions))
	for term, value := range contributions {
		ranked = append(ranked, models.Contribution{Term: term, Value: value})
	}
	sort.Slice(ranked, func(i, j int) bool {
		ai, aj := math.Abs(ranked[i].Value), math.Abs(ranked[j].Value)
		if ai != aj {
			return ai > aj
		}
		return ranked[i].Term < ranked[j].Term
	})
	return ranked
}
