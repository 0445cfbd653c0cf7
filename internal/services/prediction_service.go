package services

import (
	"log/slog"

	"stemi-service/internal/metrics"
	"stemi-service/internal/models"
	"stemi-service/internal/scoring"
	"stemi-service/internal/validation"

	"github.com/google/uuid"
)

// PredictionService связывает валидатор и скоринговый движок
type PredictionService struct {
	engine *scoring.Engine
	m      metrics.Prometheus
}

// NewPredictionService создает сервис предсказаний
func NewPredictionService(engine *scoring.Engine, m metrics.Prometheus) *PredictionService {
	return &PredictionService{engine: engine, m: m}
}

// Predict валидирует сырой запрос и выполняет скоринг.
// При нарушении схемы возвращает полный список ошибок по полям;
// движок в этом случае не вызывается.
func (s *PredictionService) Predict(raw map[string]any) (*models.PredictionResult, models.ValidationErrors) {
	record, errs := validation.Validate(raw)
	if len(errs) > 0 {
		for _, ve := range errs {
			s.m.ValidationFailures.WithLabelValues(ve.Field).Inc()
		}
		slog.Warn("Запрос отклонен валидатором", "errors", len(errs))
		return nil, errs
	}

	result := s.engine.Predict(record)
	result.PredictionID = uuid.NewString()

	s.m.Predictions.WithLabelValues(result.RiskCategory).Inc()
	slog.Info("Предсказание выполнено",
		"prediction_id", result.PredictionID,
		"model_version", result.ModelVersion,
		"risk_category", result.RiskCategory,
	)

	return &result, nil
}

// ModelInfo метаданные модели для эндпоинта /model
type ModelInfo struct {
	ModelVersion string                 `json:"model_version" example:"stemi-lr-v1"` // Версия таблицы коэффициентов
	Features     []FeatureInfo          `json:"features"`                            // Схема входных признаков
	Thresholds   scoring.RiskThresholds `json:"risk_thresholds"`                     // Пороги категорий риска
}

// FeatureInfo описание одного признака схемы
type FeatureInfo struct {
	Name string  `json:"name" example:"ageYears"` // Имя поля
	Type string  `json:"type" example:"integer"`  // boolean | integer | real
	Min  float64 `json:"min,omitempty" example:"18"`
	Max  float64 `json:"max,omitempty" example:"100"`
	Step float64 `json:"step,omitempty" example:"0.5"`
}

// DescribeModel возвращает версию модели, схему признаков и пороги риска
func (s *PredictionService) DescribeModel() ModelInfo {
	features := make([]FeatureInfo, 0, len(validation.Schema))
	for _, spec := range validation.Schema {
		features = append(features, FeatureInfo{
			Name: spec.Name,
			Type: kindName(spec.Kind),
			Min:  spec.Min,
			Max:  spec.Max,
			Step: spec.Step,
		})
	}
	return ModelInfo{
		ModelVersion: s.engine.ModelVersion(),
		Features:     features,
		Thresholds:   s.engine.Thresholds(),
	}
}

func kindName(k validation.Kind) string {
	switch k {
	case validation.KindBoolean:
		return "boolean"
	case validation.KindInteger:
		return "integer"
	default:
		return "real"
	}
}
