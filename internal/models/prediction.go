package models

// Категории риска STEMI. Пороговые значения заданы в таблице коэффициентов.
const (
	RiskLow          = "Low"
	RiskIntermediate = "Intermediate"
	RiskHigh         = "High"
)

// InterceptKey зарезервированный ключ вклада свободного члена в карте contributions.
const InterceptKey = "intercept"

// PredictionResult результат скоринга для одного пациента
// @Description Вероятность STEMI, категория риска и разложение по признакам
type PredictionResult struct {
	PredictionID  string             `json:"prediction_id" example:"550e8400-e29b-41d4-a716-446655440000"` // UUID предсказания
	ModelVersion  string             `json:"model_version" example:"stemi-lr-v1"`                          // Версия таблицы коэффициентов
	Probability   float64            `json:"probability" example:"0.848"`                                  // Вероятность STEMI, строго в (0,1)
	RiskCategory  string             `json:"riskCategory" example:"High" enums:"Low,Intermediate,High"`    // Категория риска
	Contributions map[string]float64 `json:"contributions"`                                                // Вклад каждого члена в log-odds; сумма равна логиту вероятности
	TopFactors    []Contribution     `json:"top_factors"`                                                  // Вклады, отсортированные по абсолютной величине
}

// Contribution именованный вклад одного члена модели в log-odds
type Contribution struct {
	Term  string  `json:"term" example:"chestPainTypical"` // Имя признака или "intercept"
	Value float64 `json:"value" example:"1.1"`             // Подписанный вклад в log-odds
}
