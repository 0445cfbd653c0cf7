package models

// FeatureRecord валидированный набор клинических признаков пациента.
// Создается только валидатором, после создания не изменяется.
type FeatureRecord struct {
	AgeYears          int     `json:"ageYears" example:"60"`            // Возраст пациента в годах (18-100)
	Male              bool    `json:"male" example:"true"`              // Мужской пол
	ChestPainTypical  bool    `json:"chestPainTypical" example:"true"`  // Типичная ангинозная боль
	STElevationMm     float64 `json:"stElevationMm" example:"2.0"`      // Элевация ST в мм (0-10, шаг 0.5)
	ReciprocalChanges bool    `json:"reciprocalChanges" example:"true"` // Реципрокные изменения на ЭКГ
	TroponinNgL       float64 `json:"troponinNgL" example:"80"`         // Тропонин, нг/л (0-100000)
	HeartRateBpm      int     `json:"heartRateBpm" example:"90"`        // ЧСС, уд/мин (30-220)
	SystolicBp        int     `json:"systolicBp" example:"120"`         // Систолическое АД, мм рт.ст. (60-240)
	Smoker            bool    `json:"smoker" example:"false"`           // Курение
	Diabetes          bool    `json:"diabetes" example:"false"`         // Сахарный диабет
}

// FeatureNames канонический порядок признаков. Порядок фиксирован:
// в нем суммируются вклады, чтобы результат был побитово воспроизводим.
var FeatureNames = []string{
	"ageYears",
	"male",
	"chestPainTypical",
	"stElevationMm",
	"reciprocalChanges",
	"troponinNgL",
	"heartRateBpm",
	"systolicBp",
	"smoker",
	"diabetes",
}
