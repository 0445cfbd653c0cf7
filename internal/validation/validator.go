package validation

import (
	"fmt"
	"math"

	"stemi-service/internal/models"
	"stemi-service/pkg/utils"
)

// Kind семантический тип поля схемы
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindReal
)

// FieldSpec описание одного поля канонической схемы признаков
type FieldSpec struct {
	Name string
	Kind Kind
	Min  float64 // включительно, только для числовых полей
	Max  float64 // включительно, только для числовых полей
	Step float64 // 0 — произвольный шаг
}

// Schema каноническая схема десяти клинических признаков.
// Границы совпадают с доменами FeatureRecord.
var Schema = []FieldSpec{
	{Name: "ageYears", Kind: KindInteger, Min: 18, Max: 100},
	{Name: "male", Kind: KindBoolean},
	{Name: "chestPainTypical", Kind: KindBoolean},
	{Name: "stElevationMm", Kind: KindReal, Min: 0, Max: 10, Step: 0.5},
	{Name: "reciprocalChanges", Kind: KindBoolean},
	{Name: "troponinNgL", Kind: KindReal, Min: 0, Max: 100000},
	{Name: "heartRateBpm", Kind: KindInteger, Min: 30, Max: 220},
	{Name: "systolicBp", Kind: KindInteger, Min: 60, Max: 240},
	{Name: "smoker", Kind: KindBoolean},
	{Name: "diabetes", Kind: KindBoolean},
}

// Validate проверяет сырой JSON-объект по канонической схеме.
// Собирает ошибки по ВСЕМ полям, не останавливаясь на первой,
// чтобы клиент получил полный список проблем за один запрос.
// Неизвестные поля игнорируются и в FeatureRecord не попадают.
// Числа в виде строк не принимаются: клинические данные должны
// приходить родными JSON-типами, без тихого перепарсинга.
func Validate(raw map[string]any) (models.FeatureRecord, models.ValidationErrors) {
	var record models.FeatureRecord
	var errs models.ValidationErrors

	values := make(map[string]float64, len(Schema))
	flags := make(map[string]bool, len(Schema))

	for _, spec := range Schema {
		value, ok := raw[spec.Name]
		if !ok || value == nil {
			errs = append(errs, models.ValidationError{
				Field:   spec.Name,
				Message: "is required",
			})
			continue
		}

		if spec.Kind == KindBoolean {
			b, ok := value.(bool)
			if !ok {
				errs = append(errs, models.ValidationError{
					Field:   spec.Name,
					Message: "must be a boolean",
				})
				continue
			}
			flags[spec.Name] = b
			continue
		}

		// encoding/json декодирует любое JSON-число в float64
		num, ok := value.(float64)
		if !ok {
			errs = append(errs, models.ValidationError{
				Field:   spec.Name,
				Message: "must be a number",
			})
			continue
		}
		if !utils.IsFinite(num) {
			errs = append(errs, models.ValidationError{
				Field:   spec.Name,
				Message: "must be a finite number",
			})
			continue
		}
		if spec.Kind == KindInteger && !utils.IsInteger(num) {
			errs = append(errs, models.ValidationError{
				Field:   spec.Name,
				Message: "must be an integer",
			})
			continue
		}
		if num < spec.Min || num > spec.Max {
			errs = append(errs, models.ValidationError{
				Field:   spec.Name,
				Message: fmt.Sprintf("must be between %g and %g", spec.Min, spec.Max),
			})
			continue
		}
		if spec.Step > 0 && !onStep(num, spec.Step) {
			errs = append(errs, models.ValidationError{
				Field:   spec.Name,
				Message: fmt.Sprintf("must be a multiple of %g", spec.Step),
			})
			continue
		}
		values[spec.Name] = num
	}

	if len(errs) > 0 {
		return record, errs
	}

	record = models.FeatureRecord{
		AgeYears:          int(values["ageYears"]),
		Male:              flags["male"],
		ChestPainTypical:  flags["chestPainTypical"],
		STElevationMm:     values["stElevationMm"],
		ReciprocalChanges: flags["reciprocalChanges"],
		TroponinNgL:       values["troponinNgL"],
		HeartRateBpm:      int(values["heartRateBpm"]),
		SystolicBp:        int(values["systolicBp"]),
		Smoker:            flags["smoker"],
		Diabetes:          flags["diabetes"],
	}
	return record, nil
}

// onStep проверяет кратность шагу с допуском на представление float64
func onStep(v, step float64) bool {
	ratio := v / step
	return math.Abs(ratio-math.Round(ratio)) < 1e-9
}
