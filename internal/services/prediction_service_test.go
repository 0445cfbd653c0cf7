package services

import (
	"testing"

	"stemi-service/internal/metrics"
	"stemi-service/internal/models"
	"stemi-service/internal/scoring"
	"stemi-service/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Счетчики регистрируются в общем реестре один раз на пакет
var testMetrics = metrics.NewPrometheusMetrics()

func newTestService(t *testing.T) *PredictionService {
	t.Helper()
	engine, err := scoring.NewEngine(scoring.DefaultCoefficients(), scoring.DefaultThresholds())
	require.NoError(t, err)
	return NewPredictionService(engine, testMetrics)
}

func validRaw() map[string]any {
	return map[string]any{
		"ageYears":          60.0,
		"male":              true,
		"chestPainTypical":  true,
		"stElevationMm":     2.0,
		"reciprocalChanges": true,
		"troponinNgL":       80.0,
		"heartRateBpm":      90.0,
		"systolicBp":        120.0,
		"smoker":            false,
		"diabetes":          false,
	}
}

func TestPredictAssignsPredictionID(t *testing.T) {
	svc := newTestService(t)

	result, errs := svc.Predict(validRaw())
	require.Nil(t, errs)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.PredictionID)
	assert.Equal(t, "stemi-lr-v1", result.ModelVersion)
	assert.Greater(t, result.Probability, 0.0)
	assert.Less(t, result.Probability, 1.0)

	// Два запроса — два разных идентификатора, остальное идентично
	second, errs := svc.Predict(validRaw())
	require.Nil(t, errs)
	assert.NotEqual(t, result.PredictionID, second.PredictionID)
	assert.Equal(t, result.Probability, second.Probability)
	assert.Equal(t, result.Contributions, second.Contributions)
}

func TestPredictRejectsInvalidInput(t *testing.T) {
	svc := newTestService(t)

	raw := validRaw()
	raw["ageYears"] = 150.0
	delete(raw, "heartRateBpm")

	result, errs := svc.Predict(raw)
	assert.Nil(t, result)
	require.Len(t, errs, 2)
}

func TestDescribeModel(t *testing.T) {
	svc := newTestService(t)

	info := svc.DescribeModel()
	assert.Equal(t, "stemi-lr-v1", info.ModelVersion)
	assert.Equal(t, scoring.DefaultThresholds(), info.Thresholds)
	require.Len(t, info.Features, len(validation.Schema))

	byName := make(map[string]FeatureInfo, len(info.Features))
	for _, f := range info.Features {
		byName[f.Name] = f
	}
	assert.Equal(t, FeatureInfo{Name: "ageYears", Type: "integer", Min: 18, Max: 100}, byName["ageYears"])
	assert.Equal(t, FeatureInfo{Name: "stElevationMm", Type: "real", Min: 0, Max: 10, Step: 0.5}, byName["stElevationMm"])
	assert.Equal(t, FeatureInfo{Name: "diabetes", Type: "boolean"}, byName["diabetes"])
	for _, name := range models.FeatureNames {
		assert.Contains(t, byName, name)
	}
}
