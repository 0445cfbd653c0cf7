package handlers

import (
	"net/http"
	"time"

	"stemi-service/internal/metrics"
	"stemi-service/internal/models"
	"stemi-service/internal/services"

	"github.com/gin-gonic/gin"
)

// PredictHandler обрабатывает HTTP запросы скоринга STEMI
type PredictHandler struct {
	predictionService *services.PredictionService
	m                 metrics.Prometheus
}

// NewPredictHandler создает новый обработчик запросов скоринга
func NewPredictHandler(predictionService *services.PredictionService, m metrics.Prometheus) *PredictHandler {
	return &PredictHandler{predictionService: predictionService, m: m}
}

// Predict выполняет оценку вероятности STEMI
// @Summary Оценка вероятности STEMI
// @Description Валидирует клинические признаки пациента, вычисляет вероятность STEMI, категорию риска и вклад каждого признака в log-odds
// @Tags stemi
// @Accept json
// @Produce json
// @Param request body models.FeatureRecord true "Клинические признаки пациента"
// @Success 200 {object} models.PredictionResult "Результат скоринга"
// @Failure 400 {object} models.ValidationErrorResponse "Ошибки валидации по полям"
// @Router /stemi/predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	// Тело разбирается в нетипизированную карту: валидатор сам различает
	// отсутствующие поля, неверные типы и выход за границы, и сообщает
	// обо всех нарушениях сразу, чего не дает биндинг в структуру.
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.m.BadRequests.Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Details: "request body is not a JSON object",
		})
		return
	}

	result, errs := h.predictionService.Predict(raw)
	if errs != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
			Error:            "validation error",
			ValidationErrors: errs,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Model возвращает метаданные модели
// @Summary Метаданные модели скоринга
// @Description Версия таблицы коэффициентов, схема входных признаков с границами и пороги категорий риска
// @Tags stemi
// @Produce json
// @Success 200 {object} services.ModelInfo "Описание модели"
// @Router /stemi/model [get]
func (h *PredictHandler) Model(c *gin.Context) {
	c.JSON(http.StatusOK, h.predictionService.DescribeModel())
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса скоринга
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис работает"
// @Router /stemi/health [get]
func (h *PredictHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
