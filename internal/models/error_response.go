package models

import (
	"fmt"
	"strings"
)

// ErrorResponse стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid request"`                     // Сообщение об ошибке
	Details string `json:"details,omitempty" example:"request body is not JSON"` // Дополнительные детали
}

// ValidationError ошибка валидации одного поля
type ValidationError struct {
	Field   string `json:"field" example:"ageYears"`                 // Имя поля
	Message string `json:"message" example:"must be between 18 and 100"` // Причина отклонения
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
}

// ValidationErrors полный список нарушений схемы; валидатор собирает
// все ошибки, а не только первую.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// ValidationErrorResponse ответ при нарушении схемы запроса
// @Description Полный список ошибок валидации по полям
type ValidationErrorResponse struct {
	Error            string           `json:"error" example:"validation error"` // Тип ошибки
	ValidationErrors ValidationErrors `json:"validation_errors"`                // Ошибки по каждому полю
}
