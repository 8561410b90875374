package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/Sc-Mae/squad-service/internal/domain/errors"
	"github.com/Sc-Mae/squad-service/internal/transport/http/dto"
)

var validate = validator.New()

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

// respondError отправляет ошибку в формате API
func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}

// respondValidationError превращает ошибку валидации в INVALID_INPUT
func respondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		respondError(w, http.StatusBadRequest, "INVALID_INPUT",
			"field "+f.Namespace()+" failed "+f.Tag()+" validation")
		return
	}
	respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
}

// handleUseCaseError обрабатывает ошибки из usecase слоя
func handleUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		status := getStatusCodeByErrorCode(domainErr.Code)
		respondError(w, status, domainErr.Code, domainErr.Message)
		return
	}

	slog.Error("unexpected usecase error", "error", err)
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// getStatusCodeByErrorCode возвращает HTTP статус код по коду доменной ошибки
func getStatusCodeByErrorCode(code string) int {
	switch code {
	case "SQUAD_EXISTS", "PARSE_ERROR", "INVALID_INPUT":
		return http.StatusBadRequest
	case "NOT_FOUND":
		return http.StatusNotFound
	case "UNAUTHORIZED":
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
