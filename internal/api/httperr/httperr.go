// Package httperr переводит доменные ошибки в HTTP статусы
package httperr

import (
	"errors"
	"net/http"

	"crypto_luck/internal/logger"
	"crypto_luck/internal/model"
	"crypto_luck/pkg/resp"

	"go.uber.org/zap"
)

// Status - HTTP статус для ошибки сервиса
func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidBet),
		errors.Is(err, model.ErrInvalidUsername),
		errors.Is(err, model.ErrInvalidSort),
		errors.Is(err, model.ErrNoBets):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, model.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, model.ErrAccountNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Write пишет ошибку клиенту. Внутренние ошибки логируются, клиенту уходит общий текст
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		logger.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		resp.WriteError(w, status, http.StatusText(status))
		return
	}
	resp.WriteError(w, status, err.Error())
}
