// Package httperrors транслирует доменные ошибки в HTTP-статусы
// и структурированное JSON-тело вида {"error": ..., "details": ...}.
package httperrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourname/stream_lite/internal/models"
)

type payload struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrFileNotFound), errors.Is(err, models.ErrContentNotFound):
		writeJSON(w, http.StatusNotFound, err)
	case errors.Is(err, models.ErrInvalidRange):
		writeJSON(w, http.StatusRequestedRangeNotSatisfiable, err)
	case errors.Is(err, models.ErrBadPath):
		writeJSON(w, http.StatusBadRequest, err)
	case errors.Is(err, models.ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, err)
	default:
		// ErrUpstream, ErrContentURLMissing и любые неожиданные ошибки — 500.
		writeJSON(w, http.StatusInternalServerError, err)
	}
}

// writeJSON пишет статус и тело; details заполняется обёрнутым контекстом,
// если ошибка несёт что-то кроме sentinel-текста.
func writeJSON(w http.ResponseWriter, status int, err error) {
	body := payload{Error: sentinelText(err)}
	if full := err.Error(); full != body.Error {
		body.Details = full
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// sentinelText возвращает текст базовой sentinel-ошибки, чтобы поле error
// оставалось стабильным для клиентов независимо от обёрток.
func sentinelText(err error) string {
	for _, s := range []error{
		models.ErrFileNotFound,
		models.ErrContentNotFound,
		models.ErrContentURLMissing,
		models.ErrUpstream,
		models.ErrInvalidRange,
		models.ErrBadPath,
		models.ErrPermissionDenied,
		models.ErrStreamIO,
	} {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return err.Error()
}
