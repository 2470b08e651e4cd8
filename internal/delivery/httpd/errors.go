package httpd

import (
	"errors"
	"net/http"

	"github.com/briggittemora/Gestion-de-tareas/internal/service"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrMaintenance):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError writes the response for err. Unknown errors are logged and
// answered with a generic 500.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		requestLogger(r, h.logger).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		writeError(w, status, "Error interno del servidor")
		return
	}

	message := service.Message(err)
	if message == "" {
		message = http.StatusText(status)
	}

	var extra map[string]interface{}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		extra = map[string]interface{}{"detalles": validationErr.Fields}
	}

	var pendingErr *service.PendingError
	if errors.As(err, &pendingErr) {
		extra = map[string]interface{}{
			"detalles":       pendingErr.Pending,
			pendingErr.Field: pendingErr.Pending,
		}
	}

	writeErrorWith(w, status, message, extra)
}
