package httpd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/briggittemora/Gestion-de-tareas/pkg/utils"
)

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := utils.ReadJSON(w, r, dst, maxJSONBody); err != nil {
		requestLogger(r, h.logger).Debug().Err(err).Msg("Invalid request body")
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" inválido")
		return 0, false
	}
	return id, true
}

// queryID parses an optional numeric query parameter. Absent yields 0.
func queryID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	id, err := utils.ParseID(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" inválido")
		return 0, false
	}
	return id, true
}
