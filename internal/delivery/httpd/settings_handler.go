package httpd

import (
	"net/http"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"configuracion": settings})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if !h.decodeJSON(w, r, &patch) {
		return
	}

	settings, err := h.settingsService.UpdateSettings(r.Context(), &patch)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"mensaje":       "Configuración actualizada",
		"configuracion": settings,
	})
}
