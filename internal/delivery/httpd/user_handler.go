package httpd

import (
	"net/http"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := models.UserFilter{
		Rol:    r.URL.Query().Get("rol"),
		Search: r.URL.Query().Get("search"),
	}

	users, err := h.userService.List(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"usuarios": users})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"mensaje": "Usuario eliminado correctamente"})
}
