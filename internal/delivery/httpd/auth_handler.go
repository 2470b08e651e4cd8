package httpd

import (
	"net/http"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Register(r.Context(), &req, claimsFromContext(r.Context()))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{
		"mensaje": "Usuario registrado correctamente",
		"usuario": user,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"mensaje": "Inicio de sesión exitoso",
		"token":   resp.Token,
		"usuario": resp.Usuario,
	})
}

func (h *Handler) ListDirectory(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Directory(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"usuarios": users})
}
