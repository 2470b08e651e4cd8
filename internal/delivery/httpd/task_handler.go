package httpd

import (
	"net/http"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{
		"mensaje": "Tarea creada correctamente",
		"tarea":   task,
	})
}

func (h *Handler) ListTasksByCreator(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := queryID(w, r, "creador_id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByCreator(r.Context(), creatorID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"tareas": tasks})
}

func (h *Handler) ListTasksByAssignee(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok || !h.authorizeUser(w, r, userID) {
		return
	}

	tasks, err := h.taskService.ListByAssignee(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"tareas": tasks})
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"tarea": task})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"mensaje": "Tarea actualizada correctamente",
		"tarea":   task,
	})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"mensaje": "Tarea eliminada correctamente"})
}
