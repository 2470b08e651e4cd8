package httpd

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/service"
)

const multipartOverhead = 1 << 20

var errForbidden = service.Forbidden("No tienes permiso para realizar esta acción")

// authorizeUser lets staff act for anyone and everybody else only for themselves.
func (h *Handler) authorizeUser(w http.ResponseWriter, r *http.Request, userID int64) bool {
	claims := claimsFromContext(r.Context())
	if claims == nil || !claims.CanActFor(userID) {
		h.handleServiceError(w, r, errForbidden)
		return false
	}
	return true
}

func (h *Handler) authorizeAssignment(w http.ResponseWriter, r *http.Request, id int64) bool {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		h.handleServiceError(w, r, errForbidden)
		return false
	}
	if claims.HasRole(models.RoleAdmin, models.RoleMaestro) {
		return true
	}

	assignment, err := h.assignmentService.GetAssignment(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return false
	}
	if assignment.UsuarioID != claims.ID {
		h.handleServiceError(w, r, errForbidden)
		return false
	}
	return true
}

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssignmentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{
		"mensaje":    "Tarea asignada correctamente",
		"asignacion": assignment,
	})
}

func (h *Handler) ListUserAssignments(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "usuario_id")
	if !ok || !h.authorizeUser(w, r, userID) {
		return
	}

	tasks, err := h.assignmentService.ListForUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"tareas": tasks})
}

func (h *Handler) ResolveAssignment(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "tarea_id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "usuario_id")
	if !ok || !h.authorizeUser(w, r, userID) {
		return
	}

	detail, err := h.assignmentService.ResolveOrCreate(r.Context(), taskID, userID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"asignacion": detail})
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "tarea_id")
	if !ok {
		return
	}

	submissions, err := h.assignmentService.ListSubmissions(r.Context(), taskID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"entregas": submissions})
}

func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.assignmentService.GetAssignment(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	claims := claimsFromContext(r.Context())
	if !claims.HasRole(models.RoleAdmin, models.RoleMaestro) && detail.UsuarioID != claims.ID {
		h.handleServiceError(w, r, errForbidden)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"asignacion": detail})
}

func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok || !h.authorizeAssignment(w, r, id) {
		return
	}

	var req models.UpdateAssignmentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	assignment, err := h.assignmentService.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"mensaje":    "Asignación actualizada correctamente",
		"asignacion": assignment,
	})
}

func (h *Handler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok || !h.authorizeAssignment(w, r, id) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, "El archivo excede el tamaño máximo permitido")
			return
		}
		writeError(w, http.StatusBadRequest, "No se ha enviado ningún archivo")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("archivo")
	if err != nil {
		h.handleServiceError(w, r, service.Invalid("No se ha enviado ningún archivo"))
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		writeError(w, http.StatusBadRequest, "El archivo excede el tamaño máximo permitido")
		return
	}

	upload := &service.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}

	assignment, err := h.submissionService.Submit(r.Context(), id, upload)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"mensaje":    "Archivo entregado correctamente",
		"asignacion": assignment,
	})
}

func (h *Handler) DownloadSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok || !h.authorizeAssignment(w, r, id) {
		return
	}

	download, err := h.submissionService.Download(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	defer download.Content.Close()

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": download.Filename,
	}))
	w.Header().Set("Content-Type", "application/octet-stream")
	if download.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(download.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, download.Content); err != nil {
		requestLogger(r, h.logger).Warn().Err(err).Int64("asignacion_id", id).Msg("Download interrupted")
	}
}
