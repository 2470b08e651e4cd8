package httpd

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/service"
	"github.com/briggittemora/Gestion-de-tareas/pkg/utils"
)

const maxJSONBody = 1 << 20

type Handler struct {
	authService       service.AuthService
	userService       service.UserService
	taskService       service.TaskService
	assignmentService service.AssignmentService
	submissionService service.SubmissionService
	settingsService   service.SettingsService
	dashboardService  service.DashboardService
	maxUploadSize     int64
	logger            zerolog.Logger
}

func NewHandler(
	authService service.AuthService,
	userService service.UserService,
	taskService service.TaskService,
	assignmentService service.AssignmentService,
	submissionService service.SubmissionService,
	settingsService service.SettingsService,
	dashboardService service.DashboardService,
	maxUploadSize int64,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		authService:       authService,
		userService:       userService,
		taskService:       taskService,
		assignmentService: assignmentService,
		submissionService: submissionService,
		settingsService:   settingsService,
		dashboardService:  dashboardService,
		maxUploadSize:     maxUploadSize,
		logger:            logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	staff := RequireRole(models.RoleAdmin, models.RoleMaestro)
	adminOnly := RequireRole(models.RoleAdmin)

	router.Route("/api", func(api chi.Router) {
		api.Use(h.Identify)
		api.Use(h.Maintenance)

		api.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.With(staff).Get("/users", h.ListDirectory)
		})

		api.Route("/configuracion", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.With(adminOnly).Put("/", h.UpdateSettings)
		})

		api.Route("/tareas", func(r chi.Router) {
			r.Use(RequireAuth)
			r.Get("/", h.ListTasksByCreator)
			r.Get("/usuario/{userId}", h.ListTasksByAssignee)
			r.Get("/{id}", h.GetTask)

			r.Group(func(r chi.Router) {
				r.Use(staff)
				r.Post("/", h.CreateTask)
				r.Put("/{id}", h.UpdateTask)
				r.Delete("/{id}", h.DeleteTask)
			})
		})

		api.Route("/asignaciones", func(r chi.Router) {
			r.Use(RequireAuth)
			r.With(staff).Post("/", h.CreateAssignment)
			r.Get("/usuario/{usuario_id}", h.ListUserAssignments)
			r.Get("/detalle/{tarea_id}/{usuario_id}", h.ResolveAssignment)
			r.With(staff).Get("/tarea/{tarea_id}/entregas", h.ListSubmissions)
			r.Get("/{id}", h.GetAssignment)
			r.Put("/{id}", h.UpdateAssignment)
			r.Post("/{id}/entrega", h.SubmitAssignment)
			r.Get("/{id}/descargar", h.DownloadSubmission)
		})

		api.Route("/users", func(r chi.Router) {
			r.With(staff).Get("/", h.ListUsers)
			r.With(adminOnly).Delete("/{id}", h.DeleteUser)
		})

		api.Route("/dashboard", func(r chi.Router) {
			r.With(adminOnly).Get("/", h.AdminDashboard)
			r.With(staff).Get("/maestro", h.TeacherDashboard)
		})
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "gestion-tareas",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	_ = utils.WriteJSON(w, status, data)
}

// writeSuccess answers {"success": true, ...fields}.
func writeSuccess(w http.ResponseWriter, status int, fields map[string]interface{}) {
	response := map[string]interface{}{
		"success": true,
	}
	for k, v := range fields {
		response[k] = v
	}
	writeJSON(w, status, response)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeErrorWith(w, status, message, nil)
}

func writeErrorWith(w http.ResponseWriter, status int, message string, extra map[string]interface{}) {
	response := map[string]interface{}{
		"success": false,
		"mensaje": message,
		"error":   http.StatusText(status),
	}
	for k, v := range extra {
		response[k] = v
	}
	writeJSON(w, status, response)
}
