package httpd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briggittemora/Gestion-de-tareas/internal/auth"
	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository/inmem"
	"github.com/briggittemora/Gestion-de-tareas/internal/service"
	"github.com/briggittemora/Gestion-de-tareas/internal/service/integration"
	"github.com/briggittemora/Gestion-de-tareas/internal/storage"
	"github.com/briggittemora/Gestion-de-tareas/internal/validation"
)

type testServer struct {
	router      http.Handler
	tokens      *auth.TokenManager
	users       repository.UserRepository
	tasks       repository.TaskRepository
	assignments repository.AssignmentRepository
	settings    repository.SettingsRepository
}

func setup(t *testing.T) *testServer {
	t.Helper()
	db := inmem.NewDB()
	logger := zerolog.Nop()

	users := inmem.NewUserRepository(db)
	tasks := inmem.NewTaskRepository(db)
	assignments := inmem.NewAssignmentRepository(db)
	settings := inmem.NewSettingsRepository(db)
	store, err := storage.NewLocalStorage(afero.NewMemMapFs(), "uploads", logger)
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret", 2*time.Hour, "gestion-tareas")
	validator := validation.New()

	h := NewHandler(
		service.NewAuthService(users, settings, tokens, validator, logger),
		service.NewUserService(users, logger),
		service.NewTaskService(tasks, validator, logger),
		service.NewAssignmentService(assignments, tasks, validator, logger),
		service.NewSubmissionService(assignments, settings, store, integration.NewNoopPublisher(), logger),
		service.NewSettingsService(settings, logger),
		service.NewDashboardService(inmem.NewDashboardRepository(db), logger),
		1<<20,
		logger,
	)

	router := chi.NewRouter()
	h.RegisterRoutes(router)

	return &testServer{
		router:      router,
		tokens:      tokens,
		users:       users,
		tasks:       tasks,
		assignments: assignments,
		settings:    settings,
	}
}

func (s *testServer) createUser(t *testing.T, nombre, email, password string, rol models.Role) (*models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	u := &models.User{Nombre: nombre, Apellido: "Prueba", Cedula: "ced-" + email, Email: email, Password: hash, Rol: rol}
	require.NoError(t, s.users.Create(context.Background(), u))

	token, err := s.tokens.Generate(u)
	require.NoError(t, err)
	return u, token
}

func (s *testServer) createTask(t *testing.T, titulo string, creator int64, general bool) *models.Task {
	t.Helper()
	task := &models.Task{Titulo: titulo, CreadorID: creator, Tipo: "tarea", AsignacionGeneral: general}
	require.NoError(t, s.tasks.Create(context.Background(), task))
	return task
}

func (s *testServer) do(t *testing.T, method, path, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

type httpTest struct {
	name        string
	method      string
	path        string
	token       string
	body        []byte
	wantCode    int
	wantMessage string
}

func TestRoleGates(t *testing.T) {
	s := setup(t)
	_, adminToken := s.createUser(t, "Ana", "ana@test.ec", "secreto", models.RoleAdmin)
	maestro, maestroToken := s.createUser(t, "Mario", "mario@test.ec", "secreto", models.RoleMaestro)
	miembro, miembroToken := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)
	other, _ := s.createUser(t, "Otro", "otro@test.ec", "secreto", models.RoleMiembro)
	task := s.createTask(t, "Ensayo", maestro.ID, true)

	newTask := []byte(`{"titulo":"Lectura","creador_id":` + id(maestro.ID) + `,"tipo":"lectura"}`)

	tests := []httpTest{
		{
			name:        "no token",
			method:      http.MethodGet,
			path:        "/api/tareas/" + id(task.ID),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Token no proporcionado",
		},
		{
			name:        "garbage token",
			method:      http.MethodGet,
			path:        "/api/tareas/" + id(task.ID),
			token:       "not-a-jwt",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Token inválido",
		},
		{
			name:     "member reads task",
			method:   http.MethodGet,
			path:     "/api/tareas/" + id(task.ID),
			token:    miembroToken,
			wantCode: http.StatusOK,
		},
		{
			name:        "member creates task",
			method:      http.MethodPost,
			path:        "/api/tareas",
			token:       miembroToken,
			body:        newTask,
			wantCode:    http.StatusForbidden,
			wantMessage: "No tienes permiso para realizar esta acción",
		},
		{
			name:     "teacher creates task",
			method:   http.MethodPost,
			path:     "/api/tareas",
			token:    maestroToken,
			body:     newTask,
			wantCode: http.StatusCreated,
		},
		{
			name:     "member lists users",
			method:   http.MethodGet,
			path:     "/api/users",
			token:    miembroToken,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "teacher lists users",
			method:   http.MethodGet,
			path:     "/api/users?rol=miembro",
			token:    maestroToken,
			wantCode: http.StatusOK,
		},
		{
			name:     "teacher deletes user",
			method:   http.MethodDelete,
			path:     "/api/users/" + id(other.ID),
			token:    maestroToken,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "member reads own tasks",
			method:   http.MethodGet,
			path:     "/api/asignaciones/usuario/" + id(miembro.ID),
			token:    miembroToken,
			wantCode: http.StatusOK,
		},
		{
			name:     "member reads someone else's tasks",
			method:   http.MethodGet,
			path:     "/api/asignaciones/usuario/" + id(other.ID),
			token:    miembroToken,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "member opens admin dashboard",
			method:   http.MethodGet,
			path:     "/api/dashboard",
			token:    miembroToken,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "admin opens dashboard",
			method:   http.MethodGet,
			path:     "/api/dashboard",
			token:    adminToken,
			wantCode: http.StatusOK,
		},
		{
			name:     "member updates settings",
			method:   http.MethodPut,
			path:     "/api/configuracion",
			token:    miembroToken,
			body:     []byte(`{"notificaciones":false}`),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "anyone reads settings",
			method:   http.MethodGet,
			path:     "/api/configuracion",
			wantCode: http.StatusOK,
		},
		{
			name:     "bad id",
			method:   http.MethodGet,
			path:     "/api/tareas/abc",
			token:    adminToken,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantMessage != "" {
				body := decodeBody(t, rec)
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.wantMessage, body["mensaje"])
			}
		})
	}
}

func TestExpiredToken(t *testing.T) {
	s := setup(t)
	u, _ := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)

	expired := auth.NewTokenManager("test-secret", -time.Minute, "gestion-tareas")
	token, err := expired.Generate(u)
	require.NoError(t, err)

	rec := s.do(t, http.MethodGet, "/api/asignaciones/usuario/"+id(u.ID), token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token expirado", decodeBody(t, rec)["mensaje"])
}

func TestMaintenance(t *testing.T) {
	s := setup(t)
	_, adminToken := s.createUser(t, "Ana", "ana@test.ec", "secreto", models.RoleAdmin)
	miembro, miembroToken := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)

	on := true
	_, err := s.settings.Update(context.Background(), models.SettingsPatch{ModoMantenimiento: &on})
	require.NoError(t, err)

	tests := []httpTest{
		{
			name:        "member blocked",
			method:      http.MethodGet,
			path:        "/api/asignaciones/usuario/" + id(miembro.ID),
			token:       miembroToken,
			wantCode:    http.StatusServiceUnavailable,
			wantMessage: "El sistema está en mantenimiento. Inténtalo más tarde.",
		},
		{
			name:     "register blocked",
			method:   http.MethodPost,
			path:     "/api/auth/register",
			body:     []byte(`{"nombre":"A","apellido":"B","cedula":"1","correo":"a@b.ec","contrasena":"secreto"}`),
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "admin passes",
			method:   http.MethodGet,
			path:     "/api/asignaciones/usuario/" + id(miembro.ID),
			token:    adminToken,
			wantCode: http.StatusOK,
		},
		{
			name:     "login stays open",
			method:   http.MethodPost,
			path:     "/api/auth/login",
			body:     []byte(`{"correo":"luz@test.ec","contrasena":"secreto"}`),
			wantCode: http.StatusOK,
		},
		{
			name:     "settings stay readable",
			method:   http.MethodGet,
			path:     "/api/configuracion",
			wantCode: http.StatusOK,
		},
		{
			name:     "health stays open",
			method:   http.MethodGet,
			path:     "/health",
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeBody(t, rec)["mensaje"])
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	s := setup(t)

	rec := s.do(t, http.MethodPost, "/api/auth/register", "",
		[]byte(`{"nombre":"Luz","apellido":"Mora","cedula":"0102","correo":"luz@test.ec","contrasena":"secreto"}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	usuario := decodeBody(t, rec)["usuario"].(map[string]interface{})
	assert.Equal(t, "miembro", usuario["rol"])

	rec = s.do(t, http.MethodPost, "/api/auth/register", "",
		[]byte(`{"nombre":"Luz","apellido":"Mora","cedula":"0102","correo":"luz@test.ec","contrasena":"secreto"}`))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/auth/register", "",
		[]byte(`{"nombre":"","apellido":"Mora","cedula":"0103","correo":"no-es-correo","contrasena":"123"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["detalles"])

	rec = s.do(t, http.MethodPost, "/api/auth/login", "",
		[]byte(`{"correo":"luz@test.ec","contrasena":"otra"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/auth/login", "",
		[]byte(`{"correo":"luz@test.ec","contrasena":"secreto"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	claims, err := s.tokens.Parse(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "luz@test.ec", claims.Email)
	assert.Equal(t, models.RoleMiembro, claims.Rol)
}

func TestRegister_RoleRequiresAdmin(t *testing.T) {
	s := setup(t)
	_, adminToken := s.createUser(t, "Ana", "ana@test.ec", "secreto", models.RoleAdmin)

	payload := []byte(`{"nombre":"Mario","apellido":"Paz","cedula":"0201","correo":"mario@test.ec","contrasena":"secreto","rol":"maestro"}`)

	rec := s.do(t, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/auth/register", adminToken, payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "maestro", decodeBody(t, rec)["usuario"].(map[string]interface{})["rol"])
}

func TestGeneralTaskAppearsForMember(t *testing.T) {
	s := setup(t)
	maestro, maestroToken := s.createUser(t, "Mario", "mario@test.ec", "secreto", models.RoleMaestro)
	miembro, miembroToken := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)

	rec := s.do(t, http.MethodPost, "/api/tareas", maestroToken,
		[]byte(`{"titulo":"Ensayo","creador_id":`+id(maestro.ID)+`,"tipo":"ensayo","fecha_limite":"2026-11-30"}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tarea := decodeBody(t, rec)["tarea"].(map[string]interface{})
	assert.Equal(t, true, tarea["asignacion_general"])
	taskID := int64(tarea["id"].(float64))

	rec = s.do(t, http.MethodGet, "/api/asignaciones/usuario/"+id(miembro.ID), miembroToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tareas := decodeBody(t, rec)["tareas"].([]interface{})
	require.Len(t, tareas, 1)
	entry := tareas[0].(map[string]interface{})
	assert.Nil(t, entry["id"])
	assert.Nil(t, entry["estado"])
	assert.Equal(t, "2026-11-30T00:00:00Z", entry["fecha_limite"])

	rec = s.do(t, http.MethodGet, "/api/asignaciones/detalle/"+id(taskID)+"/"+id(miembro.ID), miembroToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	detail := decodeBody(t, rec)["asignacion"].(map[string]interface{})
	assert.Equal(t, "pendiente", detail["estado"])
	assert.Equal(t, "Ensayo", detail["titulo"])

	rec = s.do(t, http.MethodGet, "/api/asignaciones/usuario/"+id(miembro.ID), miembroToken, nil)
	tareas = decodeBody(t, rec)["tareas"].([]interface{})
	require.Len(t, tareas, 1)
	assert.NotNil(t, tareas[0].(map[string]interface{})["id"])
}

func TestCreateAssignment_Duplicate(t *testing.T) {
	s := setup(t)
	maestro, maestroToken := s.createUser(t, "Mario", "mario@test.ec", "secreto", models.RoleMaestro)
	miembro, _ := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)
	task := s.createTask(t, "Proyecto", maestro.ID, false)

	payload := []byte(`{"tarea_id":` + id(task.ID) + `,"usuario_id":` + id(miembro.ID) + `}`)

	rec := s.do(t, http.MethodPost, "/api/asignaciones", maestroToken, payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/asignaciones", maestroToken, payload)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/asignaciones", maestroToken,
		[]byte(`{"tarea_id":9999,"usuario_id":`+id(miembro.ID)+`}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateAssignment(t *testing.T) {
	s := setup(t)
	maestro, _ := s.createUser(t, "Mario", "mario@test.ec", "secreto", models.RoleMaestro)
	miembro, miembroToken := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)
	_, otherToken := s.createUser(t, "Otro", "otro@test.ec", "secreto", models.RoleMiembro)
	task := s.createTask(t, "Proyecto", maestro.ID, false)

	a, err := s.assignments.Create(context.Background(), task.ID, miembro.ID)
	require.NoError(t, err)

	rec := s.do(t, http.MethodPut, "/api/asignaciones/"+id(a.ID), otherToken, []byte(`{"progreso":50}`))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/asignaciones/"+id(a.ID), miembroToken, []byte(`{"progreso":150}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/asignaciones/"+id(a.ID), miembroToken, []byte(`{"progreso":50,"estado":"en progreso"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	asignacion := decodeBody(t, rec)["asignacion"].(map[string]interface{})
	assert.EqualValues(t, 50, asignacion["progreso"])
	assert.Equal(t, "en progreso", asignacion["estado"])

	rec = s.do(t, http.MethodPut, "/api/asignaciones/9999", miembroToken, []byte(`{"progreso":50}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestSubmitAndDownload(t *testing.T) {
	s := setup(t)
	maestro, maestroToken := s.createUser(t, "Mario", "mario@test.ec", "secreto", models.RoleMaestro)
	miembro, miembroToken := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)
	task := s.createTask(t, "Informe", maestro.ID, false)

	a, err := s.assignments.Create(context.Background(), task.ID, miembro.ID)
	require.NoError(t, err)

	rec := s.do(t, http.MethodGet, "/api/asignaciones/"+id(a.ID)+"/descargar", miembroToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	content := []byte("%PDF-1.4 informe final")
	body, contentType := multipartBody(t, "archivo", "informe.pdf", content)
	req := httptest.NewRequest(http.MethodPost, "/api/asignaciones/"+id(a.ID)+"/entrega", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+miembroToken)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody(t, rec)
	assert.Equal(t, "Archivo entregado correctamente", resp["mensaje"])
	asignacion := resp["asignacion"].(map[string]interface{})
	assert.Equal(t, "entregado", asignacion["estado"])
	assert.EqualValues(t, 100, asignacion["progreso"])
	assert.Equal(t, true, asignacion["completado"])
	assert.Equal(t, "informe.pdf", asignacion["archivo_original"])

	rec = s.do(t, http.MethodGet, "/api/asignaciones/"+id(a.ID)+"/descargar", maestroToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "informe.pdf")
	got, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	rec = s.do(t, http.MethodGet, "/api/asignaciones/tarea/"+id(task.ID)+"/entregas", maestroToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entregas := decodeBody(t, rec)["entregas"].([]interface{})
	require.Len(t, entregas, 1)
	assert.Equal(t, "Luz", entregas[0].(map[string]interface{})["nombre"])
}

func TestSubmit_MissingFile(t *testing.T) {
	s := setup(t)
	maestro, _ := s.createUser(t, "Mario", "mario@test.ec", "secreto", models.RoleMaestro)
	miembro, miembroToken := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)
	task := s.createTask(t, "Informe", maestro.ID, false)

	a, err := s.assignments.Create(context.Background(), task.ID, miembro.ID)
	require.NoError(t, err)

	body, contentType := multipartBody(t, "otro", "informe.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/asignaciones/"+id(a.ID)+"/entrega", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+miembroToken)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No se ha enviado ningún archivo", decodeBody(t, rec)["mensaje"])
}

func TestDeleteUser(t *testing.T) {
	s := setup(t)
	_, adminToken := s.createUser(t, "Ana", "ana@test.ec", "secreto", models.RoleAdmin)
	maestro, _ := s.createUser(t, "Mario", "mario@test.ec", "secreto", models.RoleMaestro)
	miembro, _ := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)
	libre, _ := s.createUser(t, "Libre", "libre@test.ec", "secreto", models.RoleMiembro)
	task := s.createTask(t, "Ensayo", maestro.ID, false)

	_, err := s.assignments.Create(context.Background(), task.ID, miembro.ID)
	require.NoError(t, err)

	rec := s.do(t, http.MethodDelete, "/api/users/"+id(miembro.ID), adminToken, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []interface{}{"Ensayo"}, body["tareas_pendientes"])

	rec = s.do(t, http.MethodDelete, "/api/users/"+id(libre.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/users/"+id(libre.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTask_PendingAssignees(t *testing.T) {
	s := setup(t)
	maestro, maestroToken := s.createUser(t, "Mario", "mario@test.ec", "secreto", models.RoleMaestro)
	miembro, _ := s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)
	task := s.createTask(t, "Ensayo", maestro.ID, false)

	_, err := s.assignments.Create(context.Background(), task.ID, miembro.ID)
	require.NoError(t, err)

	rec := s.do(t, http.MethodDelete, "/api/tareas/"+id(task.ID), maestroToken, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, []interface{}{"Luz Prueba"}, decodeBody(t, rec)["usuarios_pendientes"])
}

func TestTeacherDashboard(t *testing.T) {
	s := setup(t)
	maestro, maestroToken := s.createUser(t, "Mario", "mario@test.ec", "secreto", models.RoleMaestro)
	s.createUser(t, "Luz", "luz@test.ec", "secreto", models.RoleMiembro)
	s.createTask(t, "Ensayo", maestro.ID, true)

	rec := s.do(t, http.MethodGet, "/api/dashboard/maestro", maestroToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/dashboard/maestro?userId="+id(maestro.ID), maestroToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["estudiantesInscritos"])
	assert.EqualValues(t, 1, body["tareasCreadas"])
	assert.EqualValues(t, 0, body["entregasRecibidas"])
}
