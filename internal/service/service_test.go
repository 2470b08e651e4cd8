package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository/inmem"
	"github.com/briggittemora/Gestion-de-tareas/internal/storage"
	"github.com/briggittemora/Gestion-de-tareas/internal/validation"
)

type fixture struct {
	users       repository.UserRepository
	tasks       repository.TaskRepository
	assignments repository.AssignmentRepository
	settings    repository.SettingsRepository
	fs          afero.Fs
	store       storage.Storage
	validator   *validation.Validator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := inmem.NewDB()
	fs := afero.NewMemMapFs()
	store, err := storage.NewLocalStorage(fs, "uploads", zerolog.Nop())
	require.NoError(t, err)

	return &fixture{
		users:       inmem.NewUserRepository(db),
		tasks:       inmem.NewTaskRepository(db),
		assignments: inmem.NewAssignmentRepository(db),
		settings:    inmem.NewSettingsRepository(db),
		fs:          fs,
		store:       store,
		validator:   validation.New(),
	}
}

func (f *fixture) addUser(t *testing.T, nombre, email string, rol models.Role) *models.User {
	t.Helper()
	u := &models.User{Nombre: nombre, Apellido: "Test", Cedula: "c-" + email, Email: email, Password: "x", Rol: rol}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) addTask(t *testing.T, titulo string, creator int64, general bool) *models.Task {
	t.Helper()
	task := &models.Task{Titulo: titulo, CreadorID: creator, Tipo: "tarea", AsignacionGeneral: general}
	require.NoError(t, f.tasks.Create(context.Background(), task))
	return task
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int { return &i }
func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }
