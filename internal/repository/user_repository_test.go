package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, nopLogger())
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ana", "Lopez", "0102", "ana@escuela.edu", "hash", models.RoleMiembro).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fecha_creacion"}).AddRow(11, now))

	user := &models.User{Nombre: "Ana", Apellido: "Lopez", Cedula: "0102", Email: "ana@escuela.edu", Password: "hash", Rol: models.RoleMiembro}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, now, user.FechaCreacion)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err := repo.Create(context.Background(), &models.User{Email: "ana@escuela.edu"})
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestUserRepository_GetByEmailMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("nadie@escuela.edu").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByEmail(context.Background(), "nadie@escuela.edu")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_ListFilters(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE rol = $1 AND (LOWER(nombre) LIKE $2")).
		WithArgs("maestro", "%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "apellido", "email", "rol"}).
			AddRow(2, "Ana", "Perez", "ana@escuela.edu", "maestro"))

	users, err := repo.List(context.Background(), models.UserFilter{Rol: "maestro", Search: "ANA"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleMaestro, users[0].Rol)
}

func TestUserRepository_ListEmpty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nombre, apellido, email, rol FROM users ORDER BY nombre ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "apellido", "email", "rol"}))

	users, err := repo.List(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, nopLogger())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepository_PendingTaskTitles(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db, nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("tu.completado = false")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"titulo"}).AddRow("Lab1").AddRow("Lab2"))

	titles, err := repo.PendingTaskTitles(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lab1", "Lab2"}, titles)
}
