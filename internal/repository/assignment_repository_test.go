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

var assignmentRowColumns = []string{
	"id", "tarea_id", "usuario_id", "estado", "progreso", "completado",
	"archivo_entregado", "archivo_original", "fecha_asignacion",
}

func TestAssignmentRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (tarea_id, usuario_id) DO NOTHING")).
		WithArgs(int64(3), int64(7)).
		WillReturnRows(sqlmock.NewRows(assignmentRowColumns).
			AddRow(10, 3, 7, "pendiente", 0, false, nil, nil, time.Now()))

	a, err := repo.Create(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(10), a.ID)
	assert.Equal(t, "pendiente", a.Estado)
	assert.Nil(t, a.ArchivoEntregado)
}

func TestAssignmentRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tareas_usuarios")).
		WithArgs(int64(3), int64(7)).
		WillReturnRows(sqlmock.NewRows(assignmentRowColumns))

	_, err := repo.Create(context.Background(), 3, 7)
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestAssignmentRepository_CreateUnknownReference(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tareas_usuarios")).
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), 3, 700)
	assert.True(t, errors.Is(err, ErrReference))
}

func TestAssignmentRepository_CreateDefaultForGeneral(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, nopLogger())

	mock.ExpectExec(regexp.QuoteMeta("WHERE t.id = $1 AND t.asignacion_general = true")).
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateDefaultForGeneral(context.Background(), 3, 7))
}

func TestAssignmentRepository_ListForUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, nopLogger())

	columns := []string{
		"id", "tarea_id", "titulo", "descripcion", "creador_id", "tipo", "enlace_video",
		"fecha_limite", "instrucciones", "asignacion_general", "fecha_creacion",
		"estado", "progreso", "completado",
	}
	mock.ExpectQuery(regexp.QuoteMeta("UNION ALL")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(10, 3, "Lab1", nil, 5, "tarea", nil, nil, nil, false, time.Now(), "entregado", 100, true).
			AddRow(nil, 4, "Lab2", nil, 5, "tarea", nil, nil, nil, true, time.Now(), nil, nil, nil))

	tasks, err := repo.ListForUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	require.NotNil(t, tasks[0].ID)
	assert.Equal(t, int64(10), *tasks[0].ID)
	assert.Equal(t, 100, *tasks[0].Progreso)

	assert.Nil(t, tasks[1].ID)
	assert.Nil(t, tasks[1].Estado)
	assert.Nil(t, tasks[1].Progreso)
	assert.Nil(t, tasks[1].Completado)
	assert.Equal(t, "Lab2", tasks[1].Titulo)
}

func TestAssignmentRepository_MarkSubmitted(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, nopLogger())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"archivo_entregado"}).AddRow("entrega-1-2.pdf"))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE tareas_usuarios SET")).
		WithArgs("entrega-3-4.pdf", "informe.pdf", "entregado", int64(10)).
		WillReturnRows(sqlmock.NewRows(assignmentRowColumns).
			AddRow(10, 3, 7, "entregado", 100, true, "entrega-3-4.pdf", "informe.pdf", time.Now()))
	mock.ExpectCommit()

	a, previous, err := repo.MarkSubmitted(context.Background(), 10, "entrega-3-4.pdf", "informe.pdf")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.True(t, a.Completado)
	assert.Equal(t, 100, a.Progreso)
	assert.Equal(t, models.AssignmentStatusDelivered.String(), a.Estado)
	require.NotNil(t, previous)
	assert.Equal(t, "entrega-1-2.pdf", *previous)
}

func TestAssignmentRepository_MarkSubmittedMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, nopLogger())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"archivo_entregado"}))
	mock.ExpectRollback()

	a, previous, err := repo.MarkSubmitted(context.Background(), 99, "x", "y")
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.Nil(t, previous)
}

func TestAssignmentRepository_ListSubmissions(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssignmentRepository(db, nopLogger())

	columns := []string{
		"id", "estado", "progreso", "completado", "fecha_asignacion", "archivo_entregado",
		"usuario_id", "nombre", "apellido", "email",
	}
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY tu.fecha_asignacion ASC")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(10, "entregado", 100, true, time.Now(), "entrega-1-2.pdf", 7, "Ana", "Lopez", "ana@escuela.edu"))

	subs, err := repo.ListSubmissions(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, int64(10), subs[0].EntregaID)
	assert.Equal(t, "Ana", subs[0].Nombre)
}
