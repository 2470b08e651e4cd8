package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

func TestUserService_List(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.users, zerolog.Nop())
	ctx := context.Background()

	f.addUser(t, "Ana", "ana@escuela.edu", models.RoleMiembro)
	f.addUser(t, "Bruno", "bruno@escuela.edu", models.RoleMaestro)

	tests := []struct {
		name   string
		filter models.UserFilter
		want   []string
	}{
		{"all", models.UserFilter{}, []string{"Ana", "Bruno"}},
		{"todos is no filter", models.UserFilter{Rol: "Todos"}, []string{"Ana", "Bruno"}},
		{"by role", models.UserFilter{Rol: "maestro"}, []string{"Bruno"}},
		{"search is case insensitive", models.UserFilter{Search: "BRU"}, []string{"Bruno"}},
		{"search by email", models.UserFilter{Search: "ana@"}, []string{"Ana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)
			var names []string
			for _, u := range users {
				names = append(names, u.Nombre)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	users, err := svc.List(ctx, models.UserFilter{Search: "ana"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "https://i.pravatar.cc/100?u=ana%40escuela.edu", users[0].Avatar)

	directory, err := svc.Directory(ctx)
	require.NoError(t, err)
	require.Len(t, directory, 2)
	assert.Empty(t, directory[0].Avatar)
}

func TestUserService_DeleteGuard(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.users, zerolog.Nop())
	ctx := context.Background()

	teacher := f.addUser(t, "Profe", "profe@escuela.edu", models.RoleMaestro)
	student := f.addUser(t, "Ana", "ana@escuela.edu", models.RoleMiembro)
	task := f.addTask(t, "Lab1", teacher.ID, false)
	a, err := f.assignments.Create(ctx, task.ID, student.ID)
	require.NoError(t, err)

	err = svc.Delete(ctx, student.ID)
	require.True(t, errors.Is(err, ErrValidation))
	var pending *PendingError
	require.True(t, errors.As(err, &pending))
	assert.Equal(t, []string{"Lab1"}, pending.Pending)

	_, err = f.assignments.UpdateStatus(ctx, a.ID, models.AssignmentPatch{Completado: boolPtr(true)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, student.ID))
	gone, err := f.users.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.True(t, errors.Is(svc.Delete(ctx, student.ID), ErrNotFound))
	assert.True(t, errors.Is(svc.Delete(ctx, teacher.ID), ErrConflict))
}
