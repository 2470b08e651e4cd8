// Package inmem holds map-backed repositories used by service and handler tests.
package inmem

import (
	"sort"
	"sync"
	"time"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

type DB struct {
	mutex       sync.RWMutex
	users       map[int64]*models.User
	tasks       map[int64]*models.Task
	assignments map[int64]*models.Assignment
	settings    models.SystemSettings

	userSeq       int64
	taskSeq       int64
	assignmentSeq int64
}

func NewDB() *DB {
	return &DB{
		users:       make(map[int64]*models.User),
		tasks:       make(map[int64]*models.Task),
		assignments: make(map[int64]*models.Assignment),
		settings: models.SystemSettings{
			Notificaciones:    true,
			PermitirRegistros: true,
		},
	}
}

func (db *DB) findAssignment(taskID, userID int64) *models.Assignment {
	for _, a := range db.assignments {
		if a.TareaID == taskID && a.UsuarioID == userID {
			return a
		}
	}
	return nil
}

func (db *DB) detail(a *models.Assignment) *models.AssignmentDetail {
	t := db.tasks[a.TareaID]
	return &models.AssignmentDetail{
		Assignment:    *a,
		Titulo:        t.Titulo,
		Descripcion:   t.Descripcion,
		Tipo:          t.Tipo,
		EnlaceVideo:   t.EnlaceVideo,
		FechaLimite:   t.FechaLimite,
		Instrucciones: t.Instrucciones,
	}
}

func (db *DB) now() time.Time {
	return time.Now().UTC()
}

// deadlineLess orders by deadline ascending with missing deadlines last.
func deadlineLess(a, b *models.Date) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(b.Time)
	}
}

func sortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return deadlineLess(tasks[i].FechaLimite, tasks[j].FechaLimite)
	})
}
