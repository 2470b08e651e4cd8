package inmem

import (
	"context"
	"sort"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
)

type taskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(_ context.Context, task *models.Task) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.users[task.CreadorID]; !ok {
		return repository.ErrReference
	}
	if task.AsignadoID != nil {
		if _, ok := r.db.users[*task.AsignadoID]; !ok {
			return repository.ErrReference
		}
	}

	r.db.taskSeq++
	task.ID = r.db.taskSeq
	task.FechaCreacion = r.db.now()
	stored := *task
	r.db.tasks[task.ID] = &stored
	return nil
}

func (r *taskRepository) GetByID(_ context.Context, id int64) (*models.Task, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if t, ok := r.db.tasks[id]; ok {
		task := *t
		return &task, nil
	}
	return nil, nil
}

func (r *taskRepository) ListByCreator(_ context.Context, creatorID int64) ([]models.Task, error) {
	return r.filter(func(t *models.Task) bool { return t.CreadorID == creatorID }), nil
}

func (r *taskRepository) ListByAssignee(_ context.Context, userID int64) ([]models.Task, error) {
	return r.filter(func(t *models.Task) bool { return t.AsignadoID != nil && *t.AsignadoID == userID }), nil
}

func (r *taskRepository) filter(keep func(*models.Task) bool) []models.Task {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	tasks := []models.Task{}
	for _, t := range r.db.tasks {
		if keep(t) {
			tasks = append(tasks, *t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	sortTasks(tasks)
	return tasks
}

func (r *taskRepository) Update(_ context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	t, ok := r.db.tasks[id]
	if !ok {
		return nil, nil
	}
	if patch.Titulo != nil {
		t.Titulo = *patch.Titulo
	}
	if patch.Descripcion != nil {
		t.Descripcion = patch.Descripcion
	}
	if patch.Tipo != nil {
		t.Tipo = *patch.Tipo
	}
	if patch.EnlaceVideo != nil {
		t.EnlaceVideo = patch.EnlaceVideo
	}
	if patch.FechaLimite != nil {
		t.FechaLimite = patch.FechaLimite
	}
	if patch.Instrucciones != nil {
		t.Instrucciones = patch.Instrucciones
	}
	if patch.Estado != nil {
		t.Estado = patch.Estado
	}
	if patch.Progreso != nil {
		t.Progreso = patch.Progreso
	}
	if patch.Completado != nil {
		t.Completado = patch.Completado
	}
	if patch.AsignacionGeneral != nil {
		t.AsignacionGeneral = *patch.AsignacionGeneral
	}

	task := *t
	return &task, nil
}

func (r *taskRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.tasks[id]; !ok {
		return false, nil
	}
	delete(r.db.tasks, id)
	for aid, a := range r.db.assignments {
		if a.TareaID == id {
			delete(r.db.assignments, aid)
		}
	}
	return true, nil
}

func (r *taskRepository) PendingAssignees(_ context.Context, id int64) ([]string, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	var names []string
	for _, a := range r.db.assignments {
		if a.TareaID == id && !a.Completado {
			u := r.db.users[a.UsuarioID]
			names = append(names, u.Nombre+" "+u.Apellido)
		}
	}
	sort.Strings(names)
	return names, nil
}
