package inmem

import (
	"context"
	"sort"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
)

type assignmentRepository struct {
	db *DB
}

func NewAssignmentRepository(db *DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

// insert must be called with the write lock held.
func (r *assignmentRepository) insert(taskID, userID int64) (*models.Assignment, error) {
	if _, ok := r.db.tasks[taskID]; !ok {
		return nil, repository.ErrReference
	}
	if _, ok := r.db.users[userID]; !ok {
		return nil, repository.ErrReference
	}
	if r.db.findAssignment(taskID, userID) != nil {
		return nil, repository.ErrDuplicate
	}

	r.db.assignmentSeq++
	a := &models.Assignment{
		ID:              r.db.assignmentSeq,
		TareaID:         taskID,
		UsuarioID:       userID,
		Estado:          models.AssignmentStatusPending.String(),
		FechaAsignacion: r.db.now(),
	}
	r.db.assignments[a.ID] = a
	return a, nil
}

func (r *assignmentRepository) Create(_ context.Context, taskID, userID int64) (*models.Assignment, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	a, err := r.insert(taskID, userID)
	if err != nil {
		return nil, err
	}
	created := *a
	return &created, nil
}

func (r *assignmentRepository) GetByID(_ context.Context, id int64) (*models.Assignment, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if a, ok := r.db.assignments[id]; ok {
		found := *a
		return &found, nil
	}
	return nil, nil
}

func (r *assignmentRepository) GetDetail(_ context.Context, id int64) (*models.AssignmentDetail, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if a, ok := r.db.assignments[id]; ok {
		return r.db.detail(a), nil
	}
	return nil, nil
}

func (r *assignmentRepository) GetDetailByPair(_ context.Context, taskID, userID int64) (*models.AssignmentDetail, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if a := r.db.findAssignment(taskID, userID); a != nil {
		return r.db.detail(a), nil
	}
	return nil, nil
}

func (r *assignmentRepository) CreateDefaultForGeneral(_ context.Context, taskID, userID int64) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	t, ok := r.db.tasks[taskID]
	if !ok || !t.AsignacionGeneral {
		return nil
	}
	if _, err := r.insert(taskID, userID); err != nil && err != repository.ErrDuplicate {
		return err
	}
	return nil
}

func (r *assignmentRepository) ListForUser(_ context.Context, userID int64) ([]models.UserTask, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	tasks := []models.UserTask{}
	for _, t := range r.db.tasks {
		a := r.db.findAssignment(t.ID, userID)
		if a == nil && !t.AsignacionGeneral {
			continue
		}

		entry := models.UserTask{
			TareaID:           t.ID,
			Titulo:            t.Titulo,
			Descripcion:       t.Descripcion,
			CreadorID:         t.CreadorID,
			Tipo:              t.Tipo,
			EnlaceVideo:       t.EnlaceVideo,
			FechaLimite:       t.FechaLimite,
			Instrucciones:     t.Instrucciones,
			AsignacionGeneral: t.AsignacionGeneral,
			FechaCreacion:     t.FechaCreacion,
		}
		if a != nil {
			id, estado, progreso, completado := a.ID, a.Estado, a.Progreso, a.Completado
			entry.ID = &id
			entry.Estado = &estado
			entry.Progreso = &progreso
			entry.Completado = &completado
		}
		tasks = append(tasks, entry)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].FechaLimite == nil && tasks[j].FechaLimite == nil {
			return tasks[i].TareaID < tasks[j].TareaID
		}
		return deadlineLess(tasks[i].FechaLimite, tasks[j].FechaLimite)
	})
	return tasks, nil
}

func (r *assignmentRepository) UpdateStatus(_ context.Context, id int64, patch models.AssignmentPatch) (*models.Assignment, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	a, ok := r.db.assignments[id]
	if !ok {
		return nil, nil
	}
	if patch.Estado != nil {
		a.Estado = *patch.Estado
	}
	if patch.Progreso != nil {
		a.Progreso = *patch.Progreso
	}
	if patch.Completado != nil {
		a.Completado = *patch.Completado
	}
	updated := *a
	return &updated, nil
}

func (r *assignmentRepository) MarkSubmitted(_ context.Context, id int64, storedName, originalName string) (*models.Assignment, *string, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	a, ok := r.db.assignments[id]
	if !ok {
		return nil, nil, nil
	}

	previous := a.ArchivoEntregado
	a.ArchivoEntregado = &storedName
	a.ArchivoOriginal = &originalName
	a.Completado = true
	a.Progreso = 100
	a.Estado = models.AssignmentStatusDelivered.String()

	updated := *a
	return &updated, previous, nil
}

func (r *assignmentRepository) ListSubmissions(_ context.Context, taskID int64) ([]models.Submission, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	submissions := []models.Submission{}
	for _, a := range r.db.assignments {
		if a.TareaID != taskID {
			continue
		}
		u := r.db.users[a.UsuarioID]
		submissions = append(submissions, models.Submission{
			EntregaID:        a.ID,
			Estado:           a.Estado,
			Progreso:         a.Progreso,
			Completado:       a.Completado,
			FechaAsignacion:  a.FechaAsignacion,
			ArchivoEntregado: a.ArchivoEntregado,
			UsuarioID:        u.ID,
			Nombre:           u.Nombre,
			Apellido:         u.Apellido,
			Email:            u.Email,
		})
	}

	sort.Slice(submissions, func(i, j int) bool { return submissions[i].EntregaID < submissions[j].EntregaID })
	return submissions, nil
}
