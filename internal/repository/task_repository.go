package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]models.Task, error)
	ListByAssignee(ctx context.Context, userID int64) ([]models.Task, error)
	Update(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id int64) (bool, error)
	PendingAssignees(ctx context.Context, id int64) ([]string, error)
}

type taskRepository struct {
	*PostgresRepository
}

func NewTaskRepository(db *sql.DB, logger zerolog.Logger) TaskRepository {
	return &taskRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const taskColumns = `id, titulo, descripcion, creador_id, tipo, enlace_video, fecha_limite,
		instrucciones, asignacion_general, estado, progreso, completado, asignado_id, fecha_creacion`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	err := row.Scan(
		&task.ID,
		&task.Titulo,
		&task.Descripcion,
		&task.CreadorID,
		&task.Tipo,
		&task.EnlaceVideo,
		&task.FechaLimite,
		&task.Instrucciones,
		&task.AsignacionGeneral,
		&task.Estado,
		&task.Progreso,
		&task.Completado,
		&task.AsignadoID,
		&task.FechaCreacion,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tareas (titulo, descripcion, creador_id, tipo, enlace_video, fecha_limite,
			instrucciones, asignacion_general, asignado_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, fecha_creacion
	`

	err := r.db.QueryRowContext(ctx, query,
		task.Titulo,
		task.Descripcion,
		task.CreadorID,
		task.Tipo,
		task.EnlaceVideo,
		task.FechaLimite,
		task.Instrucciones,
		task.AsignacionGeneral,
		task.AsignadoID,
	).Scan(&task.ID, &task.FechaCreacion)

	return translateError(err)
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tareas WHERE id = $1`
	return scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *taskRepository) ListByCreator(ctx context.Context, creatorID int64) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tareas WHERE creador_id = $1 ORDER BY fecha_limite ASC`
	return r.list(ctx, query, creatorID)
}

func (r *taskRepository) ListByAssignee(ctx context.Context, userID int64) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tareas WHERE asignado_id = $1 ORDER BY fecha_limite ASC`
	return r.list(ctx, query, userID)
}

func (r *taskRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

// Update applies the non-nil fields of patch and returns the stored row,
// or nil when the task does not exist.
func (r *taskRepository) Update(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	query := `
		UPDATE tareas SET
			titulo             = COALESCE($1, titulo),
			descripcion        = COALESCE($2, descripcion),
			tipo               = COALESCE($3, tipo),
			enlace_video       = COALESCE($4, enlace_video),
			fecha_limite       = COALESCE($5, fecha_limite),
			instrucciones      = COALESCE($6, instrucciones),
			estado             = COALESCE($7, estado),
			progreso           = COALESCE($8, progreso),
			completado         = COALESCE($9, completado),
			asignacion_general = COALESCE($10, asignacion_general)
		WHERE id = $11
		RETURNING ` + taskColumns

	row := r.db.QueryRowContext(ctx, query,
		patch.Titulo,
		patch.Descripcion,
		patch.Tipo,
		patch.EnlaceVideo,
		patch.FechaLimite,
		patch.Instrucciones,
		patch.Estado,
		patch.Progreso,
		patch.Completado,
		patch.AsignacionGeneral,
		id,
	)

	task, err := scanTask(row)
	return task, translateError(err)
}

func (r *taskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tareas WHERE id = $1`, id)
	if err != nil {
		return false, translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// PendingAssignees names the users whose assignment of the task is not completed.
func (r *taskRepository) PendingAssignees(ctx context.Context, id int64) ([]string, error) {
	query := `
		SELECT u.nombre || ' ' || u.apellido
		FROM tareas_usuarios tu
		JOIN users u ON u.id = tu.usuario_id
		WHERE tu.tarea_id = $1 AND tu.completado = false
		ORDER BY u.nombre
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
