package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

type AssignmentRepository interface {
	Create(ctx context.Context, taskID, userID int64) (*models.Assignment, error)
	GetByID(ctx context.Context, id int64) (*models.Assignment, error)
	GetDetail(ctx context.Context, id int64) (*models.AssignmentDetail, error)
	GetDetailByPair(ctx context.Context, taskID, userID int64) (*models.AssignmentDetail, error)
	CreateDefaultForGeneral(ctx context.Context, taskID, userID int64) error
	ListForUser(ctx context.Context, userID int64) ([]models.UserTask, error)
	UpdateStatus(ctx context.Context, id int64, patch models.AssignmentPatch) (*models.Assignment, error)
	MarkSubmitted(ctx context.Context, id int64, storedName, originalName string) (*models.Assignment, *string, error)
	ListSubmissions(ctx context.Context, taskID int64) ([]models.Submission, error)
}

type assignmentRepository struct {
	*PostgresRepository
}

func NewAssignmentRepository(db *sql.DB, logger zerolog.Logger) AssignmentRepository {
	return &assignmentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const assignmentColumns = `id, tarea_id, usuario_id, estado, progreso, completado,
		archivo_entregado, archivo_original, fecha_asignacion`

func scanAssignment(row rowScanner) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := row.Scan(
		&a.ID,
		&a.TareaID,
		&a.UsuarioID,
		&a.Estado,
		&a.Progreso,
		&a.Completado,
		&a.ArchivoEntregado,
		&a.ArchivoOriginal,
		&a.FechaAsignacion,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an explicit assignment. An existing pair is never overwritten
// and yields ErrDuplicate.
func (r *assignmentRepository) Create(ctx context.Context, taskID, userID int64) (*models.Assignment, error) {
	query := `
		INSERT INTO tareas_usuarios (tarea_id, usuario_id)
		VALUES ($1, $2)
		ON CONFLICT (tarea_id, usuario_id) DO NOTHING
		RETURNING ` + assignmentColumns

	a, err := scanAssignment(r.db.QueryRowContext(ctx, query, taskID, userID))
	if err != nil {
		return nil, translateError(err)
	}
	if a == nil {
		return nil, ErrDuplicate
	}
	return a, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM tareas_usuarios WHERE id = $1`
	return scanAssignment(r.db.QueryRowContext(ctx, query, id))
}

const detailQuery = `
	SELECT tu.id, tu.tarea_id, tu.usuario_id, tu.estado, tu.progreso, tu.completado,
		tu.archivo_entregado, tu.archivo_original, tu.fecha_asignacion,
		t.titulo, t.descripcion, t.tipo, t.enlace_video, t.fecha_limite, t.instrucciones
	FROM tareas_usuarios tu
	JOIN tareas t ON t.id = tu.tarea_id
`

func scanDetail(row rowScanner) (*models.AssignmentDetail, error) {
	d := &models.AssignmentDetail{}
	err := row.Scan(
		&d.ID,
		&d.TareaID,
		&d.UsuarioID,
		&d.Estado,
		&d.Progreso,
		&d.Completado,
		&d.ArchivoEntregado,
		&d.ArchivoOriginal,
		&d.FechaAsignacion,
		&d.Titulo,
		&d.Descripcion,
		&d.Tipo,
		&d.EnlaceVideo,
		&d.FechaLimite,
		&d.Instrucciones,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *assignmentRepository) GetDetail(ctx context.Context, id int64) (*models.AssignmentDetail, error) {
	return scanDetail(r.db.QueryRowContext(ctx, detailQuery+` WHERE tu.id = $1`, id))
}

func (r *assignmentRepository) GetDetailByPair(ctx context.Context, taskID, userID int64) (*models.AssignmentDetail, error) {
	query := detailQuery + ` WHERE tu.tarea_id = $1 AND tu.usuario_id = $2`
	return scanDetail(r.db.QueryRowContext(ctx, query, taskID, userID))
}

// CreateDefaultForGeneral inserts a pending assignment for the pair when the task
// is general. It is a no-op when the row already exists or the task is not general.
func (r *assignmentRepository) CreateDefaultForGeneral(ctx context.Context, taskID, userID int64) error {
	query := `
		INSERT INTO tareas_usuarios (tarea_id, usuario_id, estado, progreso, completado)
		SELECT t.id, $2::integer, 'pendiente', 0, false
		FROM tareas t
		WHERE t.id = $1 AND t.asignacion_general = true
		ON CONFLICT (tarea_id, usuario_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, taskID, userID)
	return translateError(err)
}

// ListForUser returns the explicit assignments of the user plus every general task
// without one. Entries of the second kind carry no assignment id nor progress.
func (r *assignmentRepository) ListForUser(ctx context.Context, userID int64) ([]models.UserTask, error) {
	query := `
		SELECT tu.id, t.id AS tarea_id, t.titulo, t.descripcion, t.creador_id, t.tipo,
			t.enlace_video, t.fecha_limite, t.instrucciones, t.asignacion_general, t.fecha_creacion,
			tu.estado, tu.progreso, tu.completado
		FROM tareas_usuarios tu
		JOIN tareas t ON t.id = tu.tarea_id
		WHERE tu.usuario_id = $1

		UNION ALL

		SELECT NULL, t.id, t.titulo, t.descripcion, t.creador_id, t.tipo,
			t.enlace_video, t.fecha_limite, t.instrucciones, t.asignacion_general, t.fecha_creacion,
			NULL, NULL, NULL
		FROM tareas t
		WHERE t.asignacion_general = true
			AND NOT EXISTS (
				SELECT 1 FROM tareas_usuarios tu
				WHERE tu.tarea_id = t.id AND tu.usuario_id = $1
			)

		ORDER BY fecha_limite ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.UserTask{}
	for rows.Next() {
		var t models.UserTask
		err := rows.Scan(
			&t.ID,
			&t.TareaID,
			&t.Titulo,
			&t.Descripcion,
			&t.CreadorID,
			&t.Tipo,
			&t.EnlaceVideo,
			&t.FechaLimite,
			&t.Instrucciones,
			&t.AsignacionGeneral,
			&t.FechaCreacion,
			&t.Estado,
			&t.Progreso,
			&t.Completado,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *assignmentRepository) UpdateStatus(ctx context.Context, id int64, patch models.AssignmentPatch) (*models.Assignment, error) {
	query := `
		UPDATE tareas_usuarios SET
			estado     = COALESCE($1, estado),
			progreso   = COALESCE($2, progreso),
			completado = COALESCE($3, completado)
		WHERE id = $4
		RETURNING ` + assignmentColumns

	a, err := scanAssignment(r.db.QueryRowContext(ctx, query, patch.Estado, patch.Progreso, patch.Completado, id))
	return a, translateError(err)
}

// MarkSubmitted records a delivered file and completes the assignment. It returns the
// updated row and the previously stored file name, if any. A missing assignment
// yields a nil row.
func (r *assignmentRepository) MarkSubmitted(ctx context.Context, id int64, storedName, originalName string) (*models.Assignment, *string, error) {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx, r.logger)

	var previous *string
	err = tx.QueryRowContext(ctx,
		`SELECT archivo_entregado FROM tareas_usuarios WHERE id = $1 FOR UPDATE`, id,
	).Scan(&previous)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	query := `
		UPDATE tareas_usuarios SET
			archivo_entregado = $1,
			archivo_original  = $2,
			completado        = true,
			progreso          = 100,
			estado            = $3
		WHERE id = $4
		RETURNING ` + assignmentColumns

	a, err := scanAssignment(tx.QueryRowContext(ctx, query,
		storedName, originalName, models.AssignmentStatusDelivered.String(), id))
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit submission: %w", err)
	}

	return a, previous, nil
}

func (r *assignmentRepository) ListSubmissions(ctx context.Context, taskID int64) ([]models.Submission, error) {
	query := `
		SELECT tu.id, tu.estado, tu.progreso, tu.completado, tu.fecha_asignacion,
			tu.archivo_entregado, u.id, u.nombre, u.apellido, u.email
		FROM tareas_usuarios tu
		JOIN users u ON u.id = tu.usuario_id
		WHERE tu.tarea_id = $1
		ORDER BY tu.fecha_asignacion ASC
	`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		var s models.Submission
		err := rows.Scan(
			&s.EntregaID,
			&s.Estado,
			&s.Progreso,
			&s.Completado,
			&s.FechaAsignacion,
			&s.ArchivoEntregado,
			&s.UsuarioID,
			&s.Nombre,
			&s.Apellido,
			&s.Email,
		)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}
