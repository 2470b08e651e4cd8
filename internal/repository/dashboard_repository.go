package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

type DashboardRepository interface {
	AdminStats(ctx context.Context) (*models.AdminDashboard, error)
	TeacherStats(ctx context.Context, teacherID int64) (*models.TeacherDashboard, error)
}

type dashboardRepository struct {
	*PostgresRepository
}

func NewDashboardRepository(db *sql.DB, logger zerolog.Logger) DashboardRepository {
	return &dashboardRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *dashboardRepository) AdminStats(ctx context.Context) (*models.AdminDashboard, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM tareas),
			(SELECT COUNT(*) FROM tareas_usuarios WHERE completado = false)
	`

	stats := &models.AdminDashboard{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.UsuariosRegistrados,
		&stats.TareasTotales,
		&stats.EntregasPendientes,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *dashboardRepository) TeacherStats(ctx context.Context, teacherID int64) (*models.TeacherDashboard, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE rol = 'miembro'),
			(SELECT COUNT(*) FROM tareas WHERE creador_id = $1),
			(SELECT COUNT(*)
				FROM tareas_usuarios tu
				JOIN tareas t ON t.id = tu.tarea_id
				WHERE t.creador_id = $1 AND tu.archivo_entregado IS NOT NULL)
	`

	stats := &models.TeacherDashboard{}
	err := r.db.QueryRowContext(ctx, query, teacherID).Scan(
		&stats.EstudiantesInscritos,
		&stats.TareasCreadas,
		&stats.EntregasRecibidas,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
