package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*models.SystemSettings, error)
	Update(ctx context.Context, patch models.SettingsPatch) (*models.SystemSettings, error)
}

type settingsRepository struct {
	*PostgresRepository
}

func NewSettingsRepository(db *sql.DB, logger zerolog.Logger) SettingsRepository {
	return &settingsRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.SystemSettings, error) {
	query := `SELECT notificaciones, modo_mantenimiento, permitir_registros FROM configuracion WHERE id = 1`

	s := &models.SystemSettings{}
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Notificaciones, &s.ModoMantenimiento, &s.PermitirRegistros)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Update upserts the singleton row so a missing seed does not lose the change.
func (r *settingsRepository) Update(ctx context.Context, patch models.SettingsPatch) (*models.SystemSettings, error) {
	query := `
		INSERT INTO configuracion (id, notificaciones, modo_mantenimiento, permitir_registros)
		VALUES (1, COALESCE($1, TRUE), COALESCE($2, FALSE), COALESCE($3, TRUE))
		ON CONFLICT (id) DO UPDATE SET
			notificaciones     = COALESCE($1, configuracion.notificaciones),
			modo_mantenimiento = COALESCE($2, configuracion.modo_mantenimiento),
			permitir_registros = COALESCE($3, configuracion.permitir_registros)
		RETURNING notificaciones, modo_mantenimiento, permitir_registros
	`

	s := &models.SystemSettings{}
	err := r.db.QueryRowContext(ctx, query,
		patch.Notificaciones,
		patch.ModoMantenimiento,
		patch.PermitirRegistros,
	).Scan(&s.Notificaciones, &s.ModoMantenimiento, &s.PermitirRegistros)
	if err != nil {
		return nil, err
	}
	return s, nil
}
