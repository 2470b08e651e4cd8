package inmem

import (
	"context"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
)

type settingsRepository struct {
	db *DB
}

func NewSettingsRepository(db *DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(_ context.Context) (*models.SystemSettings, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	s := r.db.settings
	return &s, nil
}

func (r *settingsRepository) Update(_ context.Context, patch models.SettingsPatch) (*models.SystemSettings, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if patch.Notificaciones != nil {
		r.db.settings.Notificaciones = *patch.Notificaciones
	}
	if patch.ModoMantenimiento != nil {
		r.db.settings.ModoMantenimiento = *patch.ModoMantenimiento
	}
	if patch.PermitirRegistros != nil {
		r.db.settings.PermitirRegistros = *patch.PermitirRegistros
	}
	s := r.db.settings
	return &s, nil
}

type dashboardRepository struct {
	db *DB
}

func NewDashboardRepository(db *DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) AdminStats(_ context.Context) (*models.AdminDashboard, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	stats := &models.AdminDashboard{
		UsuariosRegistrados: len(r.db.users),
		TareasTotales:       len(r.db.tasks),
	}
	for _, a := range r.db.assignments {
		if !a.Completado {
			stats.EntregasPendientes++
		}
	}
	return stats, nil
}

func (r *dashboardRepository) TeacherStats(_ context.Context, teacherID int64) (*models.TeacherDashboard, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	stats := &models.TeacherDashboard{}
	for _, u := range r.db.users {
		if u.Rol == models.RoleMiembro {
			stats.EstudiantesInscritos++
		}
	}
	for _, t := range r.db.tasks {
		if t.CreadorID == teacherID {
			stats.TareasCreadas++
		}
	}
	for _, a := range r.db.assignments {
		if a.ArchivoEntregado != nil && r.db.tasks[a.TareaID].CreadorID == teacherID {
			stats.EntregasRecibidas++
		}
	}
	return stats, nil
}
