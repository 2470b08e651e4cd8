package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
)

var defaultSettings = models.SystemSettings{
	Notificaciones:    true,
	ModoMantenimiento: false,
	PermitirRegistros: true,
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*models.SystemSettings, error)
	UpdateSettings(ctx context.Context, patch *models.SettingsPatch) (*models.SystemSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       zerolog.Logger
}

func NewSettingsService(settingsRepo repository.SettingsRepository, logger zerolog.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings falls back to the defaults when the singleton row is missing.
func (s *settingsService) GetSettings(ctx context.Context) (*models.SystemSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		d := defaultSettings
		return &d, nil
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, patch *models.SettingsPatch) (*models.SystemSettings, error) {
	settings, err := s.settingsRepo.Update(ctx, *patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.logger.Info().
		Bool("notificaciones", settings.Notificaciones).
		Bool("modo_mantenimiento", settings.ModoMantenimiento).
		Bool("permitir_registros", settings.PermitirRegistros).
		Msg("Settings updated")

	return settings, nil
}
