package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
)

type DashboardService interface {
	AdminDashboard(ctx context.Context) (*models.AdminDashboard, error)
	TeacherDashboard(ctx context.Context, teacherID int64) (*models.TeacherDashboard, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        zerolog.Logger
}

func NewDashboardService(dashboardRepo repository.DashboardRepository, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

func (s *dashboardService) AdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	stats, err := s.dashboardRepo.AdminStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin dashboard: %w", err)
	}
	return stats, nil
}

func (s *dashboardService) TeacherDashboard(ctx context.Context, teacherID int64) (*models.TeacherDashboard, error) {
	if teacherID <= 0 {
		return nil, Invalid("userId es obligatorio")
	}

	stats, err := s.dashboardRepo.TeacherStats(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher dashboard: %w", err)
	}
	return stats, nil
}
