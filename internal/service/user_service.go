package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
)

const (
	avatarBaseURL = "https://i.pravatar.cc/100?u="
	// allRoles is the role filter value the admin panel sends for "no filter".
	allRoles = "Todos"
)

type UserService interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error)
	Directory(ctx context.Context) ([]models.UserSummary, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List filters users by role and a case-insensitive search over name and email.
// Each entry carries an avatar URL derived from the email.
func (s *userService) List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Rol == allRoles {
		filter.Rol = ""
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	for i := range users {
		users[i].Avatar = avatarBaseURL + url.QueryEscape(users[i].Email)
	}
	return users, nil
}

func (s *userService) Directory(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepo.List(ctx, models.UserFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user that has no unfinished assignments.
func (s *userService) Delete(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return NotFound("Usuario no encontrado")
	}

	pending, err := s.userRepo.PendingTaskTitles(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check pending tasks: %w", err)
	}
	if len(pending) > 0 {
		return &PendingError{
			Kind:    ErrValidation,
			Message: "No se puede eliminar el usuario porque tiene tareas pendientes",
			Field:   "tareas_pendientes",
			Pending: pending,
		}
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReference) {
			return Conflict("No se puede eliminar el usuario porque ha creado tareas")
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		return NotFound("Usuario no encontrado")
	}

	s.logger.Info().Int64("user_id", id).Msg("User deleted")
	return nil
}
