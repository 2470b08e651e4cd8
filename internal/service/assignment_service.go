package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
	"github.com/briggittemora/Gestion-de-tareas/internal/validation"
)

const assignmentNotFound = "Asignación no encontrada"

type AssignmentService interface {
	CreateAssignment(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error)
	GetAssignment(ctx context.Context, id int64) (*models.AssignmentDetail, error)
	ResolveOrCreate(ctx context.Context, taskID, userID int64) (*models.AssignmentDetail, error)
	ListForUser(ctx context.Context, userID int64) ([]models.UserTask, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateAssignmentRequest) (*models.Assignment, error)
	ListSubmissions(ctx context.Context, taskID int64) ([]models.Submission, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	taskRepo       repository.TaskRepository
	validator      *validation.Validator
	logger         zerolog.Logger
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	taskRepo repository.TaskRepository,
	validator *validation.Validator,
	logger zerolog.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		taskRepo:       taskRepo,
		validator:      validator,
		logger:         logger,
	}
}

// CreateAssignment links a user to a task. An existing pair is a conflict and is left untouched.
func (s *assignmentService) CreateAssignment(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.Create(ctx, req.TareaID, req.UsuarioID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, Conflict("La tarea ya está asignada a este usuario")
		case errors.Is(err, repository.ErrReference):
			return nil, NotFound("Tarea o usuario no encontrado")
		default:
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}
	}

	s.logger.Info().
		Int64("asignacion_id", assignment.ID).
		Int64("tarea_id", assignment.TareaID).
		Int64("usuario_id", assignment.UsuarioID).
		Msg("Assignment created")

	return assignment, nil
}

func (s *assignmentService) GetAssignment(ctx context.Context, id int64) (*models.AssignmentDetail, error) {
	detail, err := s.assignmentRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if detail == nil {
		return nil, NotFound(assignmentNotFound)
	}
	return detail, nil
}

// ResolveOrCreate returns the assignment of the pair, creating a pending one on first
// access when the task is general. Concurrent first accesses end up with the same row.
func (s *assignmentService) ResolveOrCreate(ctx context.Context, taskID, userID int64) (*models.AssignmentDetail, error) {
	detail, err := s.assignmentRepo.GetDetailByPair(ctx, taskID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if detail != nil {
		return detail, nil
	}

	if err := s.assignmentRepo.CreateDefaultForGeneral(ctx, taskID, userID); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, NotFound("Usuario no encontrado")
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	detail, err = s.assignmentRepo.GetDetailByPair(ctx, taskID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if detail == nil {
		return nil, NotFound(assignmentNotFound)
	}

	s.logger.Debug().
		Int64("asignacion_id", detail.ID).
		Int64("tarea_id", taskID).
		Int64("usuario_id", userID).
		Msg("Assignment resolved")

	return detail, nil
}

func (s *assignmentService) ListForUser(ctx context.Context, userID int64) ([]models.UserTask, error) {
	tasks, err := s.assignmentRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}
	return tasks, nil
}

func (s *assignmentService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateAssignmentRequest) (*models.Assignment, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.UpdateStatus(ctx, id, req.Patch())
	if err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}
	if assignment == nil {
		return nil, NotFound(assignmentNotFound)
	}

	s.logger.Info().
		Int64("asignacion_id", id).
		Str("estado", assignment.Estado).
		Int("progreso", assignment.Progreso).
		Msg("Assignment status updated")

	return assignment, nil
}

func (s *assignmentService) ListSubmissions(ctx context.Context, taskID int64) ([]models.Submission, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, NotFound("Tarea no encontrada")
	}

	submissions, err := s.assignmentRepo.ListSubmissions(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}
