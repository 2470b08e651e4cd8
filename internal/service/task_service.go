package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
	"github.com/briggittemora/Gestion-de-tareas/internal/validation"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]models.Task, error)
	ListByAssignee(ctx context.Context, userID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, id int64, req *models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type taskService struct {
	taskRepo  repository.TaskRepository
	validator *validation.Validator
	logger    zerolog.Logger
}

func NewTaskService(taskRepo repository.TaskRepository, validator *validation.Validator, logger zerolog.Logger) TaskService {
	return &taskService{
		taskRepo:  taskRepo,
		validator: validator,
		logger:    logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	req.Titulo = strings.TrimSpace(req.Titulo)
	req.Tipo = strings.TrimSpace(req.Tipo)
	req.EnlaceVideo = emptyToNil(req.EnlaceVideo)

	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	general := true
	if req.AsignacionGeneral != nil {
		general = *req.AsignacionGeneral
	}

	task := &models.Task{
		Titulo:            req.Titulo,
		Descripcion:       emptyToNil(req.Descripcion),
		CreadorID:         req.CreadorID,
		Tipo:              req.Tipo,
		EnlaceVideo:       req.EnlaceVideo,
		FechaLimite:       req.FechaLimite,
		Instrucciones:     emptyToNil(req.Instrucciones),
		AsignacionGeneral: general,
		AsignadoID:        req.AsignadoID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, NotFound("Usuario no encontrado")
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info().
		Int64("tarea_id", task.ID).
		Int64("creador_id", task.CreadorID).
		Bool("asignacion_general", task.AsignacionGeneral).
		Msg("Task created")

	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, NotFound("Tarea no encontrada")
	}
	return task, nil
}

func (s *taskService) ListByCreator(ctx context.Context, creatorID int64) ([]models.Task, error) {
	if creatorID <= 0 {
		return nil, Invalid("creador_id es obligatorio")
	}

	tasks, err := s.taskRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) ListByAssignee(ctx context.Context, userID int64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies the fields present in req. Explicit zero values are kept.
func (s *taskService) UpdateTask(ctx context.Context, id int64, req *models.UpdateTaskRequest) (*models.Task, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if req.Titulo != nil && strings.TrimSpace(*req.Titulo) == "" {
		return nil, Invalid("El título no puede estar vacío")
	}
	if req.Tipo != nil && strings.TrimSpace(*req.Tipo) == "" {
		return nil, Invalid("El tipo no puede estar vacío")
	}

	task, err := s.taskRepo.Update(ctx, id, req.Patch())
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if task == nil {
		return nil, NotFound("Tarea no encontrada")
	}

	s.logger.Info().Int64("tarea_id", id).Msg("Task updated")
	return task, nil
}

// DeleteTask refuses while any assignment of the task is unfinished.
func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return NotFound("Tarea no encontrada")
	}

	pending, err := s.taskRepo.PendingAssignees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check pending assignments: %w", err)
	}
	if len(pending) > 0 {
		return &PendingError{
			Kind:    ErrConflict,
			Message: "No se puede eliminar la tarea porque tiene asignaciones pendientes",
			Field:   "usuarios_pendientes",
			Pending: pending,
		}
	}

	deleted, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return NotFound("Tarea no encontrada")
	}

	s.logger.Info().Int64("tarea_id", id).Msg("Task deleted")
	return nil
}
