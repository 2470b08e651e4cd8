package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
	"github.com/briggittemora/Gestion-de-tareas/internal/service/integration"
	"github.com/briggittemora/Gestion-de-tareas/internal/storage"
)

// Upload is a file received from a client.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// Download is an open stored file. The caller closes Content.
type Download struct {
	Filename string
	Size     int64
	Content  io.ReadCloser
}

type SubmissionService interface {
	Submit(ctx context.Context, assignmentID int64, upload *Upload) (*models.Assignment, error)
	Download(ctx context.Context, assignmentID int64) (*Download, error)
}

type submissionService struct {
	assignmentRepo repository.AssignmentRepository
	settingsRepo   repository.SettingsRepository
	storage        storage.Storage
	publisher      integration.SubmissionPublisher
	logger         zerolog.Logger
}

func NewSubmissionService(
	assignmentRepo repository.AssignmentRepository,
	settingsRepo repository.SettingsRepository,
	storage storage.Storage,
	publisher integration.SubmissionPublisher,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionService{
		assignmentRepo: assignmentRepo,
		settingsRepo:   settingsRepo,
		storage:        storage,
		publisher:      publisher,
		logger:         logger,
	}
}

// Submit stores the file and marks the assignment delivered. A resubmission replaces
// the previous file, which is removed once the row points at the new one.
func (s *submissionService) Submit(ctx context.Context, assignmentID int64, upload *Upload) (*models.Assignment, error) {
	if upload == nil || upload.Content == nil || upload.Filename == "" {
		return nil, Invalid("No se ha enviado ningún archivo")
	}

	existing, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if existing == nil {
		return nil, NotFound(assignmentNotFound)
	}

	name := storage.GenerateName(upload.Filename)
	if err := s.storage.Save(ctx, name, upload.Content, upload.Size); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	assignment, previous, err := s.assignmentRepo.MarkSubmitted(ctx, assignmentID, name, upload.Filename)
	if err != nil || assignment == nil {
		s.removeFile(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to record submission: %w", err)
		}
		return nil, NotFound(assignmentNotFound)
	}

	if previous != nil && *previous != name {
		s.removeFile(ctx, *previous)
	}

	s.logger.Info().
		Int64("asignacion_id", assignment.ID).
		Int64("tarea_id", assignment.TareaID).
		Int64("usuario_id", assignment.UsuarioID).
		Str("archivo", name).
		Msg("Submission stored")

	s.notify(ctx, assignment)

	return assignment, nil
}

func (s *submissionService) removeFile(ctx context.Context, name string) {
	if err := s.storage.Delete(ctx, name); err != nil {
		s.logger.Warn().Err(err).Str("archivo", name).Msg("Failed to remove stored file")
	}
}

// notify publishes the submission event when notifications are enabled. Failures are logged only.
func (s *submissionService) notify(ctx context.Context, assignment *models.Assignment) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read settings for notification")
		return
	}
	if settings != nil && !settings.Notificaciones {
		return
	}

	if err := s.publisher.PublishSubmissionCreated(ctx, assignment); err != nil {
		s.logger.Error().Err(err).
			Int64("asignacion_id", assignment.ID).
			Msg("Failed to publish submission event")
	}
}

func (s *submissionService) Download(ctx context.Context, assignmentID int64) (*Download, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if assignment == nil {
		return nil, NotFound(assignmentNotFound)
	}
	if assignment.ArchivoEntregado == nil || *assignment.ArchivoEntregado == "" {
		return nil, NotFound("No hay archivo entregado para esta asignación")
	}

	stored := *assignment.ArchivoEntregado
	content, size, err := s.storage.Open(ctx, stored)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return nil, NotFound("Archivo no encontrado en el servidor")
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	filename := stored
	if assignment.ArchivoOriginal != nil && *assignment.ArchivoOriginal != "" {
		filename = *assignment.ArchivoOriginal
	}

	return &Download{Filename: filename, Size: size, Content: content}, nil
}
