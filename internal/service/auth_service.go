package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/auth"
	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
	"github.com/briggittemora/Gestion-de-tareas/internal/validation"
)

const invalidCredentials = "Correo o contraseña incorrectos"

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest, caller *auth.Claims) (*models.UserSummary, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Authenticate(token string) (*auth.Claims, error)
}

type authService struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	tokens       *auth.TokenManager
	validator    *validation.Validator
	logger       zerolog.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
	tokens *auth.TokenManager,
	validator *validation.Validator,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		tokens:       tokens,
		validator:    validator,
		logger:       logger,
	}
}

// Register creates a user. Only an admin caller may pick a role other than miembro.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest, caller *auth.Claims) (*models.UserSummary, error) {
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Apellido = strings.TrimSpace(req.Apellido)
	req.Cedula = strings.TrimSpace(req.Cedula)
	req.Correo = strings.TrimSpace(req.Correo)

	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings != nil && !settings.PermitirRegistros {
		return nil, Forbidden("El registro de nuevos usuarios está deshabilitado")
	}

	role := models.RoleMiembro
	if req.Rol != "" && models.Role(req.Rol) != models.RoleMiembro {
		if caller == nil || !caller.HasRole(models.RoleAdmin) {
			return nil, Forbidden("Solo un administrador puede asignar el rol " + req.Rol)
		}
		role = models.Role(req.Rol)
	}

	exists, err := s.userRepo.ExistsByEmailOrCedula(ctx, req.Correo, req.Cedula)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, Conflict("Ya existe un usuario con ese correo o cédula")
	}

	hash, err := auth.HashPassword(req.Contrasena)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Cedula:   req.Cedula,
		Email:    req.Correo,
		Password: hash,
		Rol:      role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflict("Ya existe un usuario con ese correo o cédula")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("rol", user.Rol.String()).
		Msg("User registered")

	return &models.UserSummary{
		ID:       user.ID,
		Nombre:   user.Nombre,
		Apellido: user.Apellido,
		Email:    user.Email,
		Rol:      user.Rol,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Correo))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Contrasena) {
		return nil, Unauthorized(invalidCredentials)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("User logged in")

	return &models.LoginResponse{
		Token: token,
		Usuario: models.LoginSummary{
			ID:       user.ID,
			Nombre:   user.Nombre,
			Apellido: user.Apellido,
			Correo:   user.Email,
			Rol:      user.Rol,
		},
	}, nil
}

func (s *authService) Authenticate(token string) (*auth.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, Unauthorized("Token expirado")
		}
		return nil, Unauthorized("Token inválido")
	}
	return claims, nil
}
