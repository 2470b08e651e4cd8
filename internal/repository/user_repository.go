package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrCedula(ctx context.Context, email, cedula string) (bool, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error)
	Delete(ctx context.Context, id int64) (bool, error)
	PendingTaskTitles(ctx context.Context, userID int64) ([]string, error)
}

type userRepository struct {
	*PostgresRepository
}

func NewUserRepository(db *sql.DB, logger zerolog.Logger) UserRepository {
	return &userRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (nombre, apellido, cedula, email, password, rol)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fecha_creacion
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Nombre,
		user.Apellido,
		user.Cedula,
		user.Email,
		user.Password,
		user.Rol,
	).Scan(&user.ID, &user.FechaCreacion)

	return translateError(err)
}

const userColumns = `id, nombre, apellido, cedula, email, password, rol, fecha_creacion`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Nombre,
		&user.Apellido,
		&user.Cedula,
		&user.Email,
		&user.Password,
		&user.Rol,
		&user.FechaCreacion,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) ExistsByEmailOrCedula(ctx context.Context, email, cedula string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR cedula = $2)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, email, cedula).Scan(&exists)
	return exists, err
}

// List returns users ordered by name. An empty filter lists everyone.
func (r *userRepository) List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Rol != "" {
		args = append(args, filter.Rol)
		conditions = append(conditions, fmt.Sprintf("rol = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(nombre) LIKE $%d OR LOWER(apellido) LIKE $%d OR LOWER(email) LIKE $%d)", n, n, n))
	}

	query := `SELECT id, nombre, apellido, email, rol FROM users`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY nombre ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Rol); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// PendingTaskTitles lists the titles of tasks the user still has to complete.
func (r *userRepository) PendingTaskTitles(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT t.titulo
		FROM tareas_usuarios tu
		JOIN tareas t ON t.id = tu.tarea_id
		WHERE tu.usuario_id = $1 AND tu.completado = false
		ORDER BY t.titulo
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}

	return titles, rows.Err()
}
