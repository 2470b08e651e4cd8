package inmem

import (
	"context"
	"sort"
	"strings"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/repository"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(_ context.Context, user *models.User) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	for _, u := range r.db.users {
		if u.Email == user.Email || u.Cedula == user.Cedula {
			return repository.ErrDuplicate
		}
	}

	r.db.userSeq++
	user.ID = r.db.userSeq
	user.FechaCreacion = r.db.now()
	stored := *user
	r.db.users[user.ID] = &stored
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if u, ok := r.db.users[id]; ok {
		user := *u
		return &user, nil
	}
	return nil, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, u := range r.db.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *userRepository) ExistsByEmailOrCedula(_ context.Context, email, cedula string) (bool, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, u := range r.db.users {
		if u.Email == email || u.Cedula == cedula {
			return true, nil
		}
	}
	return false, nil
}

func (r *userRepository) List(_ context.Context, filter models.UserFilter) ([]models.UserSummary, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	search := strings.ToLower(filter.Search)
	users := []models.UserSummary{}
	for _, u := range r.db.users {
		if filter.Rol != "" && string(u.Rol) != filter.Rol {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Nombre), search) &&
			!strings.Contains(strings.ToLower(u.Apellido), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		users = append(users, models.UserSummary{
			ID:       u.ID,
			Nombre:   u.Nombre,
			Apellido: u.Apellido,
			Email:    u.Email,
			Rol:      u.Rol,
		})
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Nombre < users[j].Nombre })
	return users, nil
}

func (r *userRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.users[id]; !ok {
		return false, nil
	}
	for _, t := range r.db.tasks {
		if t.CreadorID == id {
			return false, repository.ErrReference
		}
	}

	delete(r.db.users, id)
	for aid, a := range r.db.assignments {
		if a.UsuarioID == id {
			delete(r.db.assignments, aid)
		}
	}
	return true, nil
}

func (r *userRepository) PendingTaskTitles(_ context.Context, userID int64) ([]string, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	var titles []string
	for _, a := range r.db.assignments {
		if a.UsuarioID == userID && !a.Completado {
			titles = append(titles, r.db.tasks[a.TareaID].Titulo)
		}
	}
	sort.Strings(titles)
	return titles, nil
}
