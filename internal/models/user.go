package models

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMaestro Role = "maestro"
	RoleMiembro Role = "miembro"
)

func (r Role) String() string {
	return string(r)
}

func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleMaestro, RoleMiembro:
		return true
	default:
		return false
	}
}

type User struct {
	ID            int64     `json:"id" db:"id"`
	Nombre        string    `json:"nombre" db:"nombre"`
	Apellido      string    `json:"apellido" db:"apellido"`
	Cedula        string    `json:"cedula" db:"cedula"`
	Email         string    `json:"email" db:"email"`
	Password      string    `json:"-" db:"password"`
	Rol           Role      `json:"rol" db:"rol"`
	FechaCreacion time.Time `json:"fecha_creacion" db:"fecha_creacion"`
}

// UserSummary is the public projection used by listings.
type UserSummary struct {
	ID       int64  `json:"id" db:"id"`
	Nombre   string `json:"nombre" db:"nombre"`
	Apellido string `json:"apellido" db:"apellido"`
	Email    string `json:"email" db:"email"`
	Rol      Role   `json:"rol" db:"rol"`
	Avatar   string `json:"avatar,omitempty"`
}

type UserFilter struct {
	Rol    string
	Search string
}
