package models

import (
	"time"
)

type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pendiente"
	AssignmentStatusDelivered AssignmentStatus = "entregado"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

// Assignment is one row of tareas_usuarios.
type Assignment struct {
	ID               int64     `json:"id" db:"id"`
	TareaID          int64     `json:"tarea_id" db:"tarea_id"`
	UsuarioID        int64     `json:"usuario_id" db:"usuario_id"`
	Estado           string    `json:"estado" db:"estado"`
	Progreso         int       `json:"progreso" db:"progreso"`
	Completado       bool      `json:"completado" db:"completado"`
	ArchivoEntregado *string   `json:"archivo_entregado" db:"archivo_entregado"`
	ArchivoOriginal  *string   `json:"archivo_original" db:"archivo_original"`
	FechaAsignacion  time.Time `json:"fecha_asignacion" db:"fecha_asignacion"`
}

// AssignmentDetail is an assignment joined with the fields of its task.
type AssignmentDetail struct {
	Assignment
	Titulo        string  `json:"titulo" db:"titulo"`
	Descripcion   *string `json:"descripcion" db:"descripcion"`
	Tipo          string  `json:"tipo" db:"tipo"`
	EnlaceVideo   *string `json:"enlace_video" db:"enlace_video"`
	FechaLimite   *Date   `json:"fecha_limite" db:"fecha_limite"`
	Instrucciones *string `json:"instrucciones" db:"instrucciones"`
}

// UserTask is one entry of the effective task list of a user. Entries synthesized
// from a general task without an assignment row have a nil ID and nil progress fields.
type UserTask struct {
	ID                *int64    `json:"id" db:"id"`
	TareaID           int64     `json:"tarea_id" db:"tarea_id"`
	Titulo            string    `json:"titulo" db:"titulo"`
	Descripcion       *string   `json:"descripcion" db:"descripcion"`
	CreadorID         int64     `json:"creador_id" db:"creador_id"`
	Tipo              string    `json:"tipo" db:"tipo"`
	EnlaceVideo       *string   `json:"enlace_video" db:"enlace_video"`
	FechaLimite       *Date     `json:"fecha_limite" db:"fecha_limite"`
	Instrucciones     *string   `json:"instrucciones" db:"instrucciones"`
	AsignacionGeneral bool      `json:"asignacion_general" db:"asignacion_general"`
	FechaCreacion     time.Time `json:"fecha_creacion" db:"fecha_creacion"`
	Estado            *string   `json:"estado" db:"estado"`
	Progreso          *int      `json:"progreso" db:"progreso"`
	Completado        *bool     `json:"completado" db:"completado"`
}

// Submission is an assignment of a task seen from the teacher side.
type Submission struct {
	EntregaID        int64     `json:"entrega_id" db:"entrega_id"`
	Estado           string    `json:"estado" db:"estado"`
	Progreso         int       `json:"progreso" db:"progreso"`
	Completado       bool      `json:"completado" db:"completado"`
	FechaAsignacion  time.Time `json:"fecha_asignacion" db:"fecha_asignacion"`
	ArchivoEntregado *string   `json:"archivo_entregado" db:"archivo_entregado"`
	UsuarioID        int64     `json:"usuario_id" db:"usuario_id"`
	Nombre           string    `json:"nombre" db:"nombre"`
	Apellido         string    `json:"apellido" db:"apellido"`
	Email            string    `json:"email" db:"email"`
}

type AssignmentPatch struct {
	Estado     *string
	Progreso   *int
	Completado *bool
}
