package models

import (
	"time"
)

type Task struct {
	ID                int64     `json:"id" db:"id"`
	Titulo            string    `json:"titulo" db:"titulo"`
	Descripcion       *string   `json:"descripcion" db:"descripcion"`
	CreadorID         int64     `json:"creador_id" db:"creador_id"`
	Tipo              string    `json:"tipo" db:"tipo"`
	EnlaceVideo       *string   `json:"enlace_video" db:"enlace_video"`
	FechaLimite       *Date     `json:"fecha_limite" db:"fecha_limite"`
	Instrucciones     *string   `json:"instrucciones" db:"instrucciones"`
	AsignacionGeneral bool      `json:"asignacion_general" db:"asignacion_general"`
	Estado            *string   `json:"estado" db:"estado"`
	Progreso          *int      `json:"progreso" db:"progreso"`
	Completado        *bool     `json:"completado" db:"completado"`
	AsignadoID        *int64    `json:"asignado_id" db:"asignado_id"`
	FechaCreacion     time.Time `json:"fecha_creacion" db:"fecha_creacion"`
}

// TaskPatch carries a partial update. A nil field leaves the column untouched.
type TaskPatch struct {
	Titulo            *string
	Descripcion       *string
	Tipo              *string
	EnlaceVideo       *string
	FechaLimite       *Date
	Instrucciones     *string
	Estado            *string
	Progreso          *int
	Completado        *bool
	AsignacionGeneral *bool
}
