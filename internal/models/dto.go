package models

// Data Transfer Objects

type RegisterRequest struct {
	Nombre     string `json:"nombre" validate:"required,max=100"`
	Apellido   string `json:"apellido" validate:"required,max=100"`
	Cedula     string `json:"cedula" validate:"required,max=20"`
	Correo     string `json:"correo" validate:"required,correo,max=255"`
	Contrasena string `json:"contrasena" validate:"required,min=6"`
	Rol        string `json:"rol" validate:"omitempty,oneof=admin maestro miembro"`
}

type LoginRequest struct {
	Correo     string `json:"correo" validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Usuario LoginSummary `json:"usuario"`
}

type LoginSummary struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Rol      Role   `json:"rol"`
}

type CreateTaskRequest struct {
	Titulo            string  `json:"titulo" validate:"required,max=255"`
	Descripcion       *string `json:"descripcion"`
	CreadorID         int64   `json:"creador_id" validate:"required,gt=0"`
	Tipo              string  `json:"tipo" validate:"required,max=50"`
	EnlaceVideo       *string `json:"enlace_video" validate:"omitempty,url"`
	FechaLimite       *Date   `json:"fecha_limite"`
	Instrucciones     *string `json:"instrucciones"`
	AsignacionGeneral *bool   `json:"asignacion_general"`
	AsignadoID        *int64  `json:"asignado_id" validate:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Titulo            *string `json:"titulo" validate:"omitempty,max=255"`
	Descripcion       *string `json:"descripcion"`
	Tipo              *string `json:"tipo" validate:"omitempty,max=50"`
	EnlaceVideo       *string `json:"enlace_video"`
	FechaLimite       *Date   `json:"fecha_limite"`
	Instrucciones     *string `json:"instrucciones"`
	Estado            *string `json:"estado"`
	Progreso          *int    `json:"progreso" validate:"omitempty,min=0,max=100"`
	Completado        *bool   `json:"completado"`
	AsignacionGeneral *bool   `json:"asignacion_general"`
}

func (r *UpdateTaskRequest) Patch() TaskPatch {
	return TaskPatch{
		Titulo:            r.Titulo,
		Descripcion:       r.Descripcion,
		Tipo:              r.Tipo,
		EnlaceVideo:       r.EnlaceVideo,
		FechaLimite:       r.FechaLimite,
		Instrucciones:     r.Instrucciones,
		Estado:            r.Estado,
		Progreso:          r.Progreso,
		Completado:        r.Completado,
		AsignacionGeneral: r.AsignacionGeneral,
	}
}

type CreateAssignmentRequest struct {
	TareaID   int64 `json:"tarea_id" validate:"required,gt=0"`
	UsuarioID int64 `json:"usuario_id" validate:"required,gt=0"`
}

type UpdateAssignmentRequest struct {
	Estado     *string `json:"estado" validate:"omitempty,max=50"`
	Progreso   *int    `json:"progreso" validate:"omitempty,min=0,max=100"`
	Completado *bool   `json:"completado"`
}

func (r *UpdateAssignmentRequest) Patch() AssignmentPatch {
	return AssignmentPatch{
		Estado:     r.Estado,
		Progreso:   r.Progreso,
		Completado: r.Completado,
	}
}
