package models

type SubmissionCreatedEvent struct {
	EventID          string `json:"event_id"`
	AsignacionID     int64  `json:"asignacion_id"`
	TareaID          int64  `json:"tarea_id"`
	UsuarioID        int64  `json:"usuario_id"`
	ArchivoEntregado string `json:"archivo_entregado"`
	Timestamp        int64  `json:"timestamp"`
}
