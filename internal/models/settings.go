package models

type SystemSettings struct {
	Notificaciones    bool `json:"notificaciones" db:"notificaciones"`
	ModoMantenimiento bool `json:"modo_mantenimiento" db:"modo_mantenimiento"`
	PermitirRegistros bool `json:"permitir_registros" db:"permitir_registros"`
}

type SettingsPatch struct {
	Notificaciones    *bool `json:"notificaciones"`
	ModoMantenimiento *bool `json:"modo_mantenimiento"`
	PermitirRegistros *bool `json:"permitir_registros"`
}

type AdminDashboard struct {
	UsuariosRegistrados int `json:"usuariosRegistrados"`
	TareasTotales       int `json:"tareasTotales"`
	EntregasPendientes  int `json:"entregasPendientes"`
}

type TeacherDashboard struct {
	EstudiantesInscritos int `json:"estudiantesInscritos"`
	TareasCreadas        int `json:"tareasCreadas"`
	EntregasRecibidas    int `json:"entregasRecibidas"`
}
