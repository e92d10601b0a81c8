package dto

// LoginRequest credenciales de inicio de sesión. La selección de empresa es
// una operación aparte (EnterCompany), posterior a autenticar.
type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// MeResponse información del usuario autenticado para "show-me".
type MeResponse struct {
	Username    string
	CompanyName string   // vacía si no hay empresa activa
	CompanyRole string   // rol de la membresía en la empresa activa
	GlobalRoles []string // roles globales, solo sin empresa activa
}
