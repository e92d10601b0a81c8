package dto

// CreateUserRequest datos para crear un usuario. Role por defecto "user";
// CompanyName opcional crea además una membresía en esa empresa.
type CreateUserRequest struct {
	Username    string `validate:"required"`
	Password    string `validate:"required"`
	Role        string
	CompanyName string
}

// RoleResponse rol con sus códigos de permiso, para listados.
type RoleResponse struct {
	Name        string
	Permissions []string
}
