package entity

// PermissionCode identifica un permiso del sistema. Es un conjunto cerrado:
// el prefijo "company_" es solo convención de nombres, el resolvedor de
// autorización nunca lo interpreta.
type PermissionCode string

// Permisos globales.
const (
	PermView   PermissionCode = "view"
	PermEdit   PermissionCode = "edit"
	PermDelete PermissionCode = "delete"
	PermCreate PermissionCode = "create"
	PermManage PermissionCode = "manage"
	PermAdmin  PermissionCode = "admin"
)

// Permisos con alcance de empresa (se evalúan contra la membresía).
const (
	PermCompanyView   PermissionCode = "company_view"
	PermCompanyEdit   PermissionCode = "company_edit"
	PermCompanyDelete PermissionCode = "company_delete"
	PermCompanyCreate PermissionCode = "company_create"
	PermCompanyManage PermissionCode = "company_manage"
	PermCompanyAdmin  PermissionCode = "company_admin"
)

// Permisos especiales.
// PermViewListRoles conserva el valor histórico "view_list_permissions".
const (
	PermViewListRoles PermissionCode = "view_list_permissions"
	PermViewListUsers PermissionCode = "view_list_users"
	PermCreateUser    PermissionCode = "create_user"
)

// AllPermissionCodes devuelve el conjunto completo de permisos conocidos.
// Se usa para construir roles de superusuario.
func AllPermissionCodes() []PermissionCode {
	return []PermissionCode{
		PermView, PermEdit, PermDelete, PermCreate, PermManage, PermAdmin,
		PermCompanyView, PermCompanyEdit, PermCompanyDelete,
		PermCompanyCreate, PermCompanyManage, PermCompanyAdmin,
		PermViewListRoles, PermViewListUsers, PermCreateUser,
	}
}

// Permission es un permiso con código y descripción opcional.
// Inmutable después de su creación.
type Permission struct {
	Code        PermissionCode
	Description string
}

// String devuelve el código del permiso.
func (p Permission) String() string {
	return string(p.Code)
}

// Role agrupa permisos bajo un nombre. El nombre es único por convención,
// la capa de datos no lo exige.
type Role struct {
	Name        string
	Permissions []Permission
}

// NewRole construye un rol con sus permisos.
func NewRole(name string, permissions ...Permission) *Role {
	return &Role{Name: name, Permissions: permissions}
}

// HasPermission indica si el rol otorga el código dado. El conjunto efectivo
// es la unión de los permisos; los duplicados son inofensivos.
func (r *Role) HasPermission(code PermissionCode) bool {
	for _, p := range r.Permissions {
		if p.Code == code {
			return true
		}
	}
	return false
}

// PermissionCodes devuelve los códigos del rol en orden de declaración.
func (r *Role) PermissionCodes() []PermissionCode {
	codes := make([]PermissionCode, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		codes = append(codes, p.Code)
	}
	return codes
}
