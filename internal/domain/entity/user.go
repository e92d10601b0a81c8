package entity

import "golang.org/x/crypto/bcrypt"

// User representa una identidad del sistema con sus roles globales.
// La identidad entre sesiones y membresías se preserva por ID.
type User struct {
	ID           string
	Username     string
	PasswordHash string // hash bcrypt, nunca la contraseña en claro
	Roles        []*Role
}

// Authenticate verifica la contraseña contra el hash almacenado.
// No muta estado: el manejo de sesión es responsabilidad del llamador.
func (u *User) Authenticate(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HasPermission indica si alguno de los roles globales del usuario
// otorga el código dado.
func (u *User) HasPermission(code PermissionCode) bool {
	for _, role := range u.Roles {
		if role.HasPermission(code) {
			return true
		}
	}
	return false
}
