// Package session mantiene la sesión de usuario entre invocaciones y resuelve
// las decisiones de autorización contra el contexto actual (usuario global o
// membresía de empresa).
package session

import (
	"time"

	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

// DefaultTTL es la ventana de inactividad tras la cual la sesión caduca.
const DefaultTTL = 10 * time.Minute

// Session guarda a lo sumo un usuario autenticado y una empresa activa
// (ambos nil = sin sesión) junto con la marca del último acceso.
type Session struct {
	user        *entity.User
	company     *entity.Company
	lastVisited time.Time
}

// New crea una sesión vacía con el último acceso en ahora.
func New() *Session {
	return &Session{lastVisited: time.Now()}
}

// Restore reconstruye una sesión persistida sin refrescar su marca de acceso.
func Restore(user *entity.User, company *entity.Company, lastVisited time.Time) *Session {
	return &Session{user: user, company: company, lastVisited: lastVisited}
}

// CurrentUser devuelve el usuario autenticado. Toda lectura exitosa renueva
// la marca de último acceso (expiración deslizante).
func (s *Session) CurrentUser() *entity.User {
	if s.user != nil {
		s.lastVisited = time.Now()
	}
	return s.user
}

// PeekUser devuelve el usuario sin renovar la marca de acceso. Para
// persistencia: guardar la sesión no cuenta como actividad.
func (s *Session) PeekUser() *entity.User {
	return s.user
}

// SetUser fija el usuario autenticado y renueva el último acceso.
func (s *Session) SetUser(user *entity.User) {
	s.user = user
	s.lastVisited = time.Now()
}

// Company devuelve la empresa activa, si hay.
func (s *Session) Company() *entity.Company {
	return s.company
}

// SetCompany fija la empresa activa.
func (s *Session) SetCompany(company *entity.Company) {
	s.company = company
}

// LastVisited devuelve la marca de último acceso (para persistencia).
func (s *Session) LastVisited() time.Time {
	return s.lastVisited
}
