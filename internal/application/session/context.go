package session

import (
	"time"

	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

// Decision es el resultado de una comprobación de permisos. La denegación es
// un resultado normal, no un error: el llamador distingue "falta iniciar
// sesión" de "sin permiso" para informarlos distinto.
type Decision int

const (
	Allowed Decision = iota
	NotLoggedIn
	Denied
)

// Context reúne los datos de la aplicación y la sesión vigente. Es el punto
// único por el que la capa de comandos consulta usuario, empresa y permisos.
type Context struct {
	Data    *entity.AppData
	session *Session
	ttl     time.Duration
}

// NewContext construye el contexto. Un ttl <= 0 usa DefaultTTL.
func NewContext(data *entity.AppData, s *Session, ttl time.Duration) *Context {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if s == nil {
		s = New()
	}
	return &Context{Data: data, session: s, ttl: ttl}
}

// expire limpia la sesión si su inactividad supera el ttl. Una sesión
// caducada equivale a no haber iniciado sesión, nunca a un error de "sesión
// expirada".
func (c *Context) expire() {
	if time.Since(c.session.lastVisited) > c.ttl {
		c.Reset()
	}
}

// LoggedIn indica si hay un usuario con sesión fresca.
func (c *Context) LoggedIn() bool {
	return c.CurrentUser() != nil
}

// CurrentUser devuelve el usuario autenticado tras aplicar la caducidad
// (renueva el último acceso si la sesión sigue viva).
func (c *Context) CurrentUser() *entity.User {
	c.expire()
	return c.session.CurrentUser()
}

// CurrentCompany devuelve la empresa activa, si hay, tras aplicar la
// caducidad.
func (c *Context) CurrentCompany() *entity.Company {
	c.expire()
	return c.session.Company()
}

// SetUser fija el usuario autenticado en la sesión.
func (c *Context) SetUser(user *entity.User) {
	c.session.SetUser(user)
}

// SetCompany fija la empresa activa en la sesión.
func (c *Context) SetCompany(company *entity.Company) {
	c.session.SetCompany(company)
}

// Reset limpia la sesión: usuario y empresa a nil.
func (c *Context) Reset() {
	*c.session = *New()
}

// Session expone la sesión para persistirla al terminar el comando.
func (c *Context) Session() *Session {
	return c.session
}

// Require decide el acceso para una lista de permisos requeridos:
//
//  1. Sin usuario (o sesión caducada): NotLoggedIn.
//  2. Usuario sin empresa activa: los roles globales deben otorgar todos los
//     códigos (corta en el primero ausente).
//  3. Usuario y empresa activos: Company.HasPermission debe cumplirse para
//     cada código; los roles globales se ignoran por completo en esta rama.
func (c *Context) Require(codes ...entity.PermissionCode) Decision {
	if !c.LoggedIn() {
		return NotLoggedIn
	}
	user := c.session.CurrentUser()
	company := c.session.Company()
	if company == nil {
		for _, code := range codes {
			if !user.HasPermission(code) {
				return Denied
			}
		}
		return Allowed
	}
	for _, code := range codes {
		if !company.HasPermission(user, code) {
			return Denied
		}
	}
	return Allowed
}
