package usecase

import (
	"github.com/jhoicas/nautica-cli/internal/application/session"
	"github.com/jhoicas/nautica-cli/internal/domain"
	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

// Confirm pide confirmación al operador antes de una acción destructiva.
// Devolver false cancela la operación (resultado normal, no error).
type Confirm func(prompt string) bool

// requirePermissions traduce la decisión del resolvedor a errores de dominio:
// NotLoggedIn → ErrNotAuthenticated, Denied → ErrNotAuthorized. La capa de
// comandos los reporta con mensajes distintos.
func requirePermissions(ctx *session.Context, codes ...entity.PermissionCode) error {
	switch ctx.Require(codes...) {
	case session.NotLoggedIn:
		return domain.ErrNotAuthenticated
	case session.Denied:
		return domain.ErrNotAuthorized
	}
	return nil
}
