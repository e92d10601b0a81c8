package cli

import (
	"errors"
	"fmt"

	"github.com/jhoicas/nautica-cli/internal/domain"
)

// reportAccess traduce los fallos de acceso a los mensajes del CLI.
// "Falta iniciar sesión" y "sin permiso" se informan distinto; ambos son
// salidas normales del proceso.
func (a *App) reportAccess(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		fmt.Fprintln(a.Out, "Login required")
	case errors.Is(err, domain.ErrNotAuthorized):
		fmt.Fprintln(a.Out, "Not Authorized to perform this action.")
	default:
		a.Log.Error().Err(err).Msg("fallo inesperado del comando")
		fmt.Fprintln(a.Out, "Unexpected error:", err)
	}
	return exitOK
}
