// Package cli implementa la capa de comandos: parseo de subcomandos,
// prompts de confirmación y render de resultados. Toda decisión de negocio
// (login, permisos, datos) vive en los casos de uso; aquí solo se despacha
// y se traducen los errores de dominio a mensajes.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/nautica-cli/internal/application/session"
	"github.com/jhoicas/nautica-cli/internal/application/usecase"
	"github.com/jhoicas/nautica-cli/pkg/logger"
)

// Códigos de salida: los resultados de negocio (denegado, no encontrado,
// cancelado) son salidas normales con mensaje, no fallos del proceso.
const (
	exitOK    = 0
	exitUsage = 2
)

// App reúne las dependencias de la capa de comandos. Out e In son
// inyectables para poder probar la salida y los prompts.
type App struct {
	Ctx       *session.Context
	Log       *logger.Logger
	Out       io.Writer
	In        io.Reader
	AssumeYes bool // --yes: omite confirmaciones

	auth      *usecase.AuthUseCase
	users     *usecase.UserUseCase
	inventory *usecase.InventoryUseCase
	companies *usecase.CompanyUseCase
}

// NewApp construye la aplicación de línea de comandos.
func NewApp(ctx *session.Context, log *logger.Logger, out io.Writer, in io.Reader) *App {
	return &App{
		Ctx:       ctx,
		Log:       log,
		Out:       out,
		In:        in,
		auth:      usecase.NewAuthUseCase(),
		users:     usecase.NewUserUseCase(),
		inventory: usecase.NewInventoryUseCase(),
		companies: usecase.NewCompanyUseCase(),
	}
}

// Run despacha una invocación y devuelve el código de salida.
func (a *App) Run(args []string) int {
	args = a.stripGlobalFlags(args)
	if len(args) == 0 {
		a.usage()
		return exitUsage
	}

	command, rest := args[0], args[1:]
	a.Log.Debug().Str("command", command).Msg("despachando comando")

	switch command {
	case "auth":
		return a.runAuth(rest)
	case "user":
		return a.runUser(rest)
	case "inventory":
		return a.runInventory(rest)
	case "employees":
		return a.cmdEmployees()
	case "list":
		return a.cmdCompanies()
	case "help", "-h", "--help":
		a.usage()
		return exitOK
	}
	fmt.Fprintf(a.Out, "Unknown command %q\n", command)
	a.usage()
	return exitUsage
}

func (a *App) stripGlobalFlags(args []string) []string {
	filtered := args[:0:0]
	for _, arg := range args {
		if arg == "--yes" || arg == "-y" {
			a.AssumeYes = true
			continue
		}
		filtered = append(filtered, arg)
	}
	return filtered
}

func (a *App) usage() {
	fmt.Fprint(a.Out, `Company management CLI tool

Usage:
  nautica auth login [-c COMPANY] USERNAME PASSWORD
  nautica auth logout
  nautica user show-me
  nautica user list
  nautica user roles
  nautica user add -u USERNAME -p PASSWORD [-r ROLE] [-c COMPANY]
  nautica inventory view
  nautica inventory search [-s SKU] [-c CATEGORY_ID]
  nautica inventory product-details SKU
  nautica inventory update -s SKU -p JSON
  nautica inventory categories
  nautica employees
  nautica list

Flags:
  -y, --yes   skip confirmation prompts
`)
}

// confirm pregunta sí/no por In; --yes responde que sí sin preguntar.
func (a *App) confirm(prompt string) bool {
	if a.AssumeYes {
		return true
	}
	fmt.Fprintf(a.Out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
