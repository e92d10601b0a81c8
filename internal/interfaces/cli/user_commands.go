package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/jhoicas/nautica-cli/internal/application/dto"
	"github.com/jhoicas/nautica-cli/internal/domain"
)

func (a *App) runUser(args []string) int {
	if len(args) == 0 {
		a.usage()
		return exitUsage
	}
	switch args[0] {
	case "show-me":
		return a.cmdShowMe()
	case "list":
		return a.cmdListUsers()
	case "roles":
		return a.cmdListRoles()
	case "add":
		return a.cmdAddUser(args[1:])
	}
	fmt.Fprintf(a.Out, "Unknown user command %q\n", args[0])
	return exitUsage
}

func (a *App) cmdShowMe() int {
	me, err := a.users.Me(a.Ctx)
	if err != nil {
		return a.reportAccess(err)
	}
	if me.CompanyName != "" {
		fmt.Fprintf(a.Out, "You logged in as %s in company %s.\n", me.Username, me.CompanyName)
		if me.CompanyRole != "" {
			fmt.Fprintf(a.Out, "  Your current role is %s\n", me.CompanyRole)
		}
		return exitOK
	}
	fmt.Fprintf(a.Out, "You logged in as %s\n", me.Username)
	fmt.Fprintln(a.Out, "  Your roles:")
	for _, role := range me.GlobalRoles {
		fmt.Fprintf(a.Out, "    -%s\n", role)
	}
	return exitOK
}

func (a *App) cmdListUsers() int {
	usernames, err := a.users.List(a.Ctx)
	if err != nil {
		return a.reportAccess(err)
	}
	fmt.Fprintln(a.Out, "System users:")
	for _, username := range usernames {
		fmt.Fprintf(a.Out, "- %s\n", username)
	}
	return exitOK
}

func (a *App) cmdListRoles() int {
	roles, err := a.users.ListRoles(a.Ctx)
	if err != nil {
		return a.reportAccess(err)
	}
	fmt.Fprintln(a.Out, "Available user roles:")
	for _, role := range roles {
		fmt.Fprintf(a.Out, "- %s -> %s\n", role.Name, strings.Join(role.Permissions, " :: "))
	}
	return exitOK
}

func (a *App) cmdAddUser(args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	var in dto.CreateUserRequest
	fs.StringVar(&in.Username, "username", "", "Username for the new user")
	fs.StringVar(&in.Username, "u", "", "Username (shorthand)")
	fs.StringVar(&in.Password, "password", "", "User password")
	fs.StringVar(&in.Password, "p", "", "User password (shorthand)")
	fs.StringVar(&in.Role, "role", "", "User role (default: user)")
	fs.StringVar(&in.Role, "r", "", "User role (shorthand)")
	fs.StringVar(&in.CompanyName, "company", "", "Company name to assign the user to")
	fs.StringVar(&in.CompanyName, "c", "", "Company name (shorthand)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	created, err := a.users.Create(a.Ctx, in, a.confirm)
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		fmt.Fprintf(a.Out, "User with username '%s' already exists\n", in.Username)
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(a.Out, "Username and password are required")
	case errors.Is(err, domain.ErrNotFound):
		if in.CompanyName != "" {
			fmt.Fprintf(a.Out, "Company %s not found\n", in.CompanyName)
		} else {
			fmt.Fprintf(a.Out, "Role %s not found\n", in.Role)
		}
	case err != nil:
		return a.reportAccess(err)
	case !created:
		fmt.Fprintln(a.Out, "User creation cancelled")
	case in.CompanyName != "":
		fmt.Fprintf(a.Out, "User %s added to company %s\n", in.Username, in.CompanyName)
	default:
		fmt.Fprintf(a.Out, "User %s added to system\n", in.Username)
	}
	return exitOK
}
