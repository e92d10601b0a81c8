package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jhoicas/nautica-cli/internal/application/dto"
	"github.com/jhoicas/nautica-cli/internal/domain"
)

func (a *App) runAuth(args []string) int {
	if len(args) == 0 {
		a.usage()
		return exitUsage
	}
	switch args[0] {
	case "login":
		return a.cmdLogin(args[1:])
	case "logout":
		return a.cmdLogout()
	}
	fmt.Fprintf(a.Out, "Unknown auth command %q\n", args[0])
	return exitUsage
}

func (a *App) cmdLogin(args []string) int {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	var companyName string
	fs.StringVar(&companyName, "company-name", "", "Company name to log into")
	fs.StringVar(&companyName, "c", "", "Company name to log into (shorthand)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(a.Out, "Usage: nautica auth login [-c COMPANY] USERNAME PASSWORD")
		return exitUsage
	}
	username, password := fs.Arg(0), fs.Arg(1)

	err := a.auth.Login(a.Ctx, dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		fmt.Fprintln(a.Out, "Invalid credentials")
		return exitOK
	}
	fmt.Fprintf(a.Out, "Logged in as %s\n", username)

	if companyName == "" {
		return exitOK
	}
	switch err := a.auth.EnterCompany(a.Ctx, companyName); {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintf(a.Out, "Company %s not found\n", companyName)
	case errors.Is(err, domain.ErrNotMember):
		fmt.Fprintf(a.Out, "User %s is not a member of company %s\n", username, companyName)
	case err == nil:
		fmt.Fprintf(a.Out, "Logged in company %s\n", companyName)
	}
	return exitOK
}

func (a *App) cmdLogout() int {
	a.auth.Logout(a.Ctx)
	fmt.Fprintln(a.Out, "Logged out")
	return exitOK
}
