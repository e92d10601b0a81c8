package cli

import "fmt"

func (a *App) cmdCompanies() int {
	companies, err := a.companies.List(a.Ctx)
	if err != nil {
		return a.reportAccess(err)
	}
	fmt.Fprintln(a.Out, "Available companies:")
	for _, c := range companies {
		fmt.Fprintln(a.Out, c.Label)
	}
	return exitOK
}

func (a *App) cmdEmployees() int {
	groups, err := a.companies.Employees(a.Ctx)
	if err != nil {
		return a.reportAccess(err)
	}
	for _, g := range groups {
		fmt.Fprintf(a.Out, "Company %s:\n", g.CompanyName)
		for _, username := range g.Usernames {
			fmt.Fprintf(a.Out, "- %s\n", username)
		}
	}
	return exitOK
}
