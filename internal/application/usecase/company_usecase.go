package usecase

import (
	"github.com/jhoicas/nautica-cli/internal/application/dto"
	"github.com/jhoicas/nautica-cli/internal/application/session"
	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

// CompanyUseCase casos de uso de empresas: listado y empleados.
type CompanyUseCase struct{}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase() *CompanyUseCase {
	return &CompanyUseCase{}
}

// List devuelve todas las empresas registradas.
func (uc *CompanyUseCase) List(ctx *session.Context) ([]dto.CompanyResponse, error) {
	if err := requirePermissions(ctx, entity.PermView); err != nil {
		return nil, err
	}
	companies := make([]dto.CompanyResponse, 0, len(ctx.Data.Companies))
	for _, c := range ctx.Data.Companies {
		companies = append(companies, dto.CompanyResponse{Name: c.Name, Label: c.String()})
	}
	return companies, nil
}

// Employees lista los empleados con membresía activa de la empresa actual,
// o de todas las empresas si no hay una activa.
func (uc *CompanyUseCase) Employees(ctx *session.Context) ([]dto.CompanyEmployees, error) {
	if err := requirePermissions(ctx, entity.PermCompanyView); err != nil {
		return nil, err
	}
	companies := ctx.Data.Companies
	if current := ctx.CurrentCompany(); current != nil {
		companies = []*entity.Company{current}
	}
	result := make([]dto.CompanyEmployees, 0, len(companies))
	for _, c := range companies {
		group := dto.CompanyEmployees{CompanyName: c.Name}
		for _, u := range c.ActiveEmployees() {
			group.Usernames = append(group.Usernames, u.Username)
		}
		result = append(result, group)
	}
	return result, nil
}
