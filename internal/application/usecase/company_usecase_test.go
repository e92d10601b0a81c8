package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nautica-cli/internal/application/usecase"
	"github.com/jhoicas/nautica-cli/internal/domain"
	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

func TestCompanyList(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewCompanyUseCase()

	companies, err := uc.List(f.ctx)

	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Test Company", companies[0].Name)
	assert.Equal(t, "Test Company (Test Location)", companies[0].Label)
}

func TestEmployees_SinPermiso(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewCompanyUseCase()

	_, err := uc.Employees(f.ctx)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

// Sin empresa activa se listan todas; con empresa activa, solo la actual.
func TestEmployees_Alcance(t *testing.T) {
	f := newFixture(t)
	other := entity.NewCompany("Other Company", "Owner", "Perth", entity.NewInventory("inv"))
	other.AddMember("m9", f.manager, f.manager.Roles[0], time.Now())
	f.ctx.Data.Companies = append(f.ctx.Data.Companies, other)

	f.ctx.SetUser(f.manager)
	uc := usecase.NewCompanyUseCase()

	all, err := uc.Employees(f.ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	f.ctx.SetCompany(f.company)
	scoped, err := uc.Employees(f.ctx)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "Test Company", scoped[0].CompanyName)
	assert.Equal(t, []string{"test_user", "test_manager", "admin"}, scoped[0].Usernames)
}

// Los empleados inactivos no aparecen en el listado.
func TestEmployees_ExcluyeInactivos(t *testing.T) {
	f := newFixture(t)
	membership := f.company.FindMembership(f.user)
	require.NotNil(t, membership)
	membership.Active = false

	f.ctx.SetUser(f.manager)
	f.ctx.SetCompany(f.company)
	uc := usecase.NewCompanyUseCase()

	scoped, err := uc.Employees(f.ctx)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.NotContains(t, scoped[0].Usernames, "test_user")
}
