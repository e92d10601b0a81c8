package usecase

import (
	"github.com/jhoicas/nautica-cli/internal/application/dto"
	"github.com/jhoicas/nautica-cli/internal/application/session"
	"github.com/jhoicas/nautica-cli/internal/domain"
	"github.com/jhoicas/nautica-cli/internal/domain/entity"
	"github.com/jhoicas/nautica-cli/pkg/validator"
)

// AuthUseCase casos de uso de autenticación: login, selección de empresa y
// logout. No hay hashing aquí: User.Authenticate compara contra bcrypt.
type AuthUseCase struct{}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase() *AuthUseCase {
	return &AuthUseCase{}
}

// Login autentica al usuario. La sesión se limpia antes de validar para
// partir de un estado conocido; un login fallido deja al operador sin sesión.
// La búsqueda de usuario es insensible a mayúsculas, primera coincidencia.
func (uc *AuthUseCase) Login(ctx *session.Context, in dto.LoginRequest) error {
	if failures := validator.ValidateStruct(in); len(failures) > 0 {
		return domain.ErrInvalidInput
	}
	ctx.Reset()
	user := ctx.Data.FindUser(in.Username)
	if user == nil || !user.Authenticate(in.Password) {
		return domain.ErrInvalidCredentials
	}
	ctx.SetUser(user)
	return nil
}

// EnterCompany activa una empresa para el usuario autenticado. El nombre se
// compara exacto (a diferencia de AppData.FindCompany); el usuario debe
// tener membresía, activa o no.
func (uc *AuthUseCase) EnterCompany(ctx *session.Context, name string) error {
	user := ctx.CurrentUser()
	if user == nil {
		return domain.ErrNotAuthenticated
	}
	var company *entity.Company
	for _, c := range ctx.Data.Companies {
		if c.Name == name {
			company = c
			break
		}
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if !company.IsMember(user) {
		return domain.ErrNotMember
	}
	ctx.SetCompany(company)
	return nil
}

// Logout limpia la sesión.
func (uc *AuthUseCase) Logout(ctx *session.Context) {
	ctx.Reset()
}
