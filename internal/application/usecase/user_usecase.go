package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nautica-cli/internal/application/dto"
	"github.com/jhoicas/nautica-cli/internal/application/session"
	"github.com/jhoicas/nautica-cli/internal/domain"
	"github.com/jhoicas/nautica-cli/internal/domain/entity"
	"github.com/jhoicas/nautica-cli/pkg/validator"
)

// DefaultRoleName es el rol que reciben los usuarios creados vía membresía.
const DefaultRoleName = "user"

// UserUseCase casos de uso de gestión de usuarios y roles.
type UserUseCase struct{}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase() *UserUseCase {
	return &UserUseCase{}
}

// Me devuelve la información del usuario autenticado: con empresa activa, su
// rol de membresía; sin empresa, sus roles globales. Solo exige login.
func (uc *UserUseCase) Me(ctx *session.Context) (*dto.MeResponse, error) {
	if !ctx.LoggedIn() {
		return nil, domain.ErrNotAuthenticated
	}
	user := ctx.CurrentUser()
	resp := &dto.MeResponse{Username: user.Username}
	if company := ctx.CurrentCompany(); company != nil {
		resp.CompanyName = company.Name
		if membership := company.FindMembership(user); membership != nil && membership.Role != nil {
			resp.CompanyRole = membership.Role.Name
		}
		return resp, nil
	}
	for _, role := range user.Roles {
		resp.GlobalRoles = append(resp.GlobalRoles, role.Name)
	}
	return resp, nil
}

// List devuelve los nombres de todos los usuarios del sistema.
func (uc *UserUseCase) List(ctx *session.Context) ([]string, error) {
	if err := requirePermissions(ctx, entity.PermViewListUsers); err != nil {
		return nil, err
	}
	usernames := make([]string, 0, len(ctx.Data.Users))
	for _, u := range ctx.Data.Users {
		usernames = append(usernames, u.Username)
	}
	return usernames, nil
}

// ListRoles devuelve los roles disponibles con sus permisos.
func (uc *UserUseCase) ListRoles(ctx *session.Context) ([]dto.RoleResponse, error) {
	if err := requirePermissions(ctx, entity.PermViewListRoles); err != nil {
		return nil, err
	}
	roles := make([]dto.RoleResponse, 0, len(ctx.Data.Roles))
	for _, r := range ctx.Data.Roles {
		resp := dto.RoleResponse{Name: r.Name}
		for _, code := range r.PermissionCodes() {
			resp.Permissions = append(resp.Permissions, string(code))
		}
		roles = append(roles, resp)
	}
	return roles, nil
}

// Create crea un usuario nuevo. El nombre no puede repetirse (comparación
// insensible a mayúsculas). Con empresa: el usuario recibe el rol por defecto
// como rol global y una membresía con el rol pedido. Sin empresa: el rol
// pedido queda como rol global. Devuelve false sin error si el operador
// cancela la confirmación.
func (uc *UserUseCase) Create(ctx *session.Context, in dto.CreateUserRequest, confirm Confirm) (bool, error) {
	if err := requirePermissions(ctx, entity.PermCreateUser); err != nil {
		return false, err
	}
	if failures := validator.ValidateStruct(in); len(failures) > 0 {
		return false, domain.ErrInvalidInput
	}
	if ctx.Data.FindUser(in.Username) != nil {
		return false, domain.ErrDuplicate
	}
	if confirm != nil && !confirm(fmt.Sprintf("Are you sure you want to create user '%s'?", in.Username)) {
		return false, nil
	}

	roleName := in.Role
	if roleName == "" {
		roleName = DefaultRoleName
	}
	role := ctx.Data.FindRole(roleName)
	if role == nil {
		return false, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: string(hash),
	}

	if in.CompanyName != "" {
		company := ctx.Data.FindCompany(in.CompanyName)
		if company == nil {
			return false, domain.ErrNotFound
		}
		if defaultRole := ctx.Data.FindRole(DefaultRoleName); defaultRole != nil {
			user.Roles = []*entity.Role{defaultRole}
		}
		company.AddMember(uuid.NewString(), user, role, time.Now().UTC())
	} else {
		user.Roles = []*entity.Role{role}
	}
	ctx.Data.Users = append(ctx.Data.Users, user)
	return true, nil
}
