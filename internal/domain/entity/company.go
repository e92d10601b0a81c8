package entity

import (
	"fmt"
	"time"
)

// Membership vincula un usuario a una empresa con un rol, fecha de ingreso y
// bandera de actividad. Es el alcance en que se evalúa la autorización
// específica de empresa: los roles globales del usuario no participan.
type Membership struct {
	ID         string
	User       *User
	Role       *Role
	JoinedDate time.Time
	Active     bool
}

// HasPermission indica si el rol de la membresía otorga el código dado.
func (m *Membership) HasPermission(code PermissionCode) bool {
	return m.Role != nil && m.Role.HasPermission(code)
}

// Company posee un inventario y las membresías de sus empleados.
type Company struct {
	Name      string
	Owner     string
	Location  string
	Inventory *Inventory
	Employees []*Membership
}

// NewCompany construye una empresa con sus membresías iniciales.
func NewCompany(name, owner, location string, inventory *Inventory, employees ...*Membership) *Company {
	return &Company{
		Name:      name,
		Owner:     owner,
		Location:  location,
		Inventory: inventory,
		Employees: employees,
	}
}

// AddMember agrega una membresía nueva con Active=true. No comprueba si el
// usuario ya tiene una: los duplicados se permiten y FindMembership siempre
// devuelve la primera por orden de inserción.
func (c *Company) AddMember(id string, user *User, role *Role, joined time.Time) {
	c.Employees = append(c.Employees, &Membership{
		ID:         id,
		User:       user,
		Role:       role,
		JoinedDate: joined,
		Active:     true,
	})
}

// FindMembership busca la membresía del usuario por identidad (ID de
// usuario), primera coincidencia. No filtra por Active, a diferencia de
// ActiveEmployees; esa asimetría es intencional.
func (c *Company) FindMembership(user *User) *Membership {
	for _, m := range c.Employees {
		if m.User != nil && m.User.ID == user.ID {
			return m
		}
	}
	return nil
}

// IsMember indica si el usuario tiene membresía en la empresa, activa o no.
func (c *Company) IsMember(user *User) bool {
	return c.FindMembership(user) != nil
}

// ActiveEmployees devuelve los usuarios de membresías activas, opcionalmente
// filtrados por nombres de rol.
func (c *Company) ActiveEmployees(roleNames ...string) []*User {
	var users []*User
	for _, m := range c.Employees {
		if !m.Active {
			continue
		}
		if len(roleNames) > 0 && (m.Role == nil || !containsString(roleNames, m.Role.Name)) {
			continue
		}
		users = append(users, m.User)
	}
	return users
}

// HasPermission responde "¿tiene el usuario este permiso en esta empresa?".
// Sin membresía no hay permiso de empresa, aunque el usuario lo tenga en sus
// roles globales.
func (c *Company) HasPermission(user *User, code PermissionCode) bool {
	membership := c.FindMembership(user)
	if membership == nil {
		return false
	}
	return membership.HasPermission(code)
}

// String devuelve "nombre (ubicación)" para listados.
func (c *Company) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Location)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
