package entity

import "strings"

// AppData es la raíz agregada del estado de la aplicación: usuarios,
// empresas, roles y categorías como colecciones de nivel superior. No hay
// claves foráneas ni validación de integridad referencial; todas las
// búsquedas son barridos lineales.
type AppData struct {
	Users      []*User
	Companies  []*Company
	Categories []*Category
	Roles      []*Role
}

// FindUser busca por nombre de usuario, insensible a mayúsculas, primera
// coincidencia. La capa de datos no exige unicidad de nombres.
func (d *AppData) FindUser(username string) *User {
	for _, u := range d.Users {
		if strings.EqualFold(u.Username, username) {
			return u
		}
	}
	return nil
}

// FindUserByID busca por identidad.
func (d *AppData) FindUserByID(id string) *User {
	for _, u := range d.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// FindRole busca un rol por nombre, sensible a mayúsculas.
func (d *AppData) FindRole(name string) *Role {
	for _, r := range d.Roles {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// FindCompany busca una empresa por nombre, insensible a mayúsculas.
func (d *AppData) FindCompany(name string) *Company {
	for _, c := range d.Companies {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// FindCategory busca una categoría por id.
func (d *AppData) FindCategory(id int) *Category {
	for _, c := range d.Categories {
		if c.CatID == id {
			return c
		}
	}
	return nil
}

// Inventories devuelve los inventarios a considerar: el de la empresa dada,
// o todos cuando company es nil.
func (d *AppData) Inventories(company *Company) []*Inventory {
	if company != nil {
		return []*Inventory{company.Inventory}
	}
	inventories := make([]*Inventory, 0, len(d.Companies))
	for _, c := range d.Companies {
		inventories = append(inventories, c.Inventory)
	}
	return inventories
}
