// Package filestore persiste el estado de la aplicación y la sesión como
// blobs locales: los datos como un grafo JSON normalizado (referencias por
// clave, re-enlazadas al cargar) y la sesión como un token firmado.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

// DataStore persiste AppData en un archivo JSON. Implementa
// repository.DataStore. Las escrituras son atómicas (temp + rename) para que
// un fallo de I/O deje intacto el estado anterior.
type DataStore struct {
	path string
}

// NewDataStore construye el almacén sobre la ruta dada.
func NewDataStore(path string) *DataStore {
	return &DataStore{path: path}
}

// ── Registros normalizados ───────────────────────────────────────────────────
// Las referencias cruzadas se guardan por clave: membresías por ID de usuario
// y nombre de rol, productos por id de categoría. Al cargar se re-enlazan a
// punteros compartidos, preservando la identidad a través del ciclo
// save/load.

type permissionRecord struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

type roleRecord struct {
	Name        string             `json:"name"`
	Permissions []permissionRecord `json:"permissions"`
}

type userRecord struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"password_hash"`
	Roles        []string `json:"roles"` // nombres de rol
}

type categoryRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int   `json:"parent_id,omitempty"`
}

type productRecord struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Kind         string          `json:"kind"`
	Price        decimal.Decimal `json:"price"`
	ProducedDate time.Time       `json:"produced_date"`
	IsNew        bool            `json:"is_new"`
	CategoryID   *int            `json:"category_id,omitempty"`
	// El cierre se persiste tal cual: un cierre obsoleto (árbol mutado tras
	// construir el producto) sobrevive el round-trip sin recomputarse.
	CategoryIDs []int          `json:"category_ids"`
	Specs       map[string]any `json:"specs,omitempty"`
}

type inventoryRecord struct {
	Description string          `json:"description"`
	Products    []productRecord `json:"products"`
}

type membershipRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
	JoinedDate time.Time `json:"joined_date"`
	Active     bool      `json:"active"`
}

type companyRecord struct {
	Name      string             `json:"name"`
	Owner     string             `json:"owner"`
	Location  string             `json:"location"`
	Inventory inventoryRecord    `json:"inventory"`
	Employees []membershipRecord `json:"employees"`
}

type dataRecord struct {
	Users      []userRecord     `json:"users"`
	Roles      []roleRecord     `json:"roles"`
	Categories []categoryRecord `json:"categories"`
	Companies  []companyRecord  `json:"companies"`
}

// Load lee y re-enlaza el estado persistido. Devuelve nil si el archivo no
// existe todavía; un archivo corrupto sí es error (fail fast, el estado
// previo queda intacto).
func (s *DataStore) Load() (*entity.AppData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer datos: %w", err)
	}
	var record dataRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("datos corruptos en %s: %w", s.path, err)
	}
	return relink(&record), nil
}

// Save serializa el grafo a registros normalizados y escribe atómico.
func (s *DataStore) Save(data *entity.AppData) error {
	record := normalize(data)
	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar datos: %w", err)
	}
	return writeAtomic(s.path, raw, 0o644)
}

func normalize(data *entity.AppData) *dataRecord {
	record := &dataRecord{}
	for _, u := range data.Users {
		ur := userRecord{ID: u.ID, Username: u.Username, PasswordHash: u.PasswordHash}
		for _, r := range u.Roles {
			ur.Roles = append(ur.Roles, r.Name)
		}
		record.Users = append(record.Users, ur)
	}
	for _, r := range data.Roles {
		rr := roleRecord{Name: r.Name}
		for _, p := range r.Permissions {
			rr.Permissions = append(rr.Permissions, permissionRecord{
				Code:        string(p.Code),
				Description: p.Description,
			})
		}
		record.Roles = append(record.Roles, rr)
	}
	for _, c := range data.Categories {
		cr := categoryRecord{ID: c.CatID, Name: c.Name, Description: c.Description}
		if c.Parent != nil {
			parentID := c.Parent.CatID
			cr.ParentID = &parentID
		}
		record.Categories = append(record.Categories, cr)
	}
	for _, c := range data.Companies {
		record.Companies = append(record.Companies, normalizeCompany(c))
	}
	return record
}

func normalizeCompany(c *entity.Company) companyRecord {
	cr := companyRecord{Name: c.Name, Owner: c.Owner, Location: c.Location}
	if c.Inventory != nil {
		cr.Inventory.Description = c.Inventory.Description
		for _, p := range c.Inventory.Products {
			pr := productRecord{
				SKU:          p.SKU,
				Name:         p.Name,
				Description:  p.Description,
				Kind:         string(p.Kind),
				Price:        p.Price,
				ProducedDate: p.ProducedDate,
				IsNew:        p.IsNew,
				CategoryIDs:  p.CategoryIDs(),
				Specs:        p.Specs,
			}
			if p.Category != nil {
				id := p.Category.CatID
				pr.CategoryID = &id
			}
			cr.Inventory.Products = append(cr.Inventory.Products, pr)
		}
	}
	for _, m := range c.Employees {
		mr := membershipRecord{ID: m.ID, JoinedDate: m.JoinedDate, Active: m.Active}
		if m.User != nil {
			mr.UserID = m.User.ID
		}
		if m.Role != nil {
			mr.Role = m.Role.Name
		}
		cr.Employees = append(cr.Employees, mr)
	}
	return cr
}

// relink reconstruye el grafo con punteros compartidos. No valida integridad
// referencial: un rol o usuario ausente degrada (rol suelto con solo nombre,
// membresía sin usuario) en lugar de fallar.
func relink(record *dataRecord) *entity.AppData {
	data := &entity.AppData{}

	roleByName := make(map[string]*entity.Role, len(record.Roles))
	for _, rr := range record.Roles {
		role := &entity.Role{Name: rr.Name}
		for _, pr := range rr.Permissions {
			role.Permissions = append(role.Permissions, entity.Permission{
				Code:        entity.PermissionCode(pr.Code),
				Description: pr.Description,
			})
		}
		data.Roles = append(data.Roles, role)
		roleByName[role.Name] = role
	}

	lookupRole := func(name string) *entity.Role {
		if name == "" {
			return nil
		}
		if role, ok := roleByName[name]; ok {
			return role
		}
		return &entity.Role{Name: name}
	}

	userByID := make(map[string]*entity.User, len(record.Users))
	for _, ur := range record.Users {
		user := &entity.User{ID: ur.ID, Username: ur.Username, PasswordHash: ur.PasswordHash}
		for _, roleName := range ur.Roles {
			user.Roles = append(user.Roles, lookupRole(roleName))
		}
		data.Users = append(data.Users, user)
		userByID[user.ID] = user
	}

	categoryByID := make(map[int]*entity.Category, len(record.Categories))
	for _, cr := range record.Categories {
		category := &entity.Category{CatID: cr.ID, Name: cr.Name, Description: cr.Description}
		data.Categories = append(data.Categories, category)
		categoryByID[category.CatID] = category
	}
	for i, cr := range record.Categories {
		if cr.ParentID != nil {
			data.Categories[i].Parent = categoryByID[*cr.ParentID]
		}
	}

	for _, cr := range record.Companies {
		inventory := &entity.Inventory{Description: cr.Inventory.Description}
		for _, pr := range cr.Inventory.Products {
			product := &entity.Product{
				SKU:          pr.SKU,
				Name:         pr.Name,
				Description:  pr.Description,
				Kind:         entity.ProductKind(pr.Kind),
				Price:        pr.Price,
				ProducedDate: pr.ProducedDate,
				IsNew:        pr.IsNew,
				Specs:        pr.Specs,
			}
			if pr.CategoryID != nil {
				product.Category = categoryByID[*pr.CategoryID]
			}
			product.RestoreCategoryIDs(pr.CategoryIDs)
			inventory.Products = append(inventory.Products, product)
		}
		company := &entity.Company{
			Name:      cr.Name,
			Owner:     cr.Owner,
			Location:  cr.Location,
			Inventory: inventory,
		}
		for _, mr := range cr.Employees {
			company.Employees = append(company.Employees, &entity.Membership{
				ID:         mr.ID,
				User:       userByID[mr.UserID],
				Role:       lookupRole(mr.Role),
				JoinedDate: mr.JoinedDate,
				Active:     mr.Active,
			})
		}
		data.Companies = append(data.Companies, company)
	}
	return data
}

func writeAtomic(path string, raw []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("crear directorio de estado: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, perm); err != nil {
		return fmt.Errorf("escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renombrar %s: %w", tmp, err)
	}
	return nil
}
