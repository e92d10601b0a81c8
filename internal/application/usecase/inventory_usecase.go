package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/nautica-cli/internal/application/dto"
	"github.com/jhoicas/nautica-cli/internal/application/session"
	"github.com/jhoicas/nautica-cli/internal/domain"
	"github.com/jhoicas/nautica-cli/internal/domain/entity"
	"github.com/jhoicas/nautica-cli/pkg/validator"
)

// InventoryUseCase casos de uso de inventario: listado, búsqueda, detalle y
// actualización de productos. Con empresa activa opera solo sobre su
// inventario; sin empresa, sobre todos.
type InventoryUseCase struct{}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase() *InventoryUseCase {
	return &InventoryUseCase{}
}

// View lista los inventarios visibles con sus productos en orden de
// inserción.
func (uc *InventoryUseCase) View(ctx *session.Context) ([]dto.InventoryView, error) {
	if err := requirePermissions(ctx, entity.PermView); err != nil {
		return nil, err
	}
	company := ctx.CurrentCompany()
	var views []dto.InventoryView
	for _, inv := range ctx.Data.Inventories(company) {
		views = append(views, toInventoryView(inv, inv.Products))
	}
	return views, nil
}

// Search busca por SKU exacto o por id de categoría (la pertenencia incluye
// ancestros: buscar "Vehicle" trae todo lo que pase por esa categoría).
// Sin filtros devuelve ErrInvalidInput; sin coincidencias, ErrNotFound.
func (uc *InventoryUseCase) Search(ctx *session.Context, in dto.SearchRequest) (*dto.SearchResponse, error) {
	if err := requirePermissions(ctx, entity.PermView); err != nil {
		return nil, err
	}
	if in.SKU == "" && in.CategoryID == nil {
		return nil, domain.ErrInvalidInput
	}

	company := ctx.CurrentCompany()
	resp := &dto.SearchResponse{}
	if in.SKU != "" {
		for _, inv := range ctx.Data.Inventories(company) {
			if p := inv.Product(in.SKU); p != nil {
				resp.Matches = append(resp.Matches, toInventoryView(inv, []*entity.Product{p}))
			}
		}
	} else {
		category := ctx.Data.FindCategory(*in.CategoryID)
		if category == nil {
			return nil, domain.ErrNotFound
		}
		resp.CategoryLabel = category.String()
		for _, inv := range ctx.Data.Inventories(company) {
			if matched := inv.ProductsByCategory(category); len(matched) > 0 {
				resp.Matches = append(resp.Matches, toInventoryView(inv, matched))
			}
		}
	}
	if len(resp.Matches) == 0 {
		return nil, domain.ErrNotFound
	}
	return resp, nil
}

// Details devuelve la vista de detalle JSON de un producto (solo atributos
// escalares) buscándolo por SKU en los inventarios visibles.
func (uc *InventoryUseCase) Details(ctx *session.Context, sku string) ([]byte, error) {
	if err := requirePermissions(ctx, entity.PermCompanyView); err != nil {
		return nil, err
	}
	for _, inv := range ctx.Data.Inventories(ctx.CurrentCompany()) {
		if p := inv.Product(sku); p != nil {
			return p.DetailsJSON()
		}
	}
	return nil, domain.ErrNotFound
}

// Update aplica un payload JSON campo→valor sobre el producto indicado.
// Payload malformado o campo desconocido: ErrInvalidInput sin mutación
// parcial. Devuelve false sin error si el operador cancela la confirmación.
func (uc *InventoryUseCase) Update(ctx *session.Context, in dto.UpdateProductRequest, confirm Confirm) (bool, error) {
	if err := requirePermissions(ctx, entity.PermCompanyEdit); err != nil {
		return false, err
	}
	if failures := validator.ValidateStruct(in); len(failures) > 0 {
		return false, domain.ErrInvalidInput
	}

	// UseNumber evita perder precisión: los montos se convierten a decimal
	// recién en Product.Apply.
	decoder := json.NewDecoder(strings.NewReader(in.Payload))
	decoder.UseNumber()
	var changes map[string]any
	if err := decoder.Decode(&changes); err != nil {
		return false, fmt.Errorf("%w: payload JSON malformado", domain.ErrInvalidInput)
	}

	for _, inv := range ctx.Data.Inventories(ctx.CurrentCompany()) {
		p := inv.Product(in.SKU)
		if p == nil {
			continue
		}
		if confirm != nil && !confirm(fmt.Sprintf("Are you sure you want to update product %s?", p.Name)) {
			return false, nil
		}
		if err := p.Apply(changes); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, domain.ErrNotFound
}

// Categories lista todas las categorías de producto.
func (uc *InventoryUseCase) Categories(ctx *session.Context) ([]dto.CategoryResponse, error) {
	if err := requirePermissions(ctx, entity.PermView); err != nil {
		return nil, err
	}
	categories := make([]dto.CategoryResponse, 0, len(ctx.Data.Categories))
	for _, c := range ctx.Data.Categories {
		categories = append(categories, dto.CategoryResponse{ID: c.CatID, Label: c.String()})
	}
	return categories, nil
}

func toInventoryView(inv *entity.Inventory, products []*entity.Product) dto.InventoryView {
	view := dto.InventoryView{Description: inv.Description}
	for _, p := range products {
		line := dto.ProductLine{
			SKU:         p.SKU,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.String(),
		}
		if p.Category != nil {
			line.CategoryName = p.Category.Name
		}
		view.Products = append(view.Products, line)
	}
	return view
}
