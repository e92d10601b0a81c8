package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nautica-cli/internal/application/dto"
	"github.com/jhoicas/nautica-cli/internal/application/usecase"
	"github.com/jhoicas/nautica-cli/internal/domain"
)

func intPtr(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// View
// ──────────────────────────────────────────────────────────────────────────────

func TestView_SinLogin(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.View(f.ctx)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestView_AlcanceGlobal(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewInventoryUseCase()

	views, err := uc.View(f.ctx)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Test Inventory", views[0].Description)
	require.Len(t, views[0].Products, 2)
	assert.Equal(t, "TEST001", views[0].Products[0].SKU)
	assert.Equal(t, "10000", views[0].Products[0].Price)
	assert.Equal(t, "Boat", views[0].Products[0].CategoryName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_SinFiltros(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.Search(f.ctx, dto.SearchRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearch_PorSKU(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewInventoryUseCase()

	resp, err := uc.Search(f.ctx, dto.SearchRequest{SKU: "TEST001"})

	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	require.Len(t, resp.Matches[0].Products, 1)
	assert.Equal(t, "Test Boat", resp.Matches[0].Products[0].Name)
}

func TestSearch_SKUAusente(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.Search(f.ctx, dto.SearchRequest{SKU: "TEST999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La pertenencia a categoría incluye ancestros: buscar por "Vehicle" trae los
// productos cuya cadena de categorías pasa por ella.
func TestSearch_PorCategoriaAncestro(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewInventoryUseCase()

	resp, err := uc.Search(f.ctx, dto.SearchRequest{CategoryID: intPtr(1)})

	require.NoError(t, err)
	assert.Equal(t, "[ID: 1] - Vehicle", resp.CategoryLabel)
	require.Len(t, resp.Matches, 1)
	assert.Len(t, resp.Matches[0].Products, 2)
}

func TestSearch_CategoriaInexistente(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.Search(f.ctx, dto.SearchRequest{CategoryID: intPtr(999)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Details
// ──────────────────────────────────────────────────────────────────────────────

// El detalle exige company_view: el rol user global no alcanza.
func TestDetails_SinPermiso(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.Details(f.ctx, "TEST001")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestDetails(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.manager)
	uc := usecase.NewInventoryUseCase()

	raw, err := uc.Details(f.ctx, "TEST001")
	require.NoError(t, err)

	var details map[string]any
	require.NoError(t, json.Unmarshal(raw, &details))
	assert.Equal(t, "TEST001", details["uuid"])
	assert.Equal(t, "Test Boat", details["name"])
	assert.Equal(t, "Fiberglass", details["material"])
	assert.NotContains(t, details, "category", "el detalle expone solo atributos escalares")
	assert.NotContains(t, details, "produced_date")
}

func TestDetails_SKUAusente(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.manager)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.Details(f.ctx, "TEST999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SinPermisoDeEdicion(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	f.ctx.SetCompany(f.company)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.Update(f.ctx, dto.UpdateProductRequest{
		SKU: "TEST001", Payload: `{"price": 1}`,
	}, confirmYes)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.manager)
	f.ctx.SetCompany(f.company)
	uc := usecase.NewInventoryUseCase()

	updated, err := uc.Update(f.ctx, dto.UpdateProductRequest{
		SKU: "TEST001", Payload: `{"price": 12500.50, "name": "Updated Boat"}`,
	}, confirmYes)

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "12500.5", f.boat.Price.String())
	assert.Equal(t, "Updated Boat", f.boat.Name)
}

func TestUpdate_Cancelado(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.manager)
	f.ctx.SetCompany(f.company)
	uc := usecase.NewInventoryUseCase()

	updated, err := uc.Update(f.ctx, dto.UpdateProductRequest{
		SKU: "TEST001", Payload: `{"name": "x"}`,
	}, confirmNo)

	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, "Test Boat", f.boat.Name, "cancelar no debe mutar el producto")
}

func TestUpdate_JSONMalformado(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.manager)
	f.ctx.SetCompany(f.company)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.Update(f.ctx, dto.UpdateProductRequest{
		SKU: "TEST001", Payload: `{no es json}`,
	}, confirmYes)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_CampoDesconocido(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.manager)
	f.ctx.SetCompany(f.company)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.Update(f.ctx, dto.UpdateProductRequest{
		SKU: "TEST001", Payload: `{"name": "x", "warp_drive": true}`,
	}, confirmYes)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Test Boat", f.boat.Name, "un campo desconocido no debe dejar mutación parcial")
}

func TestUpdate_ProductoAusente(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.manager)
	f.ctx.SetCompany(f.company)
	uc := usecase.NewInventoryUseCase()

	_, err := uc.Update(f.ctx, dto.UpdateProductRequest{
		SKU: "TEST999", Payload: `{"name": "x"}`,
	}, confirmYes)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categories
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories(t *testing.T) {
	f := newFixture(t)
	f.ctx.SetUser(f.user)
	uc := usecase.NewInventoryUseCase()

	categories, err := uc.Categories(f.ctx)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 1, categories[0].ID)
	assert.Equal(t, "[ID: 1] - Vehicle", categories[0].Label)
}
