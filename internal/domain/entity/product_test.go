package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nautica-cli/internal/domain"
	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// buildChain arma la cadena Vehicle(1) ← WaterVehicle(100) ← Yacht(1000)
// más la categoría hermana Parts(2).
func buildChain() (vehicle, water, yacht, parts *entity.Category) {
	vehicle = entity.NewCategory(1, "Vehicle", "All kind of vehicles")
	water = entity.NewSubCategory(100, "Water Vehicle", "Boats, yachts, etc", vehicle)
	yacht = entity.NewSubCategory(1000, "Yacht", "Luxury yachts", water)
	parts = entity.NewCategory(2, "Parts", "Parts for vehicles")
	return
}

func newTestYacht(category *entity.Category) *entity.Product {
	return entity.NewYacht("SKU001", "Yacht X", "Luxury yacht",
		decimal.NewFromInt(700000), testDate, true, category,
		entity.YachtSpecs{LOAM: 14.5, BeamM: 4.8, DraftM: 2.0, Berths: 8, EngineType: "Diesel", PowerHP: 800})
}

// ──────────────────────────────────────────────────────────────────────────────
// Cierre de categorías
// ──────────────────────────────────────────────────────────────────────────────

// El cierre contiene la categoría propia y todos los ancestros de la cadena,
// y nada fuera de ella.
func TestClosure_CadenaCompleta(t *testing.T) {
	vehicle, water, yacht, parts := buildChain()
	product := newTestYacht(yacht)

	assert.True(t, product.HasCategory(yacht), "la categoría propia debe estar en el cierre")
	assert.True(t, product.HasCategory(water), "el padre debe estar en el cierre")
	assert.True(t, product.HasCategory(vehicle), "la raíz debe estar en el cierre")
	assert.False(t, product.HasCategory(parts), "una categoría hermana no debe estar en el cierre")
	assert.Equal(t, []int{1, 100, 1000}, product.CategoryIDs())
}

// Producto sin categoría: cierre vacío, HasCategory siempre false.
func TestClosure_SinCategoria(t *testing.T) {
	vehicle, _, _, parts := buildChain()
	product := entity.NewProduct("SKU010", "NavPro 5000", "Navigation system",
		decimal.NewFromInt(3500), testDate, true, nil)

	assert.False(t, product.HasCategory(vehicle))
	assert.False(t, product.HasCategory(parts))
	assert.Empty(t, product.CategoryIDs())
}

// Un árbol cíclico (c0.Parent = c1, c1.Parent = c0) no debe colgar la
// construcción; el cierre resulta exactamente {c0, c1}.
func TestClosure_ArbolCiclico(t *testing.T) {
	c0 := entity.NewCategory(10, "A", "")
	c1 := entity.NewSubCategory(20, "B", "", c0)
	c0.Parent = c1

	done := make(chan *entity.Product, 1)
	go func() {
		done <- entity.NewProduct("SKU-C", "Cyclic", "", decimal.Zero, testDate, false, c0)
	}()
	select {
	case product := <-done:
		assert.Equal(t, []int{10, 20}, product.CategoryIDs(),
			"el cierre cíclico debe contener exactamente ambos ids")
	case <-time.After(2 * time.Second):
		t.Fatal("la construcción con árbol cíclico no terminó")
	}
}

// El cierre es inmutable tras la construcción: mutar el padre de una
// categoría no cambia la pertenencia de productos ya construidos.
func TestClosure_InmutableTrasConstruccion(t *testing.T) {
	vehicle, water, yacht, _ := buildChain()
	product := newTestYacht(yacht)

	water.Parent = nil // se desengancha la cadena después de construir

	assert.True(t, product.HasCategory(vehicle),
		"el cierre cacheado no debe ver la mutación del árbol")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtrado por categoría
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: buscar por la categoría amplia devuelve el
// producto; una hermana no relacionada devuelve vacío. El orden de entrada
// se preserva.
func TestFilterProducts_PorAncestro(t *testing.T) {
	vehicle, _, yacht, parts := buildChain()
	yacht1 := newTestYacht(yacht)
	nav := entity.NewProduct("SKU010", "NavPro", "", decimal.NewFromInt(3500), testDate, true, nil)
	candidates := []*entity.Product{nav, yacht1}

	require.Equal(t, []*entity.Product{yacht1}, vehicle.FilterProducts(candidates))
	assert.Empty(t, parts.FilterProducts(candidates))
}

func TestFilterProducts_PreservaOrden(t *testing.T) {
	_, _, yacht, _ := buildChain()
	p1 := entity.NewProduct("A", "a", "", decimal.Zero, testDate, false, yacht)
	p2 := entity.NewProduct("B", "b", "", decimal.Zero, testDate, false, yacht)
	p3 := entity.NewProduct("C", "c", "", decimal.Zero, testDate, false, yacht)

	assert.Equal(t, []*entity.Product{p1, p2, p3},
		yacht.FilterProducts([]*entity.Product{p1, p2, p3}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de detalle
// ──────────────────────────────────────────────────────────────────────────────

// La vista de detalle emite solo escalares: ni la referencia a categoría ni
// la fecha de producción aparecen.
func TestDetails_SoloEscalares(t *testing.T) {
	_, _, yacht, _ := buildChain()
	product := newTestYacht(yacht)

	details := product.Details()
	assert.Equal(t, "SKU001", details["uuid"])
	assert.Equal(t, "Yacht X", details["name"])
	assert.Equal(t, float64(700000), details["price"])
	assert.Equal(t, true, details["is_new"])
	assert.Equal(t, 14.5, details["loa_m"])
	assert.NotContains(t, details, "category")
	assert.NotContains(t, details, "produced_date")

	raw, err := product.DetailsJSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "category")
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización por nombre de campo
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_CamposConocidos(t *testing.T) {
	_, _, yacht, _ := buildChain()
	product := newTestYacht(yacht)

	err := product.Apply(map[string]any{
		"name":        "Yacht Z",
		"price":       json.Number("650000.50"),
		"is_new":      false,
		"engine_type": "Electric",
	})
	require.NoError(t, err)
	assert.Equal(t, "Yacht Z", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("650000.50")))
	assert.False(t, product.IsNew)
	assert.Equal(t, "Electric", product.Specs["engine_type"])
}

// Un campo desconocido rechaza el payload completo: ninguna mutación
// parcial, ni siquiera de los campos válidos del mismo payload.
func TestApply_CampoDesconocidoSinMutacionParcial(t *testing.T) {
	_, _, yacht, _ := buildChain()
	product := newTestYacht(yacht)

	err := product.Apply(map[string]any{
		"name":     "No debe aplicarse",
		"fuel_type": "Diesel", // clave de motor, no existe en un yate
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Yacht X", product.Name, "el campo válido del payload rechazado no debe aplicarse")
}

func TestApply_TipoIncompatible(t *testing.T) {
	_, _, yacht, _ := buildChain()
	product := newTestYacht(yacht)

	err := product.Apply(map[string]any{"price": "no-numerico"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	err = product.Apply(map[string]any{"is_new": "yes"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
