package dto

// ProductLine una línea de producto en listados de inventario.
type ProductLine struct {
	SKU          string
	Name         string
	Description  string
	CategoryName string
	Price        string // decimal formateado
}

// InventoryView un inventario con sus productos en orden de inserción.
type InventoryView struct {
	Description string
	Products    []ProductLine
}

// SearchRequest filtros de búsqueda: SKU exacto o id de categoría.
// Al menos uno debe venir.
type SearchRequest struct {
	SKU        string
	CategoryID *int
}

// SearchResponse resultado de búsqueda con la categoría resuelta (si se
// buscó por categoría) y los inventarios con coincidencias.
type SearchResponse struct {
	CategoryLabel string
	Matches       []InventoryView
}

// UpdateProductRequest actualización de producto: SKU destino y payload JSON
// con pares campo→valor.
type UpdateProductRequest struct {
	SKU     string `validate:"required"`
	Payload string `validate:"required"`
}

// CategoryResponse categoría para listados ("[ID: n] - nombre").
type CategoryResponse struct {
	ID    int
	Label string
}
