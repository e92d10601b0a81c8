package entity

// Inventory es la colección ordenada de productos de una empresa.
// El orden de inserción es el orden de presentación.
type Inventory struct {
	Description string
	Products    []*Product
}

// NewInventory construye un inventario con sus productos iniciales.
func NewInventory(description string, products ...*Product) *Inventory {
	return &Inventory{Description: description, Products: products}
}

// Product busca por SKU con un barrido lineal; gana la primera coincidencia
// exacta (los SKU se asumen únicos por convención). Devuelve nil si no existe.
func (i *Inventory) Product(sku string) *Product {
	for _, p := range i.Products {
		if p.SKU == sku {
			return p
		}
	}
	return nil
}

// ProductsByCategory delega el filtrado en la categoría.
func (i *Inventory) ProductsByCategory(category *Category) []*Product {
	return category.FilterProducts(i.Products)
}
