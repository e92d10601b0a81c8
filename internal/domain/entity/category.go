package entity

import "fmt"

// CategoryRef expone la identidad mínima de una categoría para la prueba de
// pertenencia. Category lo implementa; cualquier otro proveedor con un id
// entero también sirve.
type CategoryRef interface {
	CategoryID() int
}

// Categorised es la capacidad de responder si un ítem pertenece a una
// categoría. Product lo implementa mediante su cierre de ancestros.
type Categorised interface {
	HasCategory(ref CategoryRef) bool
}

// Category es un nodo de un árbol enlazado por padre. CatID debe ser único
// (no se exige). Un árbol mal configurado puede ser cíclico; el cierre de
// los productos lo tolera sin colgarse.
type Category struct {
	CatID       int
	Name        string
	Description string
	Parent      *Category
}

// NewCategory construye una categoría raíz (sin padre).
func NewCategory(id int, name, description string) *Category {
	return &Category{CatID: id, Name: name, Description: description}
}

// NewSubCategory construye una categoría con padre.
func NewSubCategory(id int, name, description string, parent *Category) *Category {
	return &Category{CatID: id, Name: name, Description: description, Parent: parent}
}

// CategoryID implementa CategoryRef.
func (c *Category) CategoryID() int {
	return c.CatID
}

// FilterProducts devuelve la subsecuencia de candidates cuyo cierre contiene
// esta categoría, preservando el orden de entrada. Una búsqueda por una
// categoría amplia ("Vehicle") devuelve todos los productos cuya cadena de
// categorías pasa por ella.
func (c *Category) FilterProducts(candidates []*Product) []*Product {
	var matched []*Product
	for _, p := range candidates {
		if p.HasCategory(c) {
			matched = append(matched, p)
		}
	}
	return matched
}

// String devuelve la representación "[ID: n] - nombre" usada en listados.
func (c *Category) String() string {
	return fmt.Sprintf("[ID: %d] - %s", c.CatID, c.Name)
}
