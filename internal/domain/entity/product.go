package entity

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nautica-cli/internal/domain"
)

// ProductKind distingue los tipos de producto. Solo aportan atributos
// descriptivos adicionales, nunca comportamiento.
type ProductKind string

const (
	KindProduct ProductKind = "product"
	KindYacht   ProductKind = "yacht"
	KindBoat    ProductKind = "boat"
	KindMotor   ProductKind = "motor"
)

// Product es un ítem de inventario identificado por SKU. En la construcción
// calcula y cachea el cierre de ids de categoría (la propia más todos los
// ancestros alcanzables por Parent). El cierre es inmutable después: si el
// árbol de categorías se muta luego, los productos ya construidos no lo ven.
type Product struct {
	SKU          string
	Name         string
	Description  string
	Price        decimal.Decimal
	ProducedDate time.Time
	IsNew        bool
	Kind         ProductKind
	Category     *Category
	Specs        map[string]any // atributos escalares propios del tipo

	categoryIDs map[int]struct{}
}

// YachtSpecs atributos descriptivos de un yate.
type YachtSpecs struct {
	LOAM       float64
	BeamM      float64
	DraftM     float64
	Berths     int
	EngineType string
	PowerHP    int
}

// BoatSpecs atributos descriptivos de un bote.
type BoatSpecs struct {
	LengthM    float64
	BeamM      float64
	Material   string
	EngineType string
	PowerHP    int
}

// MotorSpecs atributos descriptivos de un motor.
type MotorSpecs struct {
	PowerHP  int
	FuelType string
	WeightKG float64
}

// NewProduct construye un producto genérico (sin atributos de tipo).
func NewProduct(sku, name, description string, price decimal.Decimal, produced time.Time, isNew bool, category *Category) *Product {
	return newProduct(KindProduct, sku, name, description, price, produced, isNew, category, nil)
}

// NewYacht construye un producto de tipo yate.
func NewYacht(sku, name, description string, price decimal.Decimal, produced time.Time, isNew bool, category *Category, specs YachtSpecs) *Product {
	return newProduct(KindYacht, sku, name, description, price, produced, isNew, category, map[string]any{
		"loa_m":       specs.LOAM,
		"beam_m":      specs.BeamM,
		"draft_m":     specs.DraftM,
		"berths_int":  specs.Berths,
		"engine_type": specs.EngineType,
		"power_hp":    specs.PowerHP,
	})
}

// NewBoat construye un producto de tipo bote.
func NewBoat(sku, name, description string, price decimal.Decimal, produced time.Time, isNew bool, category *Category, specs BoatSpecs) *Product {
	return newProduct(KindBoat, sku, name, description, price, produced, isNew, category, map[string]any{
		"length_m":    specs.LengthM,
		"beam_m":      specs.BeamM,
		"material":    specs.Material,
		"engine_type": specs.EngineType,
		"power_hp":    specs.PowerHP,
	})
}

// NewMotor construye un producto de tipo motor.
func NewMotor(sku, name, description string, price decimal.Decimal, produced time.Time, isNew bool, category *Category, specs MotorSpecs) *Product {
	return newProduct(KindMotor, sku, name, description, price, produced, isNew, category, map[string]any{
		"power_hp":  specs.PowerHP,
		"fuel_type": specs.FuelType,
		"weight_kg": specs.WeightKG,
	})
}

func newProduct(kind ProductKind, sku, name, description string, price decimal.Decimal, produced time.Time, isNew bool, category *Category, specs map[string]any) *Product {
	p := &Product{
		SKU:          sku,
		Name:         name,
		Description:  description,
		Price:        price,
		ProducedDate: produced,
		IsNew:        isNew,
		Kind:         kind,
		Category:     category,
		Specs:        specs,
	}
	p.categoryIDs = computeCategoryClosure(category)
	return p
}

// computeCategoryClosure recorre la cadena de padres acumulando ids.
// Guarda contra ciclos: inserta el id actual y avanza al padre; si el
// siguiente id ya está en el conjunto, se detiene sin volver a insertarlo.
// Un árbol cíclico degrada en silencio, nunca cuelga.
func computeCategoryClosure(category *Category) map[int]struct{} {
	ids := make(map[int]struct{})
	for category != nil {
		if _, seen := ids[category.CatID]; seen {
			break
		}
		ids[category.CatID] = struct{}{}
		category = category.Parent
	}
	return ids
}

// HasCategory indica si el cierre del producto contiene la categoría dada.
// Producto sin categoría: cierre vacío, siempre false.
func (p *Product) HasCategory(ref CategoryRef) bool {
	_, ok := p.categoryIDs[ref.CategoryID()]
	return ok
}

// CategoryIDs devuelve el cierre cacheado, ordenado, para persistencia.
func (p *Product) CategoryIDs() []int {
	ids := make([]int, 0, len(p.categoryIDs))
	for id := range p.categoryIDs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// RestoreCategoryIDs repone el cierre tal cual fue persistido. Solo para
// rehidratación desde el almacén: preserva un cierre obsoleto si el árbol
// cambió después de construir el producto.
func (p *Product) RestoreCategoryIDs(ids []int) {
	restored := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		restored[id] = struct{}{}
	}
	p.categoryIDs = restored
}

// Details devuelve la vista de detalle: solo atributos escalares
// (texto, entero, flotante, booleano). La referencia a categoría y la fecha
// de producción quedan fuera de esta representación.
func (p *Product) Details() map[string]any {
	details := map[string]any{
		"uuid":        p.SKU,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.InexactFloat64(),
		"is_new":      p.IsNew,
	}
	for k, v := range p.Specs {
		details[k] = v
	}
	return details
}

// DetailsJSON serializa la vista de detalle como JSON (claves ordenadas).
func (p *Product) DetailsJSON() ([]byte, error) {
	return json.Marshal(p.Details())
}

// Apply actualiza atributos por nombre de campo desde un mapa. El conjunto
// de campos actualizables es cerrado: los campos base name, description,
// price e is_new más las claves de Specs del tipo del producto. Un nombre
// desconocido o un valor de tipo incompatible devuelve ErrInvalidInput sin
// aplicar ninguna mutación parcial.
func (p *Product) Apply(changes map[string]any) error {
	setters := make([]func(), 0, len(changes))
	for key, value := range changes {
		key := key // capture per iteration for the setter closures (pre-Go 1.22 loop semantics)
		switch key {
		case "name":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: el campo %q requiere texto", domain.ErrInvalidInput, key)
			}
			setters = append(setters, func() { p.Name = s })
		case "description":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: el campo %q requiere texto", domain.ErrInvalidInput, key)
			}
			setters = append(setters, func() { p.Description = s })
		case "price":
			d, ok := toDecimal(value)
			if !ok {
				return fmt.Errorf("%w: el campo %q requiere un número", domain.ErrInvalidInput, key)
			}
			setters = append(setters, func() { p.Price = d })
		case "is_new":
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("%w: el campo %q requiere un booleano", domain.ErrInvalidInput, key)
			}
			setters = append(setters, func() { p.IsNew = b })
		default:
			if _, exists := p.Specs[key]; !exists {
				return fmt.Errorf("%w: campo desconocido %q", domain.ErrInvalidInput, key)
			}
			scalar, ok := normalizeScalar(value)
			if !ok {
				return fmt.Errorf("%w: el campo %q requiere un valor escalar", domain.ErrInvalidInput, key)
			}
			setters = append(setters, func() { p.Specs[key] = scalar })
		}
	}
	for _, set := range setters {
		set()
	}
	return nil
}

// toDecimal convierte los valores numéricos que puede producir un payload
// JSON (json.Number si el decoder usa UseNumber) a decimal.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case string:
		d, err := decimal.NewFromString(x)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

// normalizeScalar acepta solo escalares. json.Number se normaliza a int
// cuando es entero, a float64 en otro caso.
func normalizeScalar(v any) (any, bool) {
	switch x := v.(type) {
	case string, bool, float64, int, int64:
		return x, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i), true
		}
		if f, err := x.Float64(); err == nil {
			return f, true
		}
		return nil, false
	}
	return nil, false
}
