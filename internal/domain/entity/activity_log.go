package entity

import "time"

// Tipos de actividad.
const (
	ActivityEntrada = "entrada"
	ActivitySaida   = "saida"
)

// Tipos de ítem afectados por la actividad.
const (
	ItemTypePico       = "pico"
	ItemTypePaletizado = "paletizado"
)

// ActivityLog registro append-only de entradas y salidas. Guarda una copia del código,
// descripción y categoría del producto para sobrevivir a su modificación o borrado.
type ActivityLog struct {
	ID                 string
	Type               string // entrada, saida
	ProductCode        string
	ProductDescription string
	Quantity           int
	Category           string
	ItemType           string // pico, paletizado
	CreatedAt          time.Time
}

// NewActivityLog construye el registro a partir del producto afectado.
func NewActivityLog(activityType, itemType string, product *Product, quantity int, at time.Time) *ActivityLog {
	return &ActivityLog{
		Type:               activityType,
		ProductCode:        product.Code,
		ProductDescription: product.Description,
		Quantity:           quantity,
		Category:           product.Category,
		ItemType:           itemType,
		CreatedAt:          at,
	}
}
