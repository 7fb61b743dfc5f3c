package entity

import "time"

// Categorías de rotación del producto. Se fija al crear el producto.
const (
	CategoryAltaRotacao  = "alta_rotacao"
	CategoryBaixaRotacao = "baixa_rotacao"
)

// Product representa un producto del catálogo.
type Product struct {
	ID            string
	Code          string // código único
	Description   string
	QuantityBases int
	UnitsPerBase  int
	Category      string // alta_rotacao, baixa_rotacao
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
