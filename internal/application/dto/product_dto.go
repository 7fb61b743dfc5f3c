package dto

import (
	"strings"
	"time"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code          string `json:"code" validate:"required,notblank,max=50"`
	Description   string `json:"description" validate:"required,notblank,max=255"`
	QuantityBases int    `json:"quantityBases" validate:"min=0,max=100000"`
	UnitsPerBase  int    `json:"unitsPerBase" validate:"required,gt=0,max=10000"`
	Category      string `json:"category" validate:"required,oneof=alta_rotacao baixa_rotacao"`
}

// Normalize recorta espacios de código y descripción.
func (r *CreateProductRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Description = strings.TrimSpace(r.Description)
}

// UpdateProductRequest actualización parcial. Category solo se acepta si no cambia.
type UpdateProductRequest struct {
	Code          *string `json:"code" validate:"omitempty,notblank,max=50"`
	Description   *string `json:"description" validate:"omitempty,notblank,max=255"`
	QuantityBases *int    `json:"quantityBases" validate:"omitempty,min=0,max=100000"`
	UnitsPerBase  *int    `json:"unitsPerBase" validate:"omitempty,gt=0,max=10000"`
	Category      *string `json:"category" validate:"omitempty,oneof=alta_rotacao baixa_rotacao"`
}

func (r *UpdateProductRequest) Normalize() {
	trimPtr(r.Code)
	trimPtr(r.Description)
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Description   string    `json:"description"`
	QuantityBases int       `json:"quantityBases"`
	UnitsPerBase  int       `json:"unitsPerBase"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
