package dto

import (
	"strings"
	"time"
)

// CreatePicoRequest body para POST /api/picos.
type CreatePicoRequest struct {
	ProductCode   string `json:"productCode" validate:"required,notblank"`
	Bases         int    `json:"bases" validate:"min=0,max=100000"`
	LooseUnits    int    `json:"looseUnits" validate:"min=0,max=100000"`
	TowerLocation string `json:"towerLocation" validate:"required,tower"`
}

// Normalize recorta espacios de los campos de texto.
func (r *CreatePicoRequest) Normalize() {
	r.ProductCode = strings.TrimSpace(r.ProductCode)
	r.TowerLocation = strings.TrimSpace(r.TowerLocation)
}

// UpdatePicoRequest body para PUT /api/picos/:id (parcial). TotalUnits se recalcula siempre.
type UpdatePicoRequest struct {
	ProductCode   *string `json:"productCode" validate:"omitempty,notblank"`
	Bases         *int    `json:"bases" validate:"omitempty,min=0,max=100000"`
	LooseUnits    *int    `json:"looseUnits" validate:"omitempty,min=0,max=100000"`
	TowerLocation *string `json:"towerLocation" validate:"omitempty,tower"`
}

// Normalize recorta espacios de los campos de texto enviados.
func (r *UpdatePicoRequest) Normalize() {
	trimPtr(r.ProductCode)
	trimPtr(r.TowerLocation)
}

// PicoResponse salida de un pico con su producto.
type PicoResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"productId"`
	Bases         int              `json:"bases"`
	LooseUnits    int              `json:"looseUnits"`
	TotalUnits    int              `json:"totalUnits"`
	TowerLocation string           `json:"towerLocation"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	Product       *ProductResponse `json:"product,omitempty"`
}

// CreatePaletizadoRequest body para POST /api/paletizado-stock.
// Si el producto ya tiene stock, la cantidad se suma a la existente.
type CreatePaletizadoRequest struct {
	ProductCode string `json:"productCode" validate:"required,notblank"`
	Quantity    int    `json:"quantity" validate:"required,gt=0,max=100000"`
}

// Normalize recorta espacios del código de producto.
func (r *CreatePaletizadoRequest) Normalize() {
	r.ProductCode = strings.TrimSpace(r.ProductCode)
}

// UpdatePaletizadoRequest body para PUT /api/paletizado-stock/:id (fija la cantidad).
type UpdatePaletizadoRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0,max=100000"`
}

// PaletizadoStockResponse salida de stock paletizado con su producto.
type PaletizadoStockResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// ActivityLogResponse salida de un registro de actividad.
type ActivityLogResponse struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	ProductCode        string    `json:"productCode"`
	ProductDescription string    `json:"productDescription"`
	Quantity           int       `json:"quantity"`
	Category           string    `json:"category"`
	ItemType           string    `json:"itemType"`
	CreatedAt          time.Time `json:"createdAt"`
}
