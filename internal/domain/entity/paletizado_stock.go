package entity

import "time"

// PaletizadoStock cantidad de pallets completos de un producto. Una fila por producto.
type PaletizadoStock struct {
	ID        string
	ProductID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaletizadoStockWithProduct stock junto con su producto (consulta con join).
type PaletizadoStockWithProduct struct {
	PaletizadoStock
	Product Product
}
