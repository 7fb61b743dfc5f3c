package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// PaletizadoStockRepository define el puerto de persistencia para stock paletizado.
// Hay como máximo una fila por producto (UNIQUE product_id).
type PaletizadoStockRepository interface {
	GetByID(ctx context.Context, id string) (*entity.PaletizadoStock, error)
	GetByProductID(ctx context.Context, productID string) (*entity.PaletizadoStock, error)
	GetWithProduct(ctx context.Context, id string) (*entity.PaletizadoStockWithProduct, error)
	// AddQuantity inserta la fila del producto o suma delta a la existente en una única
	// operación atómica, y devuelve la fila resultante.
	AddQuantity(ctx context.Context, productID string, delta int) (*entity.PaletizadoStock, error)
	Update(ctx context.Context, stock *entity.PaletizadoStock) error
	Delete(ctx context.Context, id string) error
	ListWithProduct(ctx context.Context) ([]*entity.PaletizadoStockWithProduct, error)
}
