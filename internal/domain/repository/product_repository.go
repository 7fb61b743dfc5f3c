package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	// Search busca por código o descripción (subcadena, sin distinguir mayúsculas).
	// Las coincidencias exactas de código van primero.
	Search(ctx context.Context, query string, limit int) ([]*entity.Product, error)
	// Delete devuelve domain.ErrConflict si el producto aún tiene picos o stock.
	Delete(ctx context.Context, id string) error
}
