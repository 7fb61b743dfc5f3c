package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// PicoRepository define el puerto de persistencia para picos.
type PicoRepository interface {
	Create(ctx context.Context, pico *entity.Pico) error
	GetByID(ctx context.Context, id string) (*entity.Pico, error)
	GetWithProduct(ctx context.Context, id string) (*entity.PicoWithProduct, error)
	Update(ctx context.Context, pico *entity.Pico) error
	Delete(ctx context.Context, id string) error
	ListWithProduct(ctx context.Context) ([]*entity.PicoWithProduct, error)
}
