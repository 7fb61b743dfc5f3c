package inventory

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Products repository.ProductRepository
	Picos    repository.PicoRepository
	Stock    repository.PaletizadoStockRepository
	Activity repository.ActivityLogRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el movimiento de stock y su registro de actividad se confirman juntos o no se confirman.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
