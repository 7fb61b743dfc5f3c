package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// PaletizadoUseCase gestiona el stock de pallets completos (una fila por producto).
type PaletizadoUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	stockRepo   repository.PaletizadoStockRepository
	log         *logger.Logger
}

// NewPaletizadoUseCase construye el caso de uso.
func NewPaletizadoUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	stockRepo repository.PaletizadoStockRepository,
	log *logger.Logger,
) *PaletizadoUseCase {
	return &PaletizadoUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		log:         log.Named("paletizados"),
	}
}

// Create suma la cantidad al stock del producto (o crea la fila si no existe) con un upsert
// atómico, y registra la entrada en la misma transacción.
func (uc *PaletizadoUseCase) Create(ctx context.Context, in dto.CreatePaletizadoRequest) (*dto.PaletizadoStockResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByCode(ctx, in.ProductCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	var stock *entity.PaletizadoStock
	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		s, err := repos.Stock.AddQuantity(ctx, product.ID, in.Quantity)
		if err != nil {
			return err
		}
		entry := entity.NewActivityLog(entity.ActivityEntrada, entity.ItemTypePaletizado, product, in.Quantity, time.Now())
		if err := repos.Activity.Create(ctx, entry); err != nil {
			return fmt.Errorf("registrar entrada: %w", err)
		}
		stock = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_code", product.Code).
		Int("added", in.Quantity).
		Int("quantity", stock.Quantity).
		Msg("stock paletizado incrementado")
	return dto.FromPaletizado(stock, product), nil
}

// GetByID obtiene el stock con su producto. Devuelve nil, nil si no existe.
func (uc *PaletizadoUseCase) GetByID(ctx context.Context, id string) (*dto.PaletizadoStockResponse, error) {
	s, err := uc.stockRepo.GetWithProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return dto.FromPaletizado(&s.PaletizadoStock, &s.Product), nil
}

// List lista todo el stock paletizado con su producto.
func (uc *PaletizadoUseCase) List(ctx context.Context) ([]dto.PaletizadoStockResponse, error) {
	list, err := uc.stockRepo.ListWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaletizadoStockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *dto.FromPaletizado(&s.PaletizadoStock, &s.Product))
	}
	return out, nil
}

// Update fija la cantidad de una fila existente.
func (uc *PaletizadoUseCase) Update(ctx context.Context, id string, in dto.UpdatePaletizadoRequest) (*dto.PaletizadoStockResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
	}
	current, err := uc.stockRepo.GetWithProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	stock := current.PaletizadoStock
	stock.Quantity = in.Quantity
	stock.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(ctx, &stock); err != nil {
		return nil, err
	}
	return dto.FromPaletizado(&stock, &current.Product), nil
}

// Delete elimina la fila de stock y registra la salida de la cantidad que tenía.
func (uc *PaletizadoUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		s, err := repos.Stock.GetWithProduct(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if err := repos.Stock.Delete(ctx, id); err != nil {
			return err
		}
		exit := entity.NewActivityLog(entity.ActivitySaida, entity.ItemTypePaletizado, &s.Product, s.Quantity, time.Now())
		if err := repos.Activity.Create(ctx, exit); err != nil {
			return fmt.Errorf("registrar salida: %w", err)
		}
		return nil
	})
}
