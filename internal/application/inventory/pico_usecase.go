package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/logger"
	"github.com/jhoicas/Estoque-api/pkg/validator"
)

// PicoUseCase alta, modificación y baja de picos. Cada alta registra una "entrada"
// y cada baja una "saida" en el log de actividad, dentro de la misma transacción.
type PicoUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	picoRepo    repository.PicoRepository
	log         *logger.Logger
}

// NewPicoUseCase construye el caso de uso.
func NewPicoUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	picoRepo repository.PicoRepository,
	log *logger.Logger,
) *PicoUseCase {
	return &PicoUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		picoRepo:    picoRepo,
		log:         log.Named("picos"),
	}
}

// Create resuelve el producto por código, calcula TotalUnits, persiste el pico y registra la entrada.
func (uc *PicoUseCase) Create(ctx context.Context, in dto.CreatePicoRequest) (*dto.PicoResponse, error) {
	product, err := uc.productRepo.GetByCode(ctx, in.ProductCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	total, err := domaininv.TotalUnits(in.Bases, product.UnitsPerBase, in.LooseUnits)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pico := &entity.Pico{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Bases:         in.Bases,
		LooseUnits:    in.LooseUnits,
		TotalUnits:    total,
		TowerLocation: in.TowerLocation,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		if err := repos.Picos.Create(ctx, pico); err != nil {
			return err
		}
		entry := entity.NewActivityLog(entity.ActivityEntrada, entity.ItemTypePico, product, pico.TotalUnits, now)
		if err := repos.Activity.Create(ctx, entry); err != nil {
			return fmt.Errorf("registrar entrada: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("pico_id", pico.ID).
		Str("product_code", product.Code).
		Int("total_units", pico.TotalUnits).
		Str("tower", pico.TowerLocation).
		Msg("pico creado")
	return dto.FromPico(pico, product), nil
}

// GetByID obtiene un pico con su producto. Devuelve nil, nil si no existe.
func (uc *PicoUseCase) GetByID(ctx context.Context, id string) (*dto.PicoResponse, error) {
	p, err := uc.picoRepo.GetWithProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return dto.FromPico(&p.Pico, &p.Product), nil
}

// List lista todos los picos con su producto.
func (uc *PicoUseCase) List(ctx context.Context) ([]dto.PicoResponse, error) {
	list, err := uc.picoRepo.ListWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PicoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *dto.FromPico(&p.Pico, &p.Product))
	}
	return out, nil
}

// Update modifica un pico (parcial) y recalcula TotalUnits con el UnitsPerBase del producto vigente.
func (uc *PicoUseCase) Update(ctx context.Context, id string, in dto.UpdatePicoRequest) (*dto.PicoResponse, error) {
	pico, err := uc.picoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pico == nil {
		return nil, domain.ErrNotFound
	}

	var product *entity.Product
	if in.ProductCode != nil {
		product, err = uc.productRepo.GetByCode(ctx, *in.ProductCode)
	} else {
		product, err = uc.productRepo.GetByID(ctx, pico.ProductID)
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if in.TowerLocation != nil {
		if !validator.IsTowerLocation(*in.TowerLocation) {
			return nil, fmt.Errorf("%w: towerLocation debe tener exactamente dos dígitos", domain.ErrInvalidInput)
		}
		pico.TowerLocation = *in.TowerLocation
	}
	if in.Bases != nil {
		pico.Bases = *in.Bases
	}
	if in.LooseUnits != nil {
		pico.LooseUnits = *in.LooseUnits
	}
	total, err := domaininv.TotalUnits(pico.Bases, product.UnitsPerBase, pico.LooseUnits)
	if err != nil {
		return nil, err
	}
	pico.ProductID = product.ID
	pico.TotalUnits = total
	pico.UpdatedAt = time.Now()

	if err := uc.picoRepo.Update(ctx, pico); err != nil {
		return nil, err
	}
	return dto.FromPico(pico, product), nil
}

// Delete elimina el pico y registra la salida con las unidades que tenía.
func (uc *PicoUseCase) Delete(ctx context.Context, id string) error {
	var removed *entity.PicoWithProduct
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		p, err := repos.Picos.GetWithProduct(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := repos.Picos.Delete(ctx, id); err != nil {
			return err
		}
		exit := entity.NewActivityLog(entity.ActivitySaida, entity.ItemTypePico, &p.Product, p.TotalUnits, time.Now())
		if err := repos.Activity.Create(ctx, exit); err != nil {
			return fmt.Errorf("registrar salida: %w", err)
		}
		removed = p
		return nil
	})
	if err != nil {
		return err
	}

	uc.log.Info().
		Str("pico_id", id).
		Str("product_code", removed.Product.Code).
		Int("total_units", removed.TotalUnits).
		Msg("pico eliminado")
	return nil
}
