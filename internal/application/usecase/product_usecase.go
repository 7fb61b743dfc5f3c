package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// ProductSearchLimit máximo de resultados de /api/products/search.
const ProductSearchLimit = 10

// ProductUseCase casos de uso CRUD para productos. La categoría se fija al crear.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log.Named("products")}
}

// Create crea un nuevo producto. Devuelve ErrDuplicate si el código ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          code,
		Description:   strings.TrimSpace(in.Description),
		QuantityBases: in.QuantityBases,
		UnitsPerBase:  in.UnitsPerBase,
		Category:      in.Category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("code", product.Code).Str("category", product.Category).Msg("producto creado")
	return dto.FromProduct(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return dto.FromProduct(product), nil
}

// Update actualiza un producto. Category solo se acepta si coincide con la actual.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Category != nil && *in.Category != product.Category {
		return nil, domain.ErrCategoryImmutable
	}
	if in.Code != nil {
		code := strings.TrimSpace(*in.Code)
		if code != product.Code {
			other, err := uc.repo.GetByCode(ctx, code)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != product.ID {
				return nil, domain.ErrDuplicate
			}
			product.Code = code
		}
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.QuantityBases != nil {
		product.QuantityBases = *in.QuantityBases
	}
	if in.UnitsPerBase != nil {
		product.UnitsPerBase = *in.UnitsPerBase
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

// List lista todos los productos ordenados por código.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca productos por código o descripción. Una consulta vacía devuelve lista vacía.
func (uc *ProductUseCase) Search(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []dto.ProductResponse{}, nil
	}
	list, err := uc.repo.Search(ctx, query, ProductSearchLimit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Delete elimina un producto. ErrNotFound si no existe; ErrConflict si aún tiene stock.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Str("code", product.Code).Msg("producto eliminado")
	return nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *dto.FromProduct(p))
	}
	return out
}
