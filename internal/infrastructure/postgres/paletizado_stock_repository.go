package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.PaletizadoStockRepository = (*PaletizadoStockRepo)(nil)

const stockColumns = `id, product_id, quantity, created_at, updated_at`

const stockWithProductSelect = `
	SELECT s.id, s.product_id, s.quantity, s.created_at, s.updated_at,
		p.id, p.code, p.description, p.quantity_bases, p.units_per_base, p.category, p.created_at, p.updated_at
	FROM paletizado_stock s
	JOIN products p ON p.id = s.product_id`

// PaletizadoStockRepo implementación del puerto PaletizadoStockRepository sobre PostgreSQL.
type PaletizadoStockRepo struct {
	q Querier
}

// NewPaletizadoStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaletizadoStockRepository(q Querier) *PaletizadoStockRepo {
	return &PaletizadoStockRepo{q: q}
}

func scanStock(row pgx.Row) (*entity.PaletizadoStock, error) {
	var s entity.PaletizadoStock
	if err := row.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanStockWithProduct(row pgx.Row) (*entity.PaletizadoStockWithProduct, error) {
	var sw entity.PaletizadoStockWithProduct
	err := row.Scan(
		&sw.ID, &sw.ProductID, &sw.Quantity, &sw.CreatedAt, &sw.UpdatedAt,
		&sw.Product.ID, &sw.Product.Code, &sw.Product.Description, &sw.Product.QuantityBases,
		&sw.Product.UnitsPerBase, &sw.Product.Category, &sw.Product.CreatedAt, &sw.Product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sw, nil
}

// GetByID obtiene una fila de stock por ID.
func (r *PaletizadoStockRepo) GetByID(ctx context.Context, id string) (*entity.PaletizadoStock, error) {
	s, err := scanStock(r.q.QueryRow(ctx, `SELECT `+stockColumns+` FROM paletizado_stock WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paletizado stock: %w", err)
	}
	return s, nil
}

// GetByProductID obtiene la fila de stock de un producto.
func (r *PaletizadoStockRepo) GetByProductID(ctx context.Context, productID string) (*entity.PaletizadoStock, error) {
	s, err := scanStock(r.q.QueryRow(ctx, `SELECT `+stockColumns+` FROM paletizado_stock WHERE product_id = $1`, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paletizado stock by product: %w", err)
	}
	return s, nil
}

// GetWithProduct obtiene una fila de stock junto con su producto.
func (r *PaletizadoStockRepo) GetWithProduct(ctx context.Context, id string) (*entity.PaletizadoStockWithProduct, error) {
	sw, err := scanStockWithProduct(r.q.QueryRow(ctx, stockWithProductSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paletizado stock with product: %w", err)
	}
	return sw, nil
}

// AddQuantity inserta o incrementa la fila del producto en una sola sentencia.
func (r *PaletizadoStockRepo) AddQuantity(ctx context.Context, productID string, delta int) (*entity.PaletizadoStock, error) {
	query := `
		INSERT INTO paletizado_stock (id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (product_id) DO UPDATE
			SET quantity = paletizado_stock.quantity + EXCLUDED.quantity,
				updated_at = now()
		RETURNING ` + stockColumns
	s, err := scanStock(r.q.QueryRow(ctx, query, uuid.New().String(), productID, delta))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrProductNotFound
		}
		if isCheckViolation(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("upsert paletizado stock: %w", err)
	}
	return s, nil
}

// Update fija la cantidad de una fila existente.
func (r *PaletizadoStockRepo) Update(ctx context.Context, stock *entity.PaletizadoStock) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE paletizado_stock SET quantity = $2, updated_at = $3 WHERE id = $1`,
		stock.ID, stock.Quantity, stock.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update paletizado stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una fila de stock por ID.
func (r *PaletizadoStockRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM paletizado_stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete paletizado stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithProduct lista todo el stock con su producto, por código.
func (r *PaletizadoStockRepo) ListWithProduct(ctx context.Context) ([]*entity.PaletizadoStockWithProduct, error) {
	rows, err := r.q.Query(ctx, stockWithProductSelect+` ORDER BY p.code`)
	if err != nil {
		return nil, fmt.Errorf("list paletizado stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaletizadoStockWithProduct
	for rows.Next() {
		sw, err := scanStockWithProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paletizado stock: %w", err)
		}
		list = append(list, sw)
	}
	return list, rows.Err()
}
