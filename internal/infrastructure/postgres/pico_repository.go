package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.PicoRepository = (*PicoRepo)(nil)

const picoWithProductSelect = `
	SELECT pc.id, pc.product_id, pc.bases, pc.loose_units, pc.total_units, pc.tower_location,
		pc.created_at, pc.updated_at,
		p.id, p.code, p.description, p.quantity_bases, p.units_per_base, p.category, p.created_at, p.updated_at
	FROM picos pc
	JOIN products p ON p.id = pc.product_id`

// PicoRepo implementación del puerto PicoRepository sobre PostgreSQL (usable con pool o tx).
type PicoRepo struct {
	q Querier
}

// NewPicoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPicoRepository(q Querier) *PicoRepo {
	return &PicoRepo{q: q}
}

func scanPicoWithProduct(row pgx.Row) (*entity.PicoWithProduct, error) {
	var pw entity.PicoWithProduct
	err := row.Scan(
		&pw.ID, &pw.ProductID, &pw.Bases, &pw.LooseUnits, &pw.TotalUnits, &pw.TowerLocation,
		&pw.CreatedAt, &pw.UpdatedAt,
		&pw.Product.ID, &pw.Product.Code, &pw.Product.Description, &pw.Product.QuantityBases,
		&pw.Product.UnitsPerBase, &pw.Product.Category, &pw.Product.CreatedAt, &pw.Product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pw, nil
}

// Create persiste un pico. Un producto inexistente devuelve ErrProductNotFound.
func (r *PicoRepo) Create(ctx context.Context, pico *entity.Pico) error {
	query := `
		INSERT INTO picos (id, product_id, bases, loose_units, total_units, tower_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		pico.ID, pico.ProductID, pico.Bases, pico.LooseUnits, pico.TotalUnits, pico.TowerLocation,
		pico.CreatedAt, pico.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("insert pico: %w", err)
	}
	return nil
}

// GetByID obtiene un pico por ID.
func (r *PicoRepo) GetByID(ctx context.Context, id string) (*entity.Pico, error) {
	query := `
		SELECT id, product_id, bases, loose_units, total_units, tower_location, created_at, updated_at
		FROM picos WHERE id = $1`
	var p entity.Pico
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProductID, &p.Bases, &p.LooseUnits, &p.TotalUnits, &p.TowerLocation, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pico: %w", err)
	}
	return &p, nil
}

// GetWithProduct obtiene un pico junto con su producto.
func (r *PicoRepo) GetWithProduct(ctx context.Context, id string) (*entity.PicoWithProduct, error) {
	pw, err := scanPicoWithProduct(r.q.QueryRow(ctx, picoWithProductSelect+` WHERE pc.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pico with product: %w", err)
	}
	return pw, nil
}

// Update actualiza un pico existente.
func (r *PicoRepo) Update(ctx context.Context, pico *entity.Pico) error {
	query := `
		UPDATE picos SET product_id = $2, bases = $3, loose_units = $4, total_units = $5,
			tower_location = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		pico.ID, pico.ProductID, pico.Bases, pico.LooseUnits, pico.TotalUnits, pico.TowerLocation, pico.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update pico: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pico por ID.
func (r *PicoRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM picos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pico: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithProduct lista todos los picos con su producto, por torre y código.
func (r *PicoRepo) ListWithProduct(ctx context.Context) ([]*entity.PicoWithProduct, error) {
	rows, err := r.q.Query(ctx, picoWithProductSelect+` ORDER BY pc.tower_location, p.code, pc.created_at`)
	if err != nil {
		return nil, fmt.Errorf("list picos: %w", err)
	}
	defer rows.Close()
	var list []*entity.PicoWithProduct
	for rows.Next() {
		pw, err := scanPicoWithProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pico: %w", err)
		}
		list = append(list, pw)
	}
	return list, rows.Err()
}
