package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	h handle
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, p := range st.products {
			if p.Code == product.Code {
				return domain.ErrDuplicate
			}
		}
		st.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	r.h.read(func(st *state) {
		if p, ok := st.products[id]; ok {
			out = &p
		}
	})
	return out, nil
}

func (r *ProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	var out *entity.Product
	r.h.read(func(st *state) {
		for _, p := range st.products {
			if p.Code == code {
				out = &p
				return
			}
		}
	})
	return out, nil
}

// Update reemplaza el producto conservando la categoría guardada.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.h.write(func(st *state) error {
		current, ok := st.products[product.ID]
		if !ok {
			return domain.ErrProductNotFound
		}
		for _, p := range st.products {
			if p.ID != product.ID && p.Code == product.Code {
				return domain.ErrDuplicate
			}
		}
		updated := *product
		updated.Category = current.Category
		updated.CreatedAt = current.CreatedAt
		st.products[product.ID] = updated
		return nil
	})
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	r.h.read(func(st *state) {
		for _, p := range st.products {
			list = append(list, &p)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

// Search coincide por subcadena sin distinguir mayúsculas, igual que ILIKE.
func (r *ProductRepo) Search(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	all, _ := r.List(ctx)
	q := strings.ToLower(query)
	var exact, rest []*entity.Product
	for _, p := range all {
		code := strings.ToLower(p.Code)
		switch {
		case code == q:
			exact = append(exact, p)
		case strings.Contains(code, q) || strings.Contains(strings.ToLower(p.Description), q):
			rest = append(rest, p)
		}
	}
	out := append(exact, rest...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete falla con ErrConflict si algún pico o fila de stock referencia el producto.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.products[id]; !ok {
			return domain.ErrProductNotFound
		}
		for _, p := range st.picos {
			if p.ProductID == id {
				return domain.ErrConflict
			}
		}
		for _, s := range st.stock {
			if s.ProductID == id {
				return domain.ErrConflict
			}
		}
		delete(st.products, id)
		return nil
	})
}
