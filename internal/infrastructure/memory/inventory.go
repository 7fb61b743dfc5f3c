package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/validator"
)

var (
	_ repository.PicoRepository            = (*PicoRepo)(nil)
	_ repository.PaletizadoStockRepository = (*PaletizadoStockRepo)(nil)
)

// PicoRepo picos en memoria.
type PicoRepo struct {
	h handle
}

func checkPico(st *state, pico *entity.Pico) error {
	if _, ok := st.products[pico.ProductID]; !ok {
		return domain.ErrProductNotFound
	}
	if pico.Bases < 0 || pico.LooseUnits < 0 || !validator.IsTowerLocation(pico.TowerLocation) {
		return fmt.Errorf("%w: pico fuera de rango", domain.ErrInvalidInput)
	}
	return nil
}

func (r *PicoRepo) Create(_ context.Context, pico *entity.Pico) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.picos[pico.ID]; ok {
			return domain.ErrDuplicate
		}
		if err := checkPico(st, pico); err != nil {
			return err
		}
		st.picos[pico.ID] = *pico
		return nil
	})
}

func (r *PicoRepo) GetByID(_ context.Context, id string) (*entity.Pico, error) {
	var out *entity.Pico
	r.h.read(func(st *state) {
		if p, ok := st.picos[id]; ok {
			out = &p
		}
	})
	return out, nil
}

func (r *PicoRepo) GetWithProduct(_ context.Context, id string) (*entity.PicoWithProduct, error) {
	var out *entity.PicoWithProduct
	r.h.read(func(st *state) {
		if p, ok := st.picos[id]; ok {
			out = &entity.PicoWithProduct{Pico: p, Product: st.products[p.ProductID]}
		}
	})
	return out, nil
}

func (r *PicoRepo) Update(_ context.Context, pico *entity.Pico) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.picos[pico.ID]; !ok {
			return domain.ErrNotFound
		}
		if err := checkPico(st, pico); err != nil {
			return err
		}
		st.picos[pico.ID] = *pico
		return nil
	})
}

func (r *PicoRepo) Delete(_ context.Context, id string) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.picos[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.picos, id)
		return nil
	})
}

func (r *PicoRepo) ListWithProduct(_ context.Context) ([]*entity.PicoWithProduct, error) {
	var list []*entity.PicoWithProduct
	r.h.read(func(st *state) {
		for _, p := range st.picos {
			list = append(list, &entity.PicoWithProduct{Pico: p, Product: st.products[p.ProductID]})
		}
	})
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.TowerLocation != b.TowerLocation {
			return a.TowerLocation < b.TowerLocation
		}
		if a.Product.Code != b.Product.Code {
			return a.Product.Code < b.Product.Code
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return list, nil
}

// PaletizadoStockRepo stock paletizado en memoria; una fila por producto.
type PaletizadoStockRepo struct {
	h handle
}

func (r *PaletizadoStockRepo) GetByID(_ context.Context, id string) (*entity.PaletizadoStock, error) {
	var out *entity.PaletizadoStock
	r.h.read(func(st *state) {
		if s, ok := st.stock[id]; ok {
			out = &s
		}
	})
	return out, nil
}

func (r *PaletizadoStockRepo) GetByProductID(_ context.Context, productID string) (*entity.PaletizadoStock, error) {
	var out *entity.PaletizadoStock
	r.h.read(func(st *state) {
		for _, s := range st.stock {
			if s.ProductID == productID {
				out = &s
				return
			}
		}
	})
	return out, nil
}

func (r *PaletizadoStockRepo) GetWithProduct(_ context.Context, id string) (*entity.PaletizadoStockWithProduct, error) {
	var out *entity.PaletizadoStockWithProduct
	r.h.read(func(st *state) {
		if s, ok := st.stock[id]; ok {
			out = &entity.PaletizadoStockWithProduct{PaletizadoStock: s, Product: st.products[s.ProductID]}
		}
	})
	return out, nil
}

// AddQuantity suma delta a la fila del producto o la crea, bajo el mismo lock de escritura.
func (r *PaletizadoStockRepo) AddQuantity(_ context.Context, productID string, delta int) (*entity.PaletizadoStock, error) {
	var out entity.PaletizadoStock
	err := r.h.write(func(st *state) error {
		if _, ok := st.products[productID]; !ok {
			return domain.ErrProductNotFound
		}
		now := time.Now()
		for id, s := range st.stock {
			if s.ProductID == productID {
				if s.Quantity+delta <= 0 {
					return fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
				}
				s.Quantity += delta
				s.UpdatedAt = now
				st.stock[id] = s
				out = s
				return nil
			}
		}
		if delta <= 0 {
			return fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
		}
		out = entity.PaletizadoStock{
			ID:        uuid.New().String(),
			ProductID: productID,
			Quantity:  delta,
			CreatedAt: now,
			UpdatedAt: now,
		}
		st.stock[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PaletizadoStockRepo) Update(_ context.Context, stock *entity.PaletizadoStock) error {
	return r.h.write(func(st *state) error {
		current, ok := st.stock[stock.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if stock.Quantity <= 0 {
			return fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
		}
		current.Quantity = stock.Quantity
		current.UpdatedAt = stock.UpdatedAt
		st.stock[stock.ID] = current
		return nil
	})
}

func (r *PaletizadoStockRepo) Delete(_ context.Context, id string) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.stock[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.stock, id)
		return nil
	})
}

func (r *PaletizadoStockRepo) ListWithProduct(_ context.Context) ([]*entity.PaletizadoStockWithProduct, error) {
	var list []*entity.PaletizadoStockWithProduct
	r.h.read(func(st *state) {
		for _, s := range st.stock {
			list = append(list, &entity.PaletizadoStockWithProduct{PaletizadoStock: s, Product: st.products[s.ProductID]})
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Product.Code < list[j].Product.Code })
	return list, nil
}
