// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Se usa con STORAGE_DRIVER=memory y en los tests de la capa HTTP.
//
// Emula las restricciones del esquema PostgreSQL (username y code únicos, una fila de
// stock paletizado por producto, FK con ON DELETE RESTRICT). Las escrituras se serializan;
// TxRunner.Run toma una instantánea del estado y la restaura si fn devuelve error.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

type state struct {
	users    map[string]entity.User
	products map[string]entity.Product
	picos    map[string]entity.Pico
	stock    map[string]entity.PaletizadoStock
	logs     []entity.ActivityLog
}

func newState() state {
	return state{
		users:    map[string]entity.User{},
		products: map[string]entity.Product{},
		picos:    map[string]entity.Pico{},
		stock:    map[string]entity.PaletizadoStock{},
	}
}

func (st state) clone() state {
	c := state{
		users:    make(map[string]entity.User, len(st.users)),
		products: make(map[string]entity.Product, len(st.products)),
		picos:    make(map[string]entity.Pico, len(st.picos)),
		stock:    make(map[string]entity.PaletizadoStock, len(st.stock)),
		logs:     make([]entity.ActivityLog, len(st.logs)),
	}
	for k, v := range st.users {
		c.users[k] = v
	}
	for k, v := range st.products {
		c.products[k] = v
	}
	for k, v := range st.picos {
		c.picos[k] = v
	}
	for k, v := range st.stock {
		c.stock[k] = v
	}
	copy(c.logs, st.logs)
	return c
}

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	writeMu sync.Mutex   // serializa escrituras y transacciones
	mu      sync.RWMutex // protege st
	st      state
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// handle vista del store usada por los repositorios. inTx indica que writeMu ya está tomado.
type handle struct {
	s    *Store
	inTx bool
}

func (h handle) write(fn func(st *state) error) error {
	if !h.inTx {
		h.s.writeMu.Lock()
		defer h.s.writeMu.Unlock()
	}
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return fn(&h.s.st)
}

func (h handle) read(fn func(st *state)) {
	h.s.mu.RLock()
	defer h.s.mu.RUnlock()
	fn(&h.s.st)
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &UserRepo{h: handle{s: s}} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() repository.ProductRepository { return &ProductRepo{h: handle{s: s}} }

// Picos devuelve el repositorio de picos.
func (s *Store) Picos() repository.PicoRepository { return &PicoRepo{h: handle{s: s}} }

// Stock devuelve el repositorio de stock paletizado.
func (s *Store) Stock() repository.PaletizadoStockRepository {
	return &PaletizadoStockRepo{h: handle{s: s}}
}

// Activity devuelve el repositorio del log de actividad.
func (s *Store) Activity() repository.ActivityLogRepository { return &ActivityLogRepo{h: handle{s: s}} }

// Dashboard devuelve el repositorio de agregados del dashboard.
func (s *Store) Dashboard() repository.DashboardRepository { return &DashboardRepo{h: handle{s: s}} }

var _ inventory.TxRunner = (*Store)(nil)

// Run ejecuta fn con repositorios transaccionales. Si fn falla el estado vuelve a la instantánea.
func (s *Store) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()

	h := handle{s: s, inTx: true}
	err := fn(inventory.TxRepos{
		Products: &ProductRepo{h: h},
		Picos:    &PicoRepo{h: h},
		Stock:    &PaletizadoStockRepo{h: h},
		Activity: &ActivityLogRepo{h: h},
	})
	if err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}
