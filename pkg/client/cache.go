package client

import (
	"strings"
	"sync"
)

// Claves de caché: la ruta lógica del recurso.
const (
	KeyUsers     = "/api/users"
	KeyProducts  = "/api/products"
	KeyPicos     = "/api/picos"
	KeyStock     = "/api/paletizado-stock"
	KeyDashboard = "/api/dashboard/stats"
	KeyActivity  = "/api/activity-logs"
	KeyMe        = "/api/auth/user"
)

// QueryCache resultados decodificados por clave de recurso.
type QueryCache struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewQueryCache crea una caché vacía.
func NewQueryCache() *QueryCache {
	return &QueryCache{items: make(map[string]any)}
}

// Get devuelve el valor guardado bajo key.
func (q *QueryCache) Get(key string) (any, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	v, ok := q.items[key]
	return v, ok
}

// Set guarda v bajo key.
func (q *QueryCache) Set(key string, v any) {
	q.mu.Lock()
	q.items[key] = v
	q.mu.Unlock()
}

// Invalidate elimina las claves dadas y todas las que empiecen por ellas
// (invalidar "/api/activity-logs" elimina también "/api/activity-logs?type=saida").
func (q *QueryCache) Invalidate(keys ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for k := range q.items {
		for _, prefix := range keys {
			if k == prefix || strings.HasPrefix(k, prefix+"?") || strings.HasPrefix(k, prefix+"/") {
				delete(q.items, k)
				break
			}
		}
	}
}

// Clear vacía la caché.
func (q *QueryCache) Clear() {
	q.mu.Lock()
	q.items = make(map[string]any)
	q.mu.Unlock()
}

// Len número de entradas.
func (q *QueryCache) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.items)
}
