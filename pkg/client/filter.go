package client

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/pkg/textnorm"
)

var (
	// ErrPasswordMismatch nueva contraseña y confirmación distintas.
	ErrPasswordMismatch = errors.New("las contraseñas no coinciden")
	// ErrProductNotFound ningún producto coincide con lo escrito.
	ErrProductNotFound = errors.New("producto no encontrado")
	// ErrAmbiguousProduct varios productos coinciden y ninguno por código exacto.
	ErrAmbiguousProduct = errors.New("varios productos coinciden, especifique el código")
)

func matchProduct(p *dto.ProductResponse, query, category string) bool {
	if p == nil {
		return query == "" && category == ""
	}
	if category != "" && p.Category != category {
		return false
	}
	return textnorm.Contains(p.Code, query) || textnorm.Contains(p.Description, query)
}

// FilterProducts filtra por código/descripción (sin acentos ni mayúsculas) y categoría opcional.
func FilterProducts(list []dto.ProductResponse, query, category string) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		if matchProduct(&list[i], query, category) {
			out = append(out, list[i])
		}
	}
	return out
}

// FilterPicos aplica el mismo filtro sobre el producto de cada pico.
func FilterPicos(list []dto.PicoResponse, query, category string) []dto.PicoResponse {
	out := make([]dto.PicoResponse, 0, len(list))
	for _, p := range list {
		if matchProduct(p.Product, query, category) {
			out = append(out, p)
		}
	}
	return out
}

// FilterStock aplica el mismo filtro sobre el producto de cada fila de stock.
func FilterStock(list []dto.PaletizadoStockResponse, query, category string) []dto.PaletizadoStockResponse {
	out := make([]dto.PaletizadoStockResponse, 0, len(list))
	for _, s := range list {
		if matchProduct(s.Product, query, category) {
			out = append(out, s)
		}
	}
	return out
}

// ResolveProduct resuelve lo escrito en el autocompletado a un único producto:
// código exacto, si no el único resultado de la búsqueda.
func (c *Client) ResolveProduct(ctx context.Context, input string) (*dto.ProductResponse, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrProductNotFound
	}
	hits, err := c.SearchProducts(ctx, input)
	if err != nil {
		return nil, err
	}
	for i := range hits {
		if strings.EqualFold(hits[i].Code, input) {
			return &hits[i], nil
		}
	}
	switch len(hits) {
	case 0:
		return nil, ErrProductNotFound
	case 1:
		return &hits[0], nil
	default:
		return nil, ErrAmbiguousProduct
	}
}
