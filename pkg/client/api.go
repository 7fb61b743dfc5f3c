package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/pkg/validator"
)

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login abre sesión. La cookie queda en el jar del cliente y la caché se vacía.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	in := dto.LoginRequest{Username: username, Password: password}
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	var out dto.LoginResponse
	if err := c.Do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	c.cache.Clear()
	c.cache.Set(KeyMe, &out.User)
	return &out, nil
}

// Logout cierra la sesión y vacía la caché aunque la llamada falle.
func (c *Client) Logout(ctx context.Context) error {
	defer c.cache.Clear()
	return c.Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Me usuario de la sesión actual.
func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	return cachedGet[*dto.UserResponse](ctx, c, KeyMe)
}

// ChangePassword cambia la contraseña del usuario actual.
func (c *Client) ChangePassword(ctx context.Context, newPassword, confirm string) (*dto.UserResponse, error) {
	in := dto.ChangePasswordRequest{NewPassword: newPassword, ConfirmPassword: confirm}
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	if newPassword != confirm {
		return nil, ErrPasswordMismatch
	}
	var out dto.UserResponse
	if err := c.Do(ctx, http.MethodPost, "/api/auth/change-password", in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KeyUsers)
	c.cache.Set(KeyMe, &out)
	return &out, nil
}

// ── Users ─────────────────────────────────────────────────────────────────────

// ListUsers lista usuarios.
func (c *Client) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	return cachedGet[[]dto.UserResponse](ctx, c, KeyUsers)
}

// CreateUser crea un usuario (solo administrador).
func (c *Client) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	var out dto.UserResponse
	if err := c.Do(ctx, http.MethodPost, KeyUsers, in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KeyUsers)
	return &out, nil
}

// UpdateUser actualización parcial de un usuario.
func (c *Client) UpdateUser(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	var out dto.UserResponse
	if err := c.Do(ctx, http.MethodPut, KeyUsers+"/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KeyUsers, KeyMe)
	return &out, nil
}

// DeleteUser elimina un usuario.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.Do(ctx, http.MethodDelete, KeyUsers+"/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate(KeyUsers)
	return nil
}

// ── Products ──────────────────────────────────────────────────────────────────

// ListProducts lista productos.
func (c *Client) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	return cachedGet[[]dto.ProductResponse](ctx, c, KeyProducts)
}

// SearchProducts búsqueda en servidor (sin caché).
func (c *Client) SearchProducts(ctx context.Context, q string) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	err := c.Do(ctx, http.MethodGet, KeyProducts+"/search?q="+url.QueryEscape(q), nil, &out)
	return out, err
}

// CreateProduct crea un producto.
func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	var out dto.ProductResponse
	if err := c.Do(ctx, http.MethodPost, KeyProducts, in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KeyProducts, KeyDashboard)
	return &out, nil
}

// UpdateProduct actualiza un producto. Picos y stock embeben el producto, así que también se invalidan.
func (c *Client) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	var out dto.ProductResponse
	if err := c.Do(ctx, http.MethodPut, KeyProducts+"/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KeyProducts, KeyPicos, KeyStock)
	return &out, nil
}

// DeleteProduct elimina un producto.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.Do(ctx, http.MethodDelete, KeyProducts+"/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate(KeyProducts, KeyDashboard)
	return nil
}

// ── Picos ─────────────────────────────────────────────────────────────────────

var inventoryKeys = []string{KeyDashboard, KeyActivity}

// ListPicos lista picos.
func (c *Client) ListPicos(ctx context.Context) ([]dto.PicoResponse, error) {
	return cachedGet[[]dto.PicoResponse](ctx, c, KeyPicos)
}

// CreatePico registra un pico.
func (c *Client) CreatePico(ctx context.Context, in dto.CreatePicoRequest) (*dto.PicoResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	var out dto.PicoResponse
	if err := c.Do(ctx, http.MethodPost, KeyPicos, in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(append([]string{KeyPicos}, inventoryKeys...)...)
	return &out, nil
}

// UpdatePico actualiza un pico.
func (c *Client) UpdatePico(ctx context.Context, id string, in dto.UpdatePicoRequest) (*dto.PicoResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	var out dto.PicoResponse
	if err := c.Do(ctx, http.MethodPut, KeyPicos+"/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(append([]string{KeyPicos}, inventoryKeys...)...)
	return &out, nil
}

// DeletePico elimina un pico.
func (c *Client) DeletePico(ctx context.Context, id string) error {
	if err := c.Do(ctx, http.MethodDelete, KeyPicos+"/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate(append([]string{KeyPicos}, inventoryKeys...)...)
	return nil
}

// ── Paletizados ───────────────────────────────────────────────────────────────

// ListStock lista el stock paletizado.
func (c *Client) ListStock(ctx context.Context) ([]dto.PaletizadoStockResponse, error) {
	return cachedGet[[]dto.PaletizadoStockResponse](ctx, c, KeyStock)
}

// AddStock suma pallets al producto.
func (c *Client) AddStock(ctx context.Context, productCode string, quantity int) (*dto.PaletizadoStockResponse, error) {
	in := dto.CreatePaletizadoRequest{ProductCode: productCode, Quantity: quantity}
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	var out dto.PaletizadoStockResponse
	if err := c.Do(ctx, http.MethodPost, KeyStock, in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(append([]string{KeyStock}, inventoryKeys...)...)
	return &out, nil
}

// SetStock fija la cantidad de una fila de stock.
func (c *Client) SetStock(ctx context.Context, id string, quantity int) (*dto.PaletizadoStockResponse, error) {
	in := dto.UpdatePaletizadoRequest{Quantity: quantity}
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	var out dto.PaletizadoStockResponse
	if err := c.Do(ctx, http.MethodPut, KeyStock+"/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(append([]string{KeyStock}, inventoryKeys...)...)
	return &out, nil
}

// DeleteStock elimina una fila de stock.
func (c *Client) DeleteStock(ctx context.Context, id string) error {
	if err := c.Do(ctx, http.MethodDelete, KeyStock+"/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate(append([]string{KeyStock}, inventoryKeys...)...)
	return nil
}

// ── Dashboard, actividad y reportes ──────────────────────────────────────────

// DashboardStats contadores y actividad reciente.
func (c *Client) DashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	return cachedGet[*dto.DashboardStatsDTO](ctx, c, KeyDashboard)
}

// ActivityLogs historial filtrado por tipo ("" = todos).
func (c *Client) ActivityLogs(ctx context.Context, activityType string, limit int) ([]dto.ActivityLogResponse, error) {
	q := url.Values{}
	if activityType != "" {
		q.Set("type", activityType)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	key := KeyActivity
	if len(q) > 0 {
		key += "?" + q.Encode()
	}
	return cachedGet[[]dto.ActivityLogResponse](ctx, c, key)
}

// StockReport descarga el PDF de stock. itemType "" incluye picos y paletizados.
func (c *Client) StockReport(ctx context.Context, itemType string) ([]byte, error) {
	path := "/api/reports/stock.pdf"
	if itemType != "" {
		path += "?itemType=" + url.QueryEscape(itemType)
	}
	resp, raw, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		return nil, fmt.Errorf("client: reporte con Content-Type inesperado %q", ct)
	}
	return raw, nil
}
