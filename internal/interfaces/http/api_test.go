package http_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	apphttp "github.com/jhoicas/Estoque-api/internal/interfaces/http"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	resp, raw := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"ok"`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PrimerAccesoYUsuarioActual(t *testing.T) {
	s := newTestServer(t, nil)
	tok, out := s.login(t, adminUser, adminPass)
	assert.True(t, out.IsFirstLogin)
	assert.Equal(t, "administrador", out.User.Role)

	resp, raw := s.do(t, http.MethodGet, "/api/auth/user", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.UserResponse](t, raw)
	assert.Equal(t, adminUser, me.Username)
	assert.NotContains(t, string(raw), "password")
}

func TestLogin_PasswordIncorrecto_SinSesion(t *testing.T) {
	s := newTestServer(t, nil)
	resp, raw := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: adminUser, Password: "errada"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), "UNAUTHORIZED")
	assert.Empty(t, resp.Cookies())

	resp, _ = s.do(t, http.MethodGet, "/api/auth/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UsuarioInexistenteIgualQuePasswordIncorrecto(t *testing.T) {
	s := newTestServer(t, nil)
	resp, raw := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "ninguem", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), "UNAUTHORIZED")
}

func TestLogin_BodyInvalido(t *testing.T) {
	s := newTestServer(t, nil)
	resp, raw := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": adminUser})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestLogin_RateLimit(t *testing.T) {
	limiter, err := apphttp.RateLimit("2-M", logger.Nop())
	require.NoError(t, err)
	s := newTestServer(t, limiter)

	for i := 0; i < 2; i++ {
		resp, _ := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: adminUser, Password: "errada"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp, raw := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: adminUser, Password: adminPass})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, string(raw), "RATE_LIMITED")
}

func TestChangePassword(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.adminToken(t)

	t.Run("confirmación distinta", func(t *testing.T) {
		resp, raw := s.do(t, http.MethodPost, "/api/auth/change-password", tok, dto.ChangePasswordRequest{NewPassword: "nueva123", ConfirmPassword: "otra123"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(raw), "PASSWORD_MISMATCH")
	})

	t.Run("demasiado corta", func(t *testing.T) {
		resp, _ := s.do(t, http.MethodPost, "/api/auth/change-password", tok, dto.ChangePasswordRequest{NewPassword: "abc", ConfirmPassword: "abc"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("correcta limpia primer acceso", func(t *testing.T) {
		resp, raw := s.do(t, http.MethodPost, "/api/auth/change-password", tok, dto.ChangePasswordRequest{NewPassword: "nueva123", ConfirmPassword: "nueva123"})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
		assert.False(t, decode[dto.UserResponse](t, raw).IsFirstLogin)

		// la sesión vigente refleja el cambio
		_, raw = s.do(t, http.MethodGet, "/api/auth/user", tok, nil)
		assert.False(t, decode[dto.UserResponse](t, raw).IsFirstLogin)

		_, out := s.login(t, adminUser, "nueva123")
		assert.False(t, out.IsFirstLogin)
	})
}

func TestLogout_InvalidaSesion(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.adminToken(t)

	resp, _ := s.do(t, http.MethodPost, "/api/auth/logout", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/auth/user", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestUsers_OperadorNoPuedeEscribir(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	op := s.createOperador(t, admin, "joao")

	resp, _ := s.do(t, http.MethodGet, "/api/users", op, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := s.do(t, http.MethodPost, "/api/users", op, dto.CreateUserRequest{
		Name: "X", Nickname: "x", Username: "xxx", Password: "secret1", Role: "operador",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(raw), "FORBIDDEN")
}

func TestUsers_UsernameDuplicado(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	resp, raw := s.do(t, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Name: "Otro", Nickname: "o", Username: adminUser, Password: "secret1", Role: "operador",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(raw), "DUPLICATE")
}

func TestUsers_AdminNoPuedeEliminarseASiMismo(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	_, raw := s.do(t, http.MethodGet, "/api/auth/user", admin, nil)
	me := decode[dto.UserResponse](t, raw)

	resp, raw := s.do(t, http.MethodDelete, "/api/users/"+me.ID, admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "CANNOT_DELETE_SELF")
}

func TestUsers_CambioDeRolRevocaSesiones(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	op := s.createOperador(t, admin, "maria")

	_, raw := s.do(t, http.MethodGet, "/api/auth/user", op, nil)
	me := decode[dto.UserResponse](t, raw)

	role := "administrador"
	resp, raw := s.do(t, http.MethodPut, "/api/users/"+me.ID, admin, dto.UpdateUserRequest{Role: &role})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	resp, _ = s.do(t, http.MethodGet, "/api/auth/user", op, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUsers_EliminarYListar(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	op := s.createOperador(t, admin, "pedro")
	_, raw := s.do(t, http.MethodGet, "/api/auth/user", op, nil)
	me := decode[dto.UserResponse](t, raw)

	resp, _ := s.do(t, http.MethodDelete, "/api/users/"+me.ID, admin, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, raw = s.do(t, http.MethodGet, "/api/users", admin, nil)
	users := decode[[]dto.UserResponse](t, raw)
	assert.Len(t, users, 1)

	resp, _ = s.do(t, http.MethodGet, "/api/auth/user", op, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/users/"+me.ID, admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CategoriaInmutable(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	p := s.createProduct(t, admin, "P-001", "alta_rotacao", 6)

	cat := "baixa_rotacao"
	resp, raw := s.do(t, http.MethodPut, "/api/products/"+p.ID, admin, dto.UpdateProductRequest{Category: &cat})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "CATEGORY_IMMUTABLE")

	same := "alta_rotacao"
	desc := "Nova descrição"
	resp, raw = s.do(t, http.MethodPut, "/api/products/"+p.ID, admin, dto.UpdateProductRequest{Category: &same, Description: &desc})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, desc, decode[dto.ProductResponse](t, raw).Description)
}

func TestProducts_CodigoDuplicadoYCategoriaInvalida(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	s.createProduct(t, admin, "P-001", "alta_rotacao", 6)

	resp, _ := s.do(t, http.MethodPost, "/api/products", admin, dto.CreateProductRequest{
		Code: "P-001", Description: "dup", UnitsPerBase: 1, Category: "alta_rotacao",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, raw := s.do(t, http.MethodPost, "/api/products", admin, dto.CreateProductRequest{
		Code: "P-002", Description: "x", UnitsPerBase: 1, Category: "media",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "category")
}

func TestProducts_OperadorSoloLectura(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	op := s.createOperador(t, admin, "ana")

	resp, _ := s.do(t, http.MethodPost, "/api/products", op, dto.CreateProductRequest{
		Code: "P-9", Description: "x", UnitsPerBase: 1, Category: "alta_rotacao",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/products", op, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProducts_Search(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	s.createProduct(t, admin, "AB-10", "alta_rotacao", 1)
	s.createProduct(t, admin, "AB-1", "alta_rotacao", 1)
	s.createProduct(t, admin, "ZZ-9", "baixa_rotacao", 1)

	_, raw := s.do(t, http.MethodGet, "/api/products/search?q=ab-1", admin, nil)
	hits := decode[[]dto.ProductResponse](t, raw)
	require.Len(t, hits, 2)
	assert.Equal(t, "AB-1", hits[0].Code, "el código exacto va primero")

	_, raw = s.do(t, http.MethodGet, "/api/products/search?q=", admin, nil)
	assert.Empty(t, decode[[]dto.ProductResponse](t, raw))
}

func TestProducts_EliminarConStock_Conflicto(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	p := s.createProduct(t, admin, "P-001", "alta_rotacao", 6)

	resp, _ := s.do(t, http.MethodPost, "/api/paletizado-stock", admin, dto.CreatePaletizadoRequest{ProductCode: "P-001", Quantity: 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := s.do(t, http.MethodDelete, "/api/products/"+p.ID, admin, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(raw), "CONFLICT")
}

// ──────────────────────────────────────────────────────────────────────────────
// Picos
// ──────────────────────────────────────────────────────────────────────────────

func TestPicos_FlujoCompleto(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	op := s.createOperador(t, admin, "carlos")
	s.createProduct(t, admin, "P-001", "alta_rotacao", 6)

	resp, raw := s.do(t, http.MethodPost, "/api/picos", op, dto.CreatePicoRequest{
		ProductCode: "P-001", Bases: 2, LooseUnits: 1, TowerLocation: "07",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	pico := decode[dto.PicoResponse](t, raw)
	assert.Equal(t, 13, pico.TotalUnits)
	require.NotNil(t, pico.Product)
	assert.Equal(t, "P-001", pico.Product.Code)

	bases := 3
	resp, raw = s.do(t, http.MethodPut, "/api/picos/"+pico.ID, op, dto.UpdatePicoRequest{Bases: &bases})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, 19, decode[dto.PicoResponse](t, raw).TotalUnits)

	_, raw = s.do(t, http.MethodGet, "/api/dashboard/stats", op, nil)
	stats := decode[dto.DashboardStatsDTO](t, raw)
	assert.Equal(t, 1, stats.TotalPicos)
	require.Len(t, stats.RecentEntries, 1)
	assert.Equal(t, 13, stats.RecentEntries[0].Quantity)
	assert.Equal(t, "pico", stats.RecentEntries[0].ItemType)

	resp, _ = s.do(t, http.MethodDelete, "/api/picos/"+pico.ID, op, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, raw = s.do(t, http.MethodGet, "/api/picos", op, nil)
	assert.Empty(t, decode[[]dto.PicoResponse](t, raw))

	resp, _ = s.do(t, http.MethodGet, "/api/picos/"+pico.ID, op, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, raw = s.do(t, http.MethodGet, "/api/activity-logs?type=saida", op, nil)
	exits := decode[[]dto.ActivityLogResponse](t, raw)
	require.Len(t, exits, 1)
	assert.Equal(t, 19, exits[0].Quantity)
	assert.Equal(t, "P-001", exits[0].ProductCode)
}

func TestPicos_Validaciones(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	s.createProduct(t, admin, "P-001", "alta_rotacao", 6)

	cases := []struct {
		name   string
		body   dto.CreatePicoRequest
		status int
	}{
		{"torre de un dígito", dto.CreatePicoRequest{ProductCode: "P-001", Bases: 1, TowerLocation: "7"}, http.StatusBadRequest},
		{"torre no numérica", dto.CreatePicoRequest{ProductCode: "P-001", Bases: 1, TowerLocation: "A1"}, http.StatusBadRequest},
		{"bases negativas", dto.CreatePicoRequest{ProductCode: "P-001", Bases: -1, TowerLocation: "01"}, http.StatusBadRequest},
		{"producto inexistente", dto.CreatePicoRequest{ProductCode: "NOPE", Bases: 1, TowerLocation: "01"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := s.do(t, http.MethodPost, "/api/picos", admin, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode, string(raw))
		})
	}

	_, raw := s.do(t, http.MethodGet, "/api/picos", admin, nil)
	assert.Empty(t, decode[[]dto.PicoResponse](t, raw), "ningún pico inválido debe persistirse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Paletizados
// ──────────────────────────────────────────────────────────────────────────────

func TestPaletizados_IncrementoSinDuplicar(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	s.createProduct(t, admin, "P-001", "baixa_rotacao", 6)

	resp, raw := s.do(t, http.MethodPost, "/api/paletizado-stock", admin, dto.CreatePaletizadoRequest{ProductCode: "P-001", Quantity: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	first := decode[dto.PaletizadoStockResponse](t, raw)

	resp, raw = s.do(t, http.MethodPost, "/api/paletizado-stock", admin, dto.CreatePaletizadoRequest{ProductCode: "P-001", Quantity: 2})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	second := decode[dto.PaletizadoStockResponse](t, raw)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	_, raw = s.do(t, http.MethodGet, "/api/paletizado-stock", admin, nil)
	list := decode[[]dto.PaletizadoStockResponse](t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Quantity)

	resp, raw = s.do(t, http.MethodPut, "/api/paletizado-stock/"+first.ID, admin, dto.UpdatePaletizadoRequest{Quantity: 8})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, 8, decode[dto.PaletizadoStockResponse](t, raw).Quantity)

	resp, _ = s.do(t, http.MethodPost, "/api/paletizado-stock", admin, dto.CreatePaletizadoRequest{ProductCode: "P-001", Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodDelete, "/api/paletizado-stock/"+first.ID, admin, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, raw = s.do(t, http.MethodGet, "/api/dashboard/stats", admin, nil)
	stats := decode[dto.DashboardStatsDTO](t, raw)
	assert.Equal(t, 0, stats.TotalPaletizados)
	assert.Len(t, stats.RecentEntries, 2)
	require.Len(t, stats.RecentExits, 1)
	assert.Equal(t, 8, stats.RecentExits[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard, actividad y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_CategoriasSumanTotalDeProductos(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	s.createProduct(t, admin, "A-1", "alta_rotacao", 1)
	s.createProduct(t, admin, "A-2", "alta_rotacao", 1)
	s.createProduct(t, admin, "B-1", "baixa_rotacao", 1)

	_, raw := s.do(t, http.MethodGet, "/api/dashboard/stats", admin, nil)
	stats := decode[dto.DashboardStatsDTO](t, raw)
	assert.Equal(t, 2, stats.AltaRotacao)
	assert.Equal(t, 1, stats.BaixaRotacao)

	_, raw = s.do(t, http.MethodGet, "/api/products", admin, nil)
	assert.Len(t, decode[[]dto.ProductResponse](t, raw), stats.AltaRotacao+stats.BaixaRotacao)
}

func TestDashboard_RequiereSesion(t *testing.T) {
	s := newTestServer(t, nil)
	resp, _ := s.do(t, http.MethodGet, "/api/dashboard/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestActivityLogs_TipoInvalido(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	resp, _ := s.do(t, http.MethodGet, "/api/activity-logs?type=ajuste", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReports_StockPDF(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	s.createProduct(t, admin, "P-001", "alta_rotacao", 6)
	resp, _ := s.do(t, http.MethodPost, "/api/picos", admin, dto.CreatePicoRequest{ProductCode: "P-001", Bases: 1, TowerLocation: "01"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := s.do(t, http.MethodGet, "/api/reports/stock.pdf", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "estoque_")
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp, _ = s.do(t, http.MethodGet, "/api/reports/stock.pdf?itemType=outro", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRutaInexistente(t *testing.T) {
	s := newTestServer(t, nil)
	resp, raw := s.do(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "NOT_FOUND")
}

func TestPicos_UnidadesFueraDeRango(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	s.createProduct(t, admin, "P-001", "alta_rotacao", 5)

	resp, raw := s.do(t, http.MethodPost, "/api/picos", admin, map[string]any{
		"productCode": "P-001", "bases": 1 << 62, "looseUnits": 3, "towerLocation": "01",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))
	assert.Contains(t, string(raw), "VALIDATION")

	resp, raw = s.do(t, http.MethodPost, "/api/picos", admin, dto.CreatePicoRequest{
		ProductCode: "P-001", Bases: 100000, LooseUnits: 100000, TowerLocation: "01",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	pico := decode[dto.PicoResponse](t, raw)
	assert.Equal(t, 100000*5+100000, pico.TotalUnits)

	huge := 1 << 40
	resp, _ = s.do(t, http.MethodPut, "/api/picos/"+pico.ID, admin, dto.UpdatePicoRequest{LooseUnits: &huge})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/products", admin, dto.CreateProductRequest{
		Code: "P-002", Description: "Grande", UnitsPerBase: 10001, Category: "alta_rotacao",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/paletizado-stock", admin, dto.CreatePaletizadoRequest{
		ProductCode: "P-001", Quantity: 100001,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCamposEnBlancoRechazados(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)

	resp, raw := s.do(t, http.MethodPost, "/api/products", admin, dto.CreateProductRequest{
		Code: "   ", Description: "   ", UnitsPerBase: 6, Category: "alta_rotacao",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))
	assert.Contains(t, string(raw), "VALIDATION")

	resp, raw = s.do(t, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Name: "Ana", Nickname: "ana", Username: "    ", Password: "secret1", Role: "operador",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))

	resp, raw = s.do(t, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Name: "Ana", Nickname: "ana", Username: " a ", Password: "secret1", Role: "operador",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))

	resp, raw = s.do(t, http.MethodPost, "/api/products", admin, dto.CreateProductRequest{
		Code: "  P-009 ", Description: " Caixa ", UnitsPerBase: 6, Category: "baixa_rotacao",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	product := decode[dto.ProductResponse](t, raw)
	assert.Equal(t, "P-009", product.Code)
	assert.Equal(t, "Caixa", product.Description)

	blank := "  "
	resp, _ = s.do(t, http.MethodPut, "/api/products/"+product.ID, admin, dto.UpdateProductRequest{Code: &blank})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUsers_ResetDePasswordRevocaSesiones(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.adminToken(t)
	op := s.createOperador(t, admin, "joana")

	_, raw := s.do(t, http.MethodPost, "/api/auth/change-password", op, dto.ChangePasswordRequest{
		NewPassword: "propia1", ConfirmPassword: "propia1",
	})
	me := decode[dto.UserResponse](t, raw)
	require.False(t, me.IsFirstLogin)

	password := "reset12"
	resp, raw := s.do(t, http.MethodPut, "/api/users/"+me.ID, admin, dto.UpdateUserRequest{Password: &password})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.True(t, decode[dto.UserResponse](t, raw).IsFirstLogin)

	resp, _ = s.do(t, http.MethodGet, "/api/auth/user", op, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, login := s.login(t, "joana", "reset12")
	assert.True(t, login.IsFirstLogin)
}
