package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// CookieConfig atributos de la cookie de sesión.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler maneja login, sesión actual, cambio de contraseña y logout.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
	errs   errorResponder
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, errs: errorResponder{log: log}}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bind(c, &in); err != nil {
		return h.errs.respondBind(c, err)
	}
	res, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	h.setSessionCookie(c, res.Token, res.Session.ExpiresAt)
	return c.JSON(res.Response)
}

// Me godoc
// @Summary      Usuario de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/user [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.FromUser(GetUser(c)))
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Description  Obligatorio en el primer acceso. Limpia isFirstLogin.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "newPassword, confirmPassword"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := bind(c, &in); err != nil {
		return h.errs.respondBind(c, err)
	}
	out, err := h.uc.ChangePassword(c.UserContext(), GetSession(c), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if s := GetSession(c); s != nil {
		if err := h.uc.Logout(c.UserContext(), s.ID); err != nil {
			return h.errs.respond(c, err)
		}
	}
	c.ClearCookie(h.cookie.Name)
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}
