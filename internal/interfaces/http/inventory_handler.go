package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// PicoHandler endpoints de /api/picos.
type PicoHandler struct {
	uc   *inventory.PicoUseCase
	errs errorResponder
}

// NewPicoHandler construye el handler.
func NewPicoHandler(uc *inventory.PicoUseCase, log *logger.Logger) *PicoHandler {
	return &PicoHandler{uc: uc, errs: errorResponder{log: log}}
}

// Create godoc
// @Summary      Registrar pico
// @Description  Resuelve el producto por código, calcula totalUnits y registra una entrada.
// @Tags         picos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePicoRequest  true  "productCode, bases, looseUnits, towerLocation"
// @Success      200   {object}  dto.PicoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/picos [post]
func (h *PicoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePicoRequest
	if err := bind(c, &in); err != nil {
		return h.errs.respondBind(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar picos
// @Tags         picos
// @Produce      json
// @Success      200  {array}  dto.PicoResponse
// @Router       /api/picos [get]
func (h *PicoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pico
// @Tags         picos
// @Produce      json
// @Param        id   path  string  true  "ID del pico"
// @Success      200  {object}  dto.PicoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/picos/{id} [get]
func (h *PicoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errs.respond(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "pico no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pico
// @Description  Actualización parcial. totalUnits se recalcula.
// @Tags         picos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pico"
// @Param        body  body  dto.UpdatePicoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PicoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/picos/{id} [put]
func (h *PicoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePicoRequest
	if err := bind(c, &in); err != nil {
		return h.errs.respondBind(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pico
// @Description  Registra una salida con las unidades del pico.
// @Tags         picos
// @Param        id   path  string  true  "ID del pico"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/picos/{id} [delete]
func (h *PicoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PaletizadoHandler endpoints de /api/paletizado-stock.
type PaletizadoHandler struct {
	uc   *inventory.PaletizadoUseCase
	errs errorResponder
}

// NewPaletizadoHandler construye el handler.
func NewPaletizadoHandler(uc *inventory.PaletizadoUseCase, log *logger.Logger) *PaletizadoHandler {
	return &PaletizadoHandler{uc: uc, errs: errorResponder{log: log}}
}

// Create godoc
// @Summary      Entrada de pallets
// @Description  Suma la cantidad al stock del producto. Crea la fila si no existía.
// @Tags         paletizados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaletizadoRequest  true  "productCode, quantity"
// @Success      200   {object}  dto.PaletizadoStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/paletizado-stock [post]
func (h *PaletizadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaletizadoRequest
	if err := bind(c, &in); err != nil {
		return h.errs.respondBind(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar stock paletizado
// @Tags         paletizados
// @Produce      json
// @Success      200  {array}  dto.PaletizadoStockResponse
// @Router       /api/paletizado-stock [get]
func (h *PaletizadoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener stock paletizado
// @Tags         paletizados
// @Produce      json
// @Param        id   path  string  true  "ID del stock"
// @Success      200  {object}  dto.PaletizadoStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paletizado-stock/{id} [get]
func (h *PaletizadoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errs.respond(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "stock no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Fijar cantidad de pallets
// @Tags         paletizados
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del stock"
// @Param        body  body  dto.UpdatePaletizadoRequest  true  "quantity"
// @Success      200   {object}  dto.PaletizadoStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/paletizado-stock/{id} [put]
func (h *PaletizadoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaletizadoRequest
	if err := bind(c, &in); err != nil {
		return h.errs.respondBind(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar stock paletizado
// @Description  Registra una salida con la cantidad que tenía la fila.
// @Tags         paletizados
// @Param        id   path  string  true  "ID del stock"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paletizado-stock/{id} [delete]
func (h *PaletizadoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
