package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banking-api/internal/application/dto"
	"github.com/tu-usuario/banking-api/internal/application/usecase"
	"github.com/tu-usuario/banking-api/internal/domain"
)

// AccountHandler maneja las peticiones HTTP para Account.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir cuenta
// @Description  CNPJ no vacío abre una cuenta PJ. Máximo una cuenta PF y una PJ por usuario.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	id, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Created(id, "cuenta creada con éxito"))
}

// GetByID godoc
// @Summary      Obtener cuenta con su historial
// @Description  Devuelve la cuenta, su titular y el historial de depósitos y transferencias (enviadas y recibidas).
// @Tags         accounts
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrAccountNotFound)
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar o buscar cuentas
// @Tags         accounts
// @Produce      json
// @Param        q    query  string  false  "Búsqueda libre: user_id, agencia, número, CNPJ, razón social o nombre fantasía"
// @Success      200  {object}  dto.Envelope
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar cuenta
// @Description  No permite modificar el balance ni convertir una cuenta PF en PJ.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateAccountRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/accounts/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := h.uc.Update(id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Done("cuenta actualizada con éxito"))
}

// Delete godoc
// @Summary      Eliminar cuenta
// @Description  Elimina la cuenta y, en cascada, sus depósitos y transferencias.
// @Tags         accounts
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Done("cuenta eliminada con éxito"))
}
