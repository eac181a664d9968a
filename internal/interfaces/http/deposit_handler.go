package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banking-api/internal/application/dto"
	"github.com/tu-usuario/banking-api/internal/application/ledger"
	"github.com/tu-usuario/banking-api/internal/application/usecase"
	"github.com/tu-usuario/banking-api/internal/domain"
)

// DepositHandler maneja las peticiones HTTP para Deposit. Las escrituras
// pasan por el motor de transacciones; las lecturas por el caso de uso de
// consulta.
type DepositHandler struct {
	ledgerUC *ledger.UseCase
	queryUC  *usecase.TransactionUseCase
}

// NewDepositHandler construye el handler.
func NewDepositHandler(ledgerUC *ledger.UseCase, queryUC *usecase.TransactionUseCase) *DepositHandler {
	return &DepositHandler{ledgerUC: ledgerUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Realizar depósito
// @Description  Acredita el monto y registra el depósito como unidad atómica.
// @Tags         deposits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DepositRequest  true  "Cuenta y monto"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/deposits [post]
func (h *DepositHandler) Create(c *fiber.Ctx) error {
	var in dto.DepositRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	id, err := h.ledgerUC.Deposit(c.Context(), in.AccountID, in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Created(id, "depósito realizado con éxito"))
}

// GetByID godoc
// @Summary      Obtener depósito por ID
// @Tags         deposits
// @Produce      json
// @Param        id   path  string  true  "ID del depósito"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/deposits/{id} [get]
func (h *DepositHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetDeposit(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar depósitos
// @Tags         deposits
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/deposits [get]
func (h *DepositHandler) List(c *fiber.Ctx) error {
	out, err := h.queryUC.ListDeposits()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
