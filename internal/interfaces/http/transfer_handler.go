package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banking-api/internal/application/dto"
	"github.com/tu-usuario/banking-api/internal/application/ledger"
	"github.com/tu-usuario/banking-api/internal/application/usecase"
	"github.com/tu-usuario/banking-api/internal/domain"
)

// TransferHandler maneja las peticiones HTTP para Transfer.
type TransferHandler struct {
	ledgerUC *ledger.UseCase
	queryUC  *usecase.TransactionUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(ledgerUC *ledger.UseCase, queryUC *usecase.TransactionUseCase) *TransferHandler {
	return &TransferHandler{ledgerUC: ledgerUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Realizar transferencia
// @Description  Debita de la cuenta de envío y acredita en la de recepción como unidad atómica, con verificación de saldo bajo bloqueo de fila.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Cuentas y monto"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	id, err := h.ledgerUC.Transfer(c.Context(), in.ShippingAccountID, in.ReceivingAccountID, in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Created(id, "transferencia realizada con éxito"))
}

// GetByID godoc
// @Summary      Obtener transferencia por ID
// @Tags         transfers
// @Produce      json
// @Param        id   path  string  true  "ID de la transferencia"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/transfers/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetTransfer(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar transferencias
// @Tags         transfers
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	out, err := h.queryUC.ListTransfers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
