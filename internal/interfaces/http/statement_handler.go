package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banking-api/internal/application/statement"
)

// StatementHandler sirve el extracto de una cuenta en PDF y en OFX.
type StatementHandler struct {
	uc *statement.UseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *statement.UseCase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// DownloadPDF godoc
// @Summary      Descargar extracto en PDF
// @Tags         accounts
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.Envelope
// @Router       /api/accounts/{id}/statement.pdf [get]
func (h *StatementHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// DownloadOFX godoc
// @Summary      Descargar extracto en OFX
// @Tags         accounts
// @Security     Bearer
// @Produce      application/x-ofx
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.Envelope
// @Router       /api/accounts/{id}/statement.ofx [get]
func (h *StatementHandler) DownloadOFX(c *fiber.Ctx) error {
	ofxBytes, filename, err := h.uc.DownloadOFX(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/x-ofx")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(ofxBytes)
}
