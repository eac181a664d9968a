package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/banking-api/internal/application/dto"
	"github.com/tu-usuario/banking-api/internal/domain"
)

// respondError traduce un error de dominio al sobre {error, message} con el
// código HTTP que corresponde: 400 para entradas inválidas, 404 para
// recursos inexistentes, 409 para conflictos de negocio, 500 para el resto
// (sin filtrar el detalle interno al cliente).
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrSameAccount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrDocumentExists),
		errors.Is(err, domain.ErrCNPJExists),
		errors.Is(err, domain.ErrAccountLimit),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrTxSerialization):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno"))
	}
}
