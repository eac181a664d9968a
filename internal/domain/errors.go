package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrAccountNotFound     = errors.New("cuenta no encontrada")
	ErrDocumentExists      = errors.New("el documento ya está registrado")
	ErrEmailExists         = errors.New("el email ya está registrado")
	ErrCNPJExists          = errors.New("el CNPJ ya está registrado")
	ErrAccountLimit        = errors.New("el usuario ya posee una cuenta de esa clase")
	ErrInsufficientBalance = errors.New("saldo insuficiente")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidAmount       = errors.New("el monto debe ser mayor que cero")
	ErrSameAccount         = errors.New("cuenta origen y destino son la misma")
	ErrUnauthorized        = errors.New("no autorizado")

	// ErrTxSerialization lo emite la capa de persistencia cuando PostgreSQL
	// aborta la transacción por conflicto de serialización o deadlock (40001 /
	// 40P01). El motor de transacciones reintenta la unidad de trabajo una vez
	// desde las precondiciones.
	ErrTxSerialization = errors.New("conflicto de serialización en la transacción")
)
