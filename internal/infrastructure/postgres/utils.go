package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// uniqueConstraint devuelve el nombre del constraint violado en un 23505,
// para distinguir qué columna única causó el conflicto.
func uniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// isUUID indica si s es un UUID bien formado. Las columnas id son UUID: un
// id malformado no puede coincidir con ninguna fila, así que los lookups lo
// tratan como "no encontrado" en lugar de dejar que pgx falle al codificarlo.
func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// isSerializationFailure verifica si PostgreSQL abortó la transacción por
// conflicto de serialización (40001) o deadlock (40P01). Ambos son
// reintentables: la unidad de trabajo debe re-ejecutarse desde las
// precondiciones, nunca reutilizar lecturas previas.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
