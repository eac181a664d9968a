package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit registro inmutable de un crédito sobre una cuenta.
// Se crea únicamente junto con el incremento de balance, en la misma
// transacción; nunca se actualiza ni se elimina de forma individual.
type Deposit struct {
	ID        string
	AccountID string
	Amount    decimal.Decimal
	CreatedAt time.Time
}
