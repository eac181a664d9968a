package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer registro inmutable de un débito/crédito pareado entre dos cuentas.
// Se crea únicamente junto con la mutación de ambos balances, en la misma
// transacción; nunca se actualiza ni se elimina de forma individual.
type Transfer struct {
	ID                 string
	ShippingAccountID  string // cuenta que envía (débito)
	ReceivingAccountID string // cuenta que recibe (crédito)
	Amount             decimal.Decimal
	CreatedAt          time.Time
}
