package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cuenta. La presencia de CNPJ es lo que distingue una cuenta PJ
// de una PF; Type es descriptivo (corriente, ahorro, etc.).
const (
	AccountClassPF = "PF" // persona física (sin CNPJ)
	AccountClassPJ = "PJ" // persona jurídica (con CNPJ)
)

// Account representa una cuenta bancaria de un User.
// El balance solo lo modifica el motor de transacciones (ledger), nunca
// el CRUD de cuentas.
type Account struct {
	ID            string
	UserID        string
	Agency        string
	Number        string
	Digit         string
	CNPJ          string // vacío = cuenta PF; no vacío = cuenta PJ, único global
	CorporateName string
	FantasyName   string
	Type          string
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Class devuelve la clase de la cuenta (PF o PJ) según la presencia de CNPJ.
func (a *Account) Class() string {
	if a.CNPJ != "" {
		return AccountClassPJ
	}
	return AccountClassPF
}
