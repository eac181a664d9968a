package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest entrada para abrir una cuenta. CNPJ no vacío implica
// cuenta PJ; corporate_name y fantasy_name solo aplican a PJ.
type CreateAccountRequest struct {
	UserID        string `json:"user_id" validate:"required,uuid"`
	Agency        string `json:"agency" validate:"required"`
	Number        string `json:"number" validate:"required"`
	Digit         string `json:"digit" validate:"required"`
	Type          string `json:"type" validate:"required"`
	CNPJ          string `json:"cnpj"`
	CorporateName string `json:"corporate_name"`
	FantasyName   string `json:"fantasy_name"`
}

// UpdateAccountRequest entrada para actualizar una cuenta. El balance nunca
// se actualiza por esta vía.
type UpdateAccountRequest struct {
	Agency        string `json:"agency"`
	Number        string `json:"number"`
	Digit         string `json:"digit"`
	Type          string `json:"type"`
	CNPJ          string `json:"cnpj"`
	CorporateName string `json:"corporate_name"`
	FantasyName   string `json:"fantasy_name"`
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Agency        string          `json:"agency"`
	Number        string          `json:"number"`
	Digit         string          `json:"digit"`
	CNPJ          string          `json:"cnpj,omitempty"`
	CorporateName string          `json:"corporate_name,omitempty"`
	FantasyName   string          `json:"fantasy_name,omitempty"`
	Type          string          `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AccountDetailResponse modelo de lectura compuesto de GET /accounts/:id:
// la cuenta, su titular y el historial de transacciones anidado.
type AccountDetailResponse struct {
	AccountResponse
	User         *UserResponse        `json:"user"`
	Transactions TransactionsResponse `json:"transactions"`
}

// TransactionsResponse historial de una cuenta: depósitos recibidos y
// transferencias partidas en enviadas/recibidas.
type TransactionsResponse struct {
	Deposits  []DepositResponse     `json:"deposits"`
	Transfers TransferSplitResponse `json:"transfers"`
}

// TransferSplitResponse transferencias de una cuenta según su rol.
type TransferSplitResponse struct {
	Shipping  []TransferResponse `json:"shipping"`
	Receiving []TransferResponse `json:"receiving"`
}
