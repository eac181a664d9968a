package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositRequest entrada para acreditar un depósito.
type DepositRequest struct {
	AccountID string          `json:"account_id" validate:"required,uuid"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
}

// TransferRequest entrada para transferir entre cuentas.
type TransferRequest struct {
	ShippingAccountID  string          `json:"shipping_account_id" validate:"required,uuid"`
	ReceivingAccountID string          `json:"receiving_account_id" validate:"required,uuid"`
	Amount             decimal.Decimal `json:"amount" validate:"required"`
}

// DepositResponse salida de un depósito.
type DepositResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// DepositDetailResponse depósito con su cuenta y titular expandidos
// (GET /deposits/:id).
type DepositDetailResponse struct {
	DepositResponse
	Account *AccountOwnerResponse `json:"account"`
}

// TransferResponse salida de una transferencia.
type TransferResponse struct {
	ID                 string          `json:"id"`
	ShippingAccountID  string          `json:"shipping_account_id"`
	ReceivingAccountID string          `json:"receiving_account_id"`
	Amount             decimal.Decimal `json:"amount"`
	CreatedAt          time.Time       `json:"created_at"`
}

// TransferDetailResponse transferencia con ambas cuentas y titulares
// expandidos (GET /transfers/:id).
type TransferDetailResponse struct {
	TransferResponse
	ShippingAccount  *AccountOwnerResponse `json:"shipping_account"`
	ReceivingAccount *AccountOwnerResponse `json:"receiving_account"`
}

// AccountOwnerResponse cuenta con su titular anidado.
type AccountOwnerResponse struct {
	AccountResponse
	User *UserResponse `json:"user"`
}
