package usecase

import (
	"github.com/tu-usuario/banking-api/internal/application/dto"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

// TransactionUseCase lado de lectura de depósitos y transferencias. Las
// mutaciones viven en el motor de transacciones (ledger); aquí solo hay
// consultas y el armado de los detalles con cuenta y titular expandidos.
type TransactionUseCase struct {
	depositRepo  repository.DepositRepository
	transferRepo repository.TransferRepository
	accountRepo  repository.AccountRepository
	userRepo     repository.UserRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	depositRepo repository.DepositRepository,
	transferRepo repository.TransferRepository,
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
) *TransactionUseCase {
	return &TransactionUseCase{
		depositRepo:  depositRepo,
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
		userRepo:     userRepo,
	}
}

// ListDeposits lista todos los depósitos.
func (uc *TransactionUseCase) ListDeposits() ([]dto.DepositResponse, error) {
	deposits, err := uc.depositRepo.List()
	if err != nil {
		return nil, err
	}
	return toDepositResponses(deposits), nil
}

// GetDeposit obtiene un depósito con su cuenta y titular expandidos.
// Devuelve (nil, nil) si no existe.
func (uc *TransactionUseCase) GetDeposit(id string) (*dto.DepositDetailResponse, error) {
	deposit, err := uc.depositRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deposit == nil {
		return nil, nil
	}
	account, err := uc.accountOwner(deposit.AccountID)
	if err != nil {
		return nil, err
	}
	return &dto.DepositDetailResponse{
		DepositResponse: toDepositResponse(deposit),
		Account:         account,
	}, nil
}

// ListTransfers lista todas las transferencias.
func (uc *TransactionUseCase) ListTransfers() ([]dto.TransferResponse, error) {
	transfers, err := uc.transferRepo.List()
	if err != nil {
		return nil, err
	}
	return toTransferResponses(transfers), nil
}

// GetTransfer obtiene una transferencia con ambas cuentas y titulares
// expandidos. Devuelve (nil, nil) si no existe.
func (uc *TransactionUseCase) GetTransfer(id string) (*dto.TransferDetailResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, nil
	}
	shipping, err := uc.accountOwner(transfer.ShippingAccountID)
	if err != nil {
		return nil, err
	}
	receiving, err := uc.accountOwner(transfer.ReceivingAccountID)
	if err != nil {
		return nil, err
	}
	return &dto.TransferDetailResponse{
		TransferResponse: toTransferResponse(transfer),
		ShippingAccount:  shipping,
		ReceivingAccount: receiving,
	}, nil
}

// accountOwner arma una cuenta con su titular anidado; nil si la cuenta ya
// no existe (borrada tras registrarse la transacción).
func (uc *TransactionUseCase) accountOwner(accountID string) (*dto.AccountOwnerResponse, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	out := &dto.AccountOwnerResponse{AccountResponse: *toAccountResponse(account)}
	user, err := uc.userRepo.GetByID(account.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		out.User = toUserResponse(user)
	}
	return out, nil
}
