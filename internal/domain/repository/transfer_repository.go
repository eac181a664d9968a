package repository

import "github.com/tu-usuario/banking-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para Transfer.
// Las transferencias son append-only, igual que los depósitos.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	List() ([]*entity.Transfer, error)
	ListByShippingAccount(accountID string) ([]*entity.Transfer, error)
	ListByReceivingAccount(accountID string) ([]*entity.Transfer, error)
}
