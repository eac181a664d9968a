package repository

import "github.com/tu-usuario/banking-api/internal/domain/entity"

// DepositRepository define el puerto de persistencia para Deposit.
// Los depósitos son append-only: no hay Update ni Delete individual
// (la eliminación ocurre solo por cascada al borrar la cuenta).
type DepositRepository interface {
	Create(deposit *entity.Deposit) error
	GetByID(id string) (*entity.Deposit, error)
	List() ([]*entity.Deposit, error)
	ListByAccount(accountID string) ([]*entity.Deposit, error)
}
