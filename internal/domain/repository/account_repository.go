package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banking-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account.
// GetForUpdate y UpdateBalance se usan únicamente dentro de transacciones
// (vía TxRunner) para garantizar consistencia del balance.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	Update(account *entity.Account) error
	Delete(id string) error
	List() ([]*entity.Account, error)
	// Search busca por user_id (igualdad) o agencia, número, CNPJ, razón
	// social o nombre fantasía (substring).
	Search(query string) ([]*entity.Account, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Account, error)
	// UpdateBalance escribe el nuevo balance; solo el motor de transacciones
	// debe llamarlo, con la fila ya bloqueada.
	UpdateBalance(id string, balance decimal.Decimal) error
	// ExistsByCNPJ predicado de unicidad del CNPJ; excludeID para updates.
	ExistsByCNPJ(cnpj, excludeID string) (bool, error)
	// ExistsByUserAndClass indica si el usuario ya posee una cuenta de la
	// clase dada (entity.AccountClassPF o entity.AccountClassPJ).
	ExistsByUserAndClass(userID, class string) (bool, error)
}
