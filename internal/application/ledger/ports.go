package ledger

import (
	"context"

	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// transacciones: o se aplican el balance y el registro de auditoría juntos,
// o no se aplica nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		accountRepo repository.AccountRepository,
		depositRepo repository.DepositRepository,
		transferRepo repository.TransferRepository,
	) error) error
}
