package statement

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banking-api/internal/domain/entity"
)

// Tipos de movimiento de un extracto.
const (
	EntryDeposit     = "DEPOSITO"
	EntryTransferOut = "TRANSFERENCIA ENVIADA"
	EntryTransferIn  = "TRANSFERENCIA RECIBIDA"
)

// Entry un movimiento del extracto. Amount lleva signo (negativo para
// transferencias enviadas) y Balance es el saldo acumulado tras aplicarlo.
type Entry struct {
	ID             string
	Kind           string
	CounterpartyID string // cuenta contraparte; vacío en depósitos
	Amount         decimal.Decimal
	Balance        decimal.Decimal
	CreatedAt      time.Time
}

// Statement el extracto completo de una cuenta: titular, movimientos en
// orden cronológico y saldo final.
type Statement struct {
	Account     *entity.Account
	User        *entity.User
	Entries     []Entry
	GeneratedAt time.Time
}

// PDFGenerator puerto de la representación gráfica del extracto.
type PDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, st *Statement) ([]byte, error)
}

// OFXBuilder puerto de la exportación OFX (Open Financial Exchange) del
// extracto, para importar en software financiero.
type OFXBuilder interface {
	BuildStatementOFX(st *Statement) ([]byte, error)
}
