package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/banking-api/internal/domain/entity"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

const transferColumns = `id, shipping_account_id, receiving_account_id, amount, created_at`

// TransferRepo implementación de TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de transferencias. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste el registro de auditoría de la transferencia. Siempre se
// llama dentro de la misma transacción que muta ambos balances.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, shipping_account_id, receiving_account_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.ShippingAccountID, transfer.ReceivingAccountID,
		transfer.Amount, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene una transferencia por ID.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ShippingAccountID, &t.ReceivingAccountID, &t.Amount, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer by id: %w", err)
	}
	return &t, nil
}

// List devuelve todas las transferencias.
func (r *TransferRepo) List() ([]*entity.Transfer, error) {
	return r.list(`SELECT `+transferColumns+` FROM transfers ORDER BY created_at DESC`, nil)
}

// ListByShippingAccount devuelve las transferencias enviadas por una cuenta.
func (r *TransferRepo) ListByShippingAccount(accountID string) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE shipping_account_id = $1 ORDER BY created_at DESC`
	return r.list(query, []any{accountID})
}

// ListByReceivingAccount devuelve las transferencias recibidas por una cuenta.
func (r *TransferRepo) ListByReceivingAccount(accountID string) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE receiving_account_id = $1 ORDER BY created_at DESC`
	return r.list(query, []any{accountID})
}

func (r *TransferRepo) list(query string, args []any) ([]*entity.Transfer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.ShippingAccountID, &t.ReceivingAccountID, &t.Amount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
