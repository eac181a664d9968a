package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/banking-api/internal/domain/entity"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

var _ repository.DepositRepository = (*DepositRepo)(nil)

const depositColumns = `id, account_id, amount, created_at`

// DepositRepo implementación de DepositRepository sobre PostgreSQL (usable con pool o tx).
type DepositRepo struct {
	q Querier
}

// NewDepositRepository construye el adaptador de depósitos. Pasar pool o tx (Querier).
func NewDepositRepository(q Querier) *DepositRepo {
	return &DepositRepo{q: q}
}

// Create persiste el registro de auditoría del depósito. Siempre se llama
// dentro de la misma transacción que incrementa el balance.
func (r *DepositRepo) Create(deposit *entity.Deposit) error {
	query := `INSERT INTO deposits (id, account_id, amount, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		deposit.ID, deposit.AccountID, deposit.Amount, deposit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deposit: %w", err)
	}
	return nil
}

// GetByID obtiene un depósito por ID.
func (r *DepositRepo) GetByID(id string) (*entity.Deposit, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE id = $1`
	var d entity.Deposit
	err := r.q.QueryRow(context.Background(), query, id).Scan(&d.ID, &d.AccountID, &d.Amount, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deposit by id: %w", err)
	}
	return &d, nil
}

// List devuelve todos los depósitos.
func (r *DepositRepo) List() ([]*entity.Deposit, error) {
	return r.list(`SELECT `+depositColumns+` FROM deposits ORDER BY created_at DESC`, nil)
}

// ListByAccount devuelve los depósitos de una cuenta.
func (r *DepositRepo) ListByAccount(accountID string) ([]*entity.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE account_id = $1 ORDER BY created_at DESC`
	return r.list(query, []any{accountID})
}

func (r *DepositRepo) list(query string, args []any) ([]*entity.Deposit, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deposit
	for rows.Next() {
		var d entity.Deposit
		if err := rows.Scan(&d.ID, &d.AccountID, &d.Amount, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deposit: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
