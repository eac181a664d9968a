package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banking-api/internal/domain"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// cnpj se guarda como NULL cuando está vacío para que el UNIQUE parcial
// solo aplique a cuentas PJ; al leer se colapsa de vuelta a "".
const accountColumns = `id, user_id, agency, number, digit, COALESCE(cnpj, ''),
	COALESCE(corporate_name, ''), COALESCE(fantasy_name, ''), type, balance, created_at, updated_at`

// AccountRepo implementación de AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de cuentas. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, user_id, agency, number, digit, cnpj, corporate_name,
			fantasy_name, type, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.UserID, account.Agency, account.Number, account.Digit,
		account.CNPJ, account.CorporateName, account.FantasyName, account.Type,
		account.Balance, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCNPJExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get account by id")
}

// GetForUpdate obtiene la cuenta y bloquea la fila para update (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción (TxRunner).
func (r *AccountRepo) GetForUpdate(id string) (*entity.Account, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get account for update")
}

// Update actualiza los datos de la cuenta. El balance no se toca aquí:
// eso es exclusivo de UpdateBalance dentro del motor de transacciones.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET agency = $2, number = $3, digit = $4, cnpj = NULLIF($5, ''),
			corporate_name = NULLIF($6, ''), fantasy_name = NULLIF($7, ''), type = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Agency, account.Number, account.Digit, account.CNPJ,
		account.CorporateName, account.FantasyName, account.Type, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCNPJExists
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// UpdateBalance escribe el nuevo balance de la cuenta (fila ya bloqueada por el caller).
func (r *AccountRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	query := `UPDATE accounts SET balance = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, balance)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	return nil
}

// Delete elimina una cuenta por ID. Depósitos y transferencias asociados
// caen por cascada (ON DELETE CASCADE).
func (r *AccountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// List devuelve todas las cuentas.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Search busca cuentas por user_id (igualdad) o por agencia, número, CNPJ,
// razón social o nombre fantasía (substring). La query llega ya normalizada.
func (r *AccountRepo) Search(query string) ([]*entity.Account, error) {
	sql := `
		SELECT ` + accountColumns + ` FROM accounts
		WHERE user_id::text = $1
		   OR agency LIKE '%' || $1 || '%'
		   OR number LIKE '%' || $1 || '%'
		   OR cnpj LIKE '%' || $1 || '%'
		   OR unaccent(lower(corporate_name)) LIKE '%' || $1 || '%'
		   OR unaccent(lower(fantasy_name)) LIKE '%' || $1 || '%'
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), sql, query)
	if err != nil {
		return nil, fmt.Errorf("search accounts: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ExistsByCNPJ predicado de unicidad del CNPJ; excludeID para updates.
func (r *AccountRepo) ExistsByCNPJ(cnpj, excludeID string) (bool, error) {
	// id::text porque $2 se infiere como text y uuid <> text no existe (42883).
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE cnpj = $1 AND ($2 = '' OR id::text <> $2))`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, cnpj, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists account cnpj: %w", err)
	}
	return exists, nil
}

// ExistsByUserAndClass indica si el usuario ya posee una cuenta PF
// (cnpj IS NULL) o PJ (cnpj IS NOT NULL) según la clase pedida.
func (r *AccountRepo) ExistsByUserAndClass(userID, class string) (bool, error) {
	cond := `cnpj IS NULL`
	if class == entity.AccountClassPJ {
		cond = `cnpj IS NOT NULL`
	}
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE user_id = $1 AND ` + cond + `)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists account by user and class: %w", err)
	}
	return exists, nil
}

func (r *AccountRepo) scanOne(row pgx.Row, op string) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(
		&a.ID, &a.UserID, &a.Agency, &a.Number, &a.Digit, &a.CNPJ,
		&a.CorporateName, &a.FantasyName, &a.Type, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

func (r *AccountRepo) scanAll(rows pgx.Rows) ([]*entity.Account, error) {
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Agency, &a.Number, &a.Digit, &a.CNPJ,
			&a.CorporateName, &a.FantasyName, &a.Type, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
