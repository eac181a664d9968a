package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/banking-api/internal/domain"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, lastname, document, phone, email, password_hash, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, lastname, document, phone, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Lastname, user.Document, user.Phone, user.Email,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueUserError(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// uniqueUserError traduce un 23505 sobre users al error de dominio de la
// columna en conflicto (users_document_key o users_email_key).
func uniqueUserError(err error) error {
	if strings.Contains(uniqueConstraint(err), "document") {
		return domain.ErrDocumentExists
	}
	return domain.ErrEmailExists
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, lastname = $3, document = $4, phone = $5,
			email = $6, password_hash = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Lastname, user.Document, user.Phone, user.Email,
		user.PasswordHash, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueUserError(err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID. Las cuentas del usuario y sus
// depósitos/transferencias caen por cascada (ON DELETE CASCADE).
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// List devuelve todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Search busca usuarios por nombre, apellido, documento o email.
// El caller ya normalizó la query (minúsculas, sin acentos); unaccent() en la
// columna hace el match insensible a acentos del lado de la base.
func (r *UserRepo) Search(query string) ([]*entity.User, error) {
	sql := `
		SELECT ` + userColumns + ` FROM users
		WHERE unaccent(lower(name)) LIKE '%' || $1 || '%'
		   OR unaccent(lower(lastname)) LIKE '%' || $1 || '%'
		   OR document LIKE '%' || $1 || '%'
		   OR lower(email) LIKE '%' || $1 || '%'
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), sql, query)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ExistsByEmail predicado de unicidad del email; excludeID vacío = sin exclusión.
func (r *UserRepo) ExistsByEmail(email, excludeID string) (bool, error) {
	return r.existsField("email", email, excludeID)
}

// ExistsByDocument predicado de unicidad del documento (CPF).
func (r *UserRepo) ExistsByDocument(document, excludeID string) (bool, error) {
	return r.existsField("document", document, excludeID)
}

// existsField implementa el predicado de unicidad tipado. El nombre de la
// columna viene de los métodos públicos, nunca de entrada externa.
func (r *UserRepo) existsField(column, value, excludeID string) (bool, error) {
	// id::text porque $2 se infiere como text y uuid <> text no existe (42883).
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE ` + column + ` = $1 AND ($2 = '' OR id::text <> $2))`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, value, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user %s: %w", column, err)
	}
	return exists, nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Lastname, &u.Document, &u.Phone, &u.Email,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (r *UserRepo) scanAll(rows pgx.Rows) ([]*entity.User, error) {
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Lastname, &u.Document, &u.Phone, &u.Email,
			&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
