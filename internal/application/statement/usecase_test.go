package statement_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/banking-api/internal/application/statement"
	"github.com/tu-usuario/banking-api/internal/domain"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: solo lo que el extracto consulta
// ──────────────────────────────────────────────────────────────────────────────

type stubAccountRepo struct{ account *entity.Account }

func (r *stubAccountRepo) Create(*entity.Account) error { return nil }
func (r *stubAccountRepo) GetByID(id string) (*entity.Account, error) {
	if r.account != nil && r.account.ID == id {
		return r.account, nil
	}
	return nil, nil
}
func (r *stubAccountRepo) Update(*entity.Account) error                     { return nil }
func (r *stubAccountRepo) Delete(string) error                              { return nil }
func (r *stubAccountRepo) List() ([]*entity.Account, error)                 { return nil, nil }
func (r *stubAccountRepo) Search(string) ([]*entity.Account, error)         { return nil, nil }
func (r *stubAccountRepo) GetForUpdate(string) (*entity.Account, error)     { return nil, nil }
func (r *stubAccountRepo) UpdateBalance(string, decimal.Decimal) error      { return nil }
func (r *stubAccountRepo) ExistsByCNPJ(string, string) (bool, error)        { return false, nil }
func (r *stubAccountRepo) ExistsByUserAndClass(string, string) (bool, error) { return false, nil }

type stubUserRepo struct{ user *entity.User }

func (r *stubUserRepo) Create(*entity.User) error                     { return nil }
func (r *stubUserRepo) GetByID(string) (*entity.User, error)          { return r.user, nil }
func (r *stubUserRepo) GetByEmail(string) (*entity.User, error)       { return nil, nil }
func (r *stubUserRepo) Update(*entity.User) error                     { return nil }
func (r *stubUserRepo) Delete(string) error                           { return nil }
func (r *stubUserRepo) List() ([]*entity.User, error)                 { return nil, nil }
func (r *stubUserRepo) Search(string) ([]*entity.User, error)         { return nil, nil }
func (r *stubUserRepo) ExistsByEmail(string, string) (bool, error)    { return false, nil }
func (r *stubUserRepo) ExistsByDocument(string, string) (bool, error) { return false, nil }

type stubDepositRepo struct{ deposits []*entity.Deposit }

func (r *stubDepositRepo) Create(*entity.Deposit) error                   { return nil }
func (r *stubDepositRepo) GetByID(string) (*entity.Deposit, error)        { return nil, nil }
func (r *stubDepositRepo) List() ([]*entity.Deposit, error)               { return nil, nil }
func (r *stubDepositRepo) ListByAccount(string) ([]*entity.Deposit, error) { return r.deposits, nil }

type stubTransferRepo struct {
	shipping  []*entity.Transfer
	receiving []*entity.Transfer
}

func (r *stubTransferRepo) Create(*entity.Transfer) error            { return nil }
func (r *stubTransferRepo) GetByID(string) (*entity.Transfer, error) { return nil, nil }
func (r *stubTransferRepo) List() ([]*entity.Transfer, error)        { return nil, nil }
func (r *stubTransferRepo) ListByShippingAccount(string) ([]*entity.Transfer, error) {
	return r.shipping, nil
}
func (r *stubTransferRepo) ListByReceivingAccount(string) ([]*entity.Transfer, error) {
	return r.receiving, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func day(n int) time.Time {
	return time.Date(2026, time.August, n, 12, 0, 0, 0, time.UTC)
}

// El extracto fusiona depósitos y transferencias en orden cronológico y el
// saldo acumulado del último movimiento coincide con el balance actual.
func TestBuild_FusionaYAcumula(t *testing.T) {
	account := &entity.Account{
		ID: "acc-1", UserID: "u1", Agency: "0001", Number: "123", Digit: "4",
		Type: "corriente", Balance: decimal.NewFromInt(40),
	}
	uc := statement.NewUseCase(
		&stubAccountRepo{account: account},
		&stubUserRepo{user: &entity.User{ID: "u1", Name: "José", Lastname: "Silva"}},
		&stubDepositRepo{deposits: []*entity.Deposit{
			{ID: "dep-1", AccountID: "acc-1", Amount: decimal.NewFromInt(100), CreatedAt: day(1)},
		}},
		&stubTransferRepo{
			shipping: []*entity.Transfer{
				{ID: "tr-1", ShippingAccountID: "acc-1", ReceivingAccountID: "acc-2", Amount: decimal.NewFromInt(70), CreatedAt: day(2)},
			},
			receiving: []*entity.Transfer{
				{ID: "tr-2", ShippingAccountID: "acc-2", ReceivingAccountID: "acc-1", Amount: decimal.NewFromInt(10), CreatedAt: day(3)},
			},
		},
		nil, nil,
	)

	st, err := uc.Build("acc-1")
	require.NoError(t, err)
	require.Len(t, st.Entries, 3)

	assert.Equal(t, []string{"dep-1", "tr-1", "tr-2"}, []string{
		st.Entries[0].ID, st.Entries[1].ID, st.Entries[2].ID,
	}, "los movimientos deben quedar en orden cronológico")

	assert.Equal(t, statement.EntryDeposit, st.Entries[0].Kind)
	assert.Equal(t, statement.EntryTransferOut, st.Entries[1].Kind)
	assert.Equal(t, statement.EntryTransferIn, st.Entries[2].Kind)

	assert.True(t, st.Entries[1].Amount.Equal(decimal.NewFromInt(-70)),
		"las transferencias enviadas llevan signo negativo")

	// Acumulado: 100 → 30 → 40, y el final coincide con el balance.
	assert.True(t, st.Entries[0].Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, st.Entries[1].Balance.Equal(decimal.NewFromInt(30)))
	assert.True(t, st.Entries[2].Balance.Equal(decimal.NewFromInt(40)))
	assert.True(t, st.Entries[2].Balance.Equal(st.Account.Balance),
		"el acumulado final debe coincidir con el balance actual")
}

func TestBuild_CuentaInexistente(t *testing.T) {
	uc := statement.NewUseCase(
		&stubAccountRepo{}, &stubUserRepo{}, &stubDepositRepo{}, &stubTransferRepo{}, nil, nil,
	)

	_, err := uc.Build("no-existe")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
