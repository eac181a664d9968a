package ledger_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/banking-api/internal/application/ledger"
	"github.com/tu-usuario/banking-api/internal/domain"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeAccountRepo guarda cuentas en un mapa y registra el orden en que se
// piden los bloqueos de fila. El mutex permite usarlo desde varias goroutines.
type fakeAccountRepo struct {
	mu        sync.Mutex
	accounts  map[string]*entity.Account
	lockOrder []string
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[string]*entity.Account)}
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) Create(a *entity.Account) error { r.accounts[a.ID] = a; return nil }
func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

// get es la lectura sin lock; los métodos públicos ya sostienen el mutex.
func (r *fakeAccountRepo) get(id string) (*entity.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
func (r *fakeAccountRepo) Update(a *entity.Account) error { r.accounts[a.ID] = a; return nil }
func (r *fakeAccountRepo) Delete(id string) error         { delete(r.accounts, id); return nil }
func (r *fakeAccountRepo) List() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeAccountRepo) Search(string) ([]*entity.Account, error) { return nil, nil }
func (r *fakeAccountRepo) GetForUpdate(id string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lockOrder = append(r.lockOrder, id)
	return r.get(id)
}
func (r *fakeAccountRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Balance = balance
	return nil
}
func (r *fakeAccountRepo) ExistsByCNPJ(string, string) (bool, error)         { return false, nil }
func (r *fakeAccountRepo) ExistsByUserAndClass(string, string) (bool, error) { return false, nil }

func (r *fakeAccountRepo) balance(id string) decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts[id].Balance
}

type fakeDepositRepo struct {
	deposits []*entity.Deposit
}

func (r *fakeDepositRepo) Create(d *entity.Deposit) error { r.deposits = append(r.deposits, d); return nil }
func (r *fakeDepositRepo) GetByID(string) (*entity.Deposit, error)       { return nil, nil }
func (r *fakeDepositRepo) List() ([]*entity.Deposit, error)              { return r.deposits, nil }
func (r *fakeDepositRepo) ListByAccount(string) ([]*entity.Deposit, error) { return r.deposits, nil }

type fakeTransferRepo struct {
	transfers []*entity.Transfer
}

func (r *fakeTransferRepo) Create(t *entity.Transfer) error {
	r.transfers = append(r.transfers, t)
	return nil
}
func (r *fakeTransferRepo) GetByID(string) (*entity.Transfer, error) { return nil, nil }
func (r *fakeTransferRepo) List() ([]*entity.Transfer, error)        { return r.transfers, nil }
func (r *fakeTransferRepo) ListByShippingAccount(string) ([]*entity.Transfer, error) {
	return r.transfers, nil
}
func (r *fakeTransferRepo) ListByReceivingAccount(string) ([]*entity.Transfer, error) {
	return r.transfers, nil
}

// fakeTxRunner ejecuta fn directamente sobre los fakes. Si failures > 0,
// simula ese número de abortos por serialización sin invocar fn (como un
// rollback real: nada queda aplicado). El mutex serializa las unidades de
// trabajo igual que lo hacen las transacciones con filas bloqueadas.
type fakeTxRunner struct {
	mu           sync.Mutex
	accountRepo  *fakeAccountRepo
	depositRepo  *fakeDepositRepo
	transferRepo *fakeTransferRepo
	failures     int
	runs         int
}

func (tr *fakeTxRunner) Run(_ context.Context, fn func(
	repository.AccountRepository,
	repository.DepositRepository,
	repository.TransferRepository,
) error) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.runs++
	if tr.failures > 0 {
		tr.failures--
		return fmt.Errorf("%w: could not serialize access", domain.ErrTxSerialization)
	}
	return fn(tr.accountRepo, tr.depositRepo, tr.transferRepo)
}

type fixture struct {
	uc        *ledger.UseCase
	accounts  *fakeAccountRepo
	deposits  *fakeDepositRepo
	transfers *fakeTransferRepo
	txRunner  *fakeTxRunner
}

func newFixture(accounts ...*entity.Account) *fixture {
	accountRepo := newFakeAccountRepo(accounts...)
	depositRepo := &fakeDepositRepo{}
	transferRepo := &fakeTransferRepo{}
	txRunner := &fakeTxRunner{
		accountRepo:  accountRepo,
		depositRepo:  depositRepo,
		transferRepo: transferRepo,
	}
	return &fixture{
		uc:        ledger.NewUseCase(txRunner, accountRepo),
		accounts:  accountRepo,
		deposits:  depositRepo,
		transfers: transferRepo,
		txRunner:  txRunner,
	}
}

func account(id string, balance int64) *entity.Account {
	return &entity.Account{
		ID:      id,
		UserID:  "user-1",
		Agency:  "0001",
		Number:  "12345",
		Digit:   "6",
		Type:    "corriente",
		Balance: decimal.NewFromInt(balance),
	}
}

const (
	acctA = "aaaaaaaa-0000-0000-0000-000000000001"
	acctB = "bbbbbbbb-0000-0000-0000-000000000002"
)

// ──────────────────────────────────────────────────────────────────────────────
// Depósitos
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: depósito válido acredita el balance y registra el movimiento.
func TestDeposit_AcreditaYRegistra(t *testing.T) {
	f := newFixture(account(acctA, 100))

	id, err := f.uc.Deposit(context.Background(), acctA, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.NotEmpty(t, id, "debe devolver el ID del depósito creado")

	assert.True(t, f.accounts.balance(acctA).Equal(decimal.NewFromInt(150)),
		"el balance debe pasar de 100 a 150")
	require.Len(t, f.deposits.deposits, 1, "debe registrarse exactamente un depósito")
	assert.Equal(t, id, f.deposits.deposits[0].ID)
	assert.True(t, f.deposits.deposits[0].Amount.Equal(decimal.NewFromInt(50)))
}

// Caso 2: montos cero o negativos se rechazan sin tocar nada.
func TestDeposit_MontoInvalido(t *testing.T) {
	f := newFixture(account(acctA, 100))

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := f.uc.Deposit(context.Background(), acctA, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
	assert.True(t, f.accounts.balance(acctA).Equal(decimal.NewFromInt(100)),
		"el balance no debe cambiar")
	assert.Empty(t, f.deposits.deposits, "no debe registrarse ningún depósito")
}

// Caso 3: cuenta inexistente.
func TestDeposit_CuentaInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Deposit(context.Background(), acctA, decimal.NewFromInt(50))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// Caso 4: un aborto por serialización se reintenta una vez y termina bien.
func TestDeposit_ReintentaTrasSerializacion(t *testing.T) {
	f := newFixture(account(acctA, 100))
	f.txRunner.failures = 1

	id, err := f.uc.Deposit(context.Background(), acctA, decimal.NewFromInt(25))
	require.NoError(t, err, "el reintento debe completar el depósito")
	assert.NotEmpty(t, id)
	assert.Equal(t, 2, f.txRunner.runs, "debe haber exactamente dos intentos")
	assert.True(t, f.accounts.balance(acctA).Equal(decimal.NewFromInt(125)),
		"el monto debe aplicarse una sola vez")
	assert.Len(t, f.deposits.deposits, 1)
}

// Caso 5: dos abortos consecutivos agotan el reintento y el error se propaga.
func TestDeposit_DosSerializacionesPropagaError(t *testing.T) {
	f := newFixture(account(acctA, 100))
	f.txRunner.failures = 2

	_, err := f.uc.Deposit(context.Background(), acctA, decimal.NewFromInt(25))
	assert.ErrorIs(t, err, domain.ErrTxSerialization)
	assert.Equal(t, 2, f.txRunner.runs, "solo se reintenta una vez")
	assert.True(t, f.accounts.balance(acctA).Equal(decimal.NewFromInt(100)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencias
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: transferencia válida debita, acredita y registra; el total de
// dinero entre ambas cuentas se conserva.
func TestTransfer_DebitaAcreditaYConserva(t *testing.T) {
	f := newFixture(account(acctA, 100), account(acctB, 0))

	id, err := f.uc.Transfer(context.Background(), acctA, acctB, decimal.NewFromInt(60))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	assert.True(t, f.accounts.balance(acctA).Equal(decimal.NewFromInt(40)),
		"la cuenta de envío debe quedar en 40")
	assert.True(t, f.accounts.balance(acctB).Equal(decimal.NewFromInt(60)),
		"la cuenta de recepción debe quedar en 60")

	total := f.accounts.balance(acctA).Add(f.accounts.balance(acctB))
	assert.True(t, total.Equal(decimal.NewFromInt(100)),
		"la suma de balances debe conservarse")

	require.Len(t, f.transfers.transfers, 1)
	tr := f.transfers.transfers[0]
	assert.Equal(t, acctA, tr.ShippingAccountID)
	assert.Equal(t, acctB, tr.ReceivingAccountID)
	assert.True(t, tr.Amount.Equal(decimal.NewFromInt(60)))
}

// Caso 2: saldo insuficiente rechaza la operación y no toca ningún balance.
func TestTransfer_SaldoInsuficienteNoMutaNada(t *testing.T) {
	f := newFixture(account(acctA, 50), account(acctB, 10))

	_, err := f.uc.Transfer(context.Background(), acctA, acctB, decimal.NewFromInt(60))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	assert.True(t, f.accounts.balance(acctA).Equal(decimal.NewFromInt(50)))
	assert.True(t, f.accounts.balance(acctB).Equal(decimal.NewFromInt(10)))
	assert.Empty(t, f.transfers.transfers, "no debe registrarse ninguna transferencia")
}

// Caso 3: transferir la totalidad del saldo es válido (queda en cero).
func TestTransfer_SaldoExactoQuedaEnCero(t *testing.T) {
	f := newFixture(account(acctA, 100), account(acctB, 0))

	_, err := f.uc.Transfer(context.Background(), acctA, acctB, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, f.accounts.balance(acctA).IsZero())
	assert.True(t, f.accounts.balance(acctB).Equal(decimal.NewFromInt(100)))
}

// Caso 4: misma cuenta de envío y recepción.
func TestTransfer_MismaCuenta(t *testing.T) {
	f := newFixture(account(acctA, 100))

	_, err := f.uc.Transfer(context.Background(), acctA, acctA, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrSameAccount)
	assert.True(t, f.accounts.balance(acctA).Equal(decimal.NewFromInt(100)))
}

// Caso 5: cuentas inexistentes; la de envío se verifica primero.
func TestTransfer_CuentaInexistente(t *testing.T) {
	f := newFixture(account(acctA, 100))

	_, err := f.uc.Transfer(context.Background(), "no-existe", acctA, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = f.uc.Transfer(context.Background(), acctA, "no-existe", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// Caso 6: monto inválido.
func TestTransfer_MontoInvalido(t *testing.T) {
	f := newFixture(account(acctA, 100), account(acctB, 0))

	_, err := f.uc.Transfer(context.Background(), acctA, acctB, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// Caso 7: los bloqueos de fila siempre se adquieren en el mismo orden
// (ID menor primero), sin importar la dirección de la transferencia.
func TestTransfer_OrdenDeBloqueoDeterminista(t *testing.T) {
	f := newFixture(account(acctA, 100), account(acctB, 100))

	_, err := f.uc.Transfer(context.Background(), acctB, acctA, decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = f.uc.Transfer(context.Background(), acctA, acctB, decimal.NewFromInt(10))
	require.NoError(t, err)

	require.Len(t, f.accounts.lockOrder, 4)
	assert.Equal(t, []string{acctA, acctB, acctA, acctB}, f.accounts.lockOrder,
		"ambas direcciones deben bloquear primero la cuenta de ID menor")
}

// Caso 8: aborto por serialización en la transferencia se reintenta una vez.
func TestTransfer_ReintentaTrasSerializacion(t *testing.T) {
	f := newFixture(account(acctA, 100), account(acctB, 0))
	f.txRunner.failures = 1

	_, err := f.uc.Transfer(context.Background(), acctA, acctB, decimal.NewFromInt(30))
	require.NoError(t, err)
	assert.Equal(t, 2, f.txRunner.runs)
	assert.True(t, f.accounts.balance(acctA).Equal(decimal.NewFromInt(70)),
		"el débito debe aplicarse una sola vez")
	assert.Len(t, f.transfers.transfers, 1)
}

// Caso 9: dos transferencias concurrentes que juntas exceden el saldo de la
// misma cuenta. La relectura del balance bajo bloqueo de fila garantiza que
// a lo sumo una complete y que el balance nunca quede negativo.
func TestTransfer_ConcurrentesNoSobregiran(t *testing.T) {
	f := newFixture(account(acctA, 100), account(acctB, 0))

	var wg sync.WaitGroup
	var errs [2]error
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Transfer(context.Background(), acctA, acctB, decimal.NewFromInt(60))
		}(i)
	}
	wg.Wait()

	var oks, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			oks++
		case assert.ErrorIs(t, err, domain.ErrInsufficientBalance):
			insufficient++
		}
	}
	assert.Equal(t, 1, oks, "solo una de las dos transferencias debe completar")
	assert.Equal(t, 1, insufficient, "la otra debe rechazarse por saldo insuficiente")

	assert.False(t, f.accounts.balance(acctA).IsNegative(),
		"el balance de la cuenta de envío nunca puede ser negativo")
	assert.True(t, f.accounts.balance(acctA).Equal(decimal.NewFromInt(40)))
	assert.True(t, f.accounts.balance(acctB).Equal(decimal.NewFromInt(60)))
	assert.Len(t, f.transfers.transfers, 1, "solo debe registrarse una transferencia")
}
