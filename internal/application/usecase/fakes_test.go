package usecase_test

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banking-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error      { delete(r.users, id); return nil }
func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *fakeUserRepo) Search(query string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		haystack := strings.ToLower(u.Name + " " + u.Lastname + " " + u.Document + " " + u.Email)
		if strings.Contains(haystack, query) {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) ExistsByEmail(email, excludeID string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeUserRepo) ExistsByDocument(document, excludeID string) (bool, error) {
	for _, u := range r.users {
		if u.Document == document && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
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
func (r *fakeAccountRepo) Search(query string) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.accounts {
		if a.UserID == query {
			out = append(out, a)
			continue
		}
		haystack := strings.ToLower(a.Agency + " " + a.Number + " " + a.CNPJ + " " + a.CorporateName + " " + a.FantasyName)
		if strings.Contains(haystack, query) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAccountRepo) GetForUpdate(id string) (*entity.Account, error) { return r.GetByID(id) }
func (r *fakeAccountRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	r.accounts[id].Balance = balance
	return nil
}
func (r *fakeAccountRepo) ExistsByCNPJ(cnpj, excludeID string) (bool, error) {
	for _, a := range r.accounts {
		if a.CNPJ != "" && a.CNPJ == cnpj && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeAccountRepo) ExistsByUserAndClass(userID, class string) (bool, error) {
	for _, a := range r.accounts {
		if a.UserID == userID && a.Class() == class {
			return true, nil
		}
	}
	return false, nil
}

type fakeDepositRepo struct {
	deposits []*entity.Deposit
}

func (r *fakeDepositRepo) Create(d *entity.Deposit) error { r.deposits = append(r.deposits, d); return nil }
func (r *fakeDepositRepo) GetByID(id string) (*entity.Deposit, error) {
	for _, d := range r.deposits {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}
func (r *fakeDepositRepo) List() ([]*entity.Deposit, error) { return r.deposits, nil }
func (r *fakeDepositRepo) ListByAccount(accountID string) ([]*entity.Deposit, error) {
	var out []*entity.Deposit
	for _, d := range r.deposits {
		if d.AccountID == accountID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeTransferRepo struct {
	transfers []*entity.Transfer
}

func (r *fakeTransferRepo) Create(t *entity.Transfer) error {
	r.transfers = append(r.transfers, t)
	return nil
}
func (r *fakeTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	for _, t := range r.transfers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTransferRepo) List() ([]*entity.Transfer, error) { return r.transfers, nil }
func (r *fakeTransferRepo) ListByShippingAccount(accountID string) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range r.transfers {
		if t.ShippingAccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *fakeTransferRepo) ListByReceivingAccount(accountID string) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range r.transfers {
		if t.ReceivingAccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}
