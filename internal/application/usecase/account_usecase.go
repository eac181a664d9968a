package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banking-api/internal/application/dto"
	"github.com/tu-usuario/banking-api/internal/domain"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

// AccountUseCase casos de uso de cuentas: CRUD más las reglas de apertura.
// Un usuario puede tener a lo sumo una cuenta PF y una PJ, y el CNPJ es
// único en todo el sistema. El balance nunca se toca por esta vía; eso es
// exclusivo del motor de transacciones.
type AccountUseCase struct {
	accountRepo  repository.AccountRepository
	userRepo     repository.UserRepository
	depositRepo  repository.DepositRepository
	transferRepo repository.TransferRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
	depositRepo repository.DepositRepository,
	transferRepo repository.TransferRepository,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:  accountRepo,
		userRepo:     userRepo,
		depositRepo:  depositRepo,
		transferRepo: transferRepo,
	}
}

// Create abre una cuenta con balance cero y devuelve su ID.
// Orden de verificación: usuario existe, CNPJ único (si es PJ), límite de
// una cuenta por clase (PF/PJ) por usuario.
// Errores: ErrInvalidInput, ErrUserNotFound, ErrCNPJExists, ErrAccountLimit.
func (uc *AccountUseCase) Create(in dto.CreateAccountRequest) (string, error) {
	if in.UserID == "" || in.Agency == "" || in.Number == "" || in.Digit == "" || in.Type == "" {
		return "", domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	class := entity.AccountClassPF
	if in.CNPJ != "" {
		class = entity.AccountClassPJ
		exists, err := uc.accountRepo.ExistsByCNPJ(in.CNPJ, "")
		if err != nil {
			return "", err
		}
		if exists {
			return "", domain.ErrCNPJExists
		}
	}
	exists, err := uc.accountRepo.ExistsByUserAndClass(in.UserID, class)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrAccountLimit
	}

	now := time.Now()
	account := &entity.Account{
		ID:            uuid.New().String(),
		UserID:        in.UserID,
		Agency:        in.Agency,
		Number:        in.Number,
		Digit:         in.Digit,
		CNPJ:          in.CNPJ,
		CorporateName: in.CorporateName,
		FantasyName:   in.FantasyName,
		Type:          in.Type,
		Balance:       decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return "", err
	}
	return account.ID, nil
}

// GetByID arma el modelo de lectura compuesto de una cuenta: la cuenta,
// su titular y el historial completo (depósitos y transferencias, estas
// últimas partidas en enviadas y recibidas). Devuelve (nil, nil) si la
// cuenta no existe.
func (uc *AccountUseCase) GetByID(id string) (*dto.AccountDetailResponse, error) {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}

	detail := &dto.AccountDetailResponse{AccountResponse: *toAccountResponse(account)}

	user, err := uc.userRepo.GetByID(account.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		detail.User = toUserResponse(user)
	}

	deposits, err := uc.depositRepo.ListByAccount(id)
	if err != nil {
		return nil, err
	}
	shipping, err := uc.transferRepo.ListByShippingAccount(id)
	if err != nil {
		return nil, err
	}
	receiving, err := uc.transferRepo.ListByReceivingAccount(id)
	if err != nil {
		return nil, err
	}
	detail.Transactions = dto.TransactionsResponse{
		Deposits: toDepositResponses(deposits),
		Transfers: dto.TransferSplitResponse{
			Shipping:  toTransferResponses(shipping),
			Receiving: toTransferResponses(receiving),
		},
	}
	return detail, nil
}

// Update actualiza los datos de una cuenta. El CNPJ solo se reemplaza si la
// cuenta ya era PJ y el nuevo valor no está en uso por otra cuenta; una
// cuenta PF no se convierte en PJ por update (eso es abrir otra cuenta).
func (uc *AccountUseCase) Update(id string, in dto.UpdateAccountRequest) error {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}
	if in.CNPJ != "" && account.CNPJ != "" && in.CNPJ != account.CNPJ {
		exists, err := uc.accountRepo.ExistsByCNPJ(in.CNPJ, id)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrCNPJExists
		}
		account.CNPJ = in.CNPJ
	}
	if account.CNPJ != "" {
		if in.CorporateName != "" {
			account.CorporateName = in.CorporateName
		}
		if in.FantasyName != "" {
			account.FantasyName = in.FantasyName
		}
	}
	if in.Agency != "" {
		account.Agency = in.Agency
	}
	if in.Number != "" {
		account.Number = in.Number
	}
	if in.Digit != "" {
		account.Digit = in.Digit
	}
	if in.Type != "" {
		account.Type = in.Type
	}
	account.UpdatedAt = time.Now()
	return uc.accountRepo.Update(account)
}

// Delete elimina una cuenta y, en cascada, sus depósitos y transferencias.
func (uc *AccountUseCase) Delete(id string) error {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}
	return uc.accountRepo.Delete(id)
}

// List lista todas las cuentas (sin historial).
func (uc *AccountUseCase) List() ([]dto.AccountResponse, error) {
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}

// Search busca cuentas por texto libre (user_id, agencia, número, CNPJ,
// razón social o nombre fantasía). Un término vacío equivale a listar todo.
func (uc *AccountUseCase) Search(query string) ([]dto.AccountResponse, error) {
	q := normalizeQuery(query)
	if q == "" {
		return uc.List()
	}
	accounts, err := uc.accountRepo.Search(q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}
