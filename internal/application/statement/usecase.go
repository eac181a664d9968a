package statement

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banking-api/internal/domain"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

// UseCase genera el extracto de una cuenta en PDF o en OFX.
type UseCase struct {
	accountRepo  repository.AccountRepository
	userRepo     repository.UserRepository
	depositRepo  repository.DepositRepository
	transferRepo repository.TransferRepository
	pdfGen       PDFGenerator
	ofxBuilder   OFXBuilder
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
	depositRepo repository.DepositRepository,
	transferRepo repository.TransferRepository,
	pdfGen PDFGenerator,
	ofxBuilder OFXBuilder,
) *UseCase {
	return &UseCase{
		accountRepo:  accountRepo,
		userRepo:     userRepo,
		depositRepo:  depositRepo,
		transferRepo: transferRepo,
		pdfGen:       pdfGen,
		ofxBuilder:   ofxBuilder,
	}
}

// DownloadPDF genera el extracto en PDF.
// Retorna (pdfBytes, filename, nil) o domain.ErrAccountNotFound.
func (uc *UseCase) DownloadPDF(ctx context.Context, accountID string) ([]byte, string, error) {
	st, err := uc.Build(accountID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdfGen.GenerateStatementPDF(ctx, st)
	if err != nil {
		return nil, "", fmt.Errorf("extracto: generar pdf: %w", err)
	}
	filename := fmt.Sprintf("extracto-%s%s.pdf", st.Account.Number, st.Account.Digit)
	return pdfBytes, filename, nil
}

// DownloadOFX genera el extracto en formato OFX.
func (uc *UseCase) DownloadOFX(_ context.Context, accountID string) ([]byte, string, error) {
	st, err := uc.Build(accountID)
	if err != nil {
		return nil, "", err
	}
	ofxBytes, err := uc.ofxBuilder.BuildStatementOFX(st)
	if err != nil {
		return nil, "", fmt.Errorf("extracto: construir ofx: %w", err)
	}
	filename := fmt.Sprintf("extracto-%s%s.ofx", st.Account.Number, st.Account.Digit)
	return ofxBytes, filename, nil
}

// Build arma el extracto: carga cuenta y titular, fusiona depósitos y
// transferencias en orden cronológico y calcula el saldo acumulado. Como
// toda cuenta nace con saldo cero y solo el motor de transacciones lo muta,
// el acumulado del último movimiento coincide con el balance actual.
func (uc *UseCase) Build(accountID string) (*Statement, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	user, err := uc.userRepo.GetByID(account.UserID)
	if err != nil {
		return nil, err
	}

	deposits, err := uc.depositRepo.ListByAccount(accountID)
	if err != nil {
		return nil, err
	}
	shipping, err := uc.transferRepo.ListByShippingAccount(accountID)
	if err != nil {
		return nil, err
	}
	receiving, err := uc.transferRepo.ListByReceivingAccount(accountID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(deposits)+len(shipping)+len(receiving))
	for _, d := range deposits {
		entries = append(entries, Entry{
			ID:        d.ID,
			Kind:      EntryDeposit,
			Amount:    d.Amount,
			CreatedAt: d.CreatedAt,
		})
	}
	for _, t := range shipping {
		entries = append(entries, Entry{
			ID:             t.ID,
			Kind:           EntryTransferOut,
			CounterpartyID: t.ReceivingAccountID,
			Amount:         t.Amount.Neg(),
			CreatedAt:      t.CreatedAt,
		})
	}
	for _, t := range receiving {
		entries = append(entries, Entry{
			ID:             t.ID,
			Kind:           EntryTransferIn,
			CounterpartyID: t.ShippingAccountID,
			Amount:         t.Amount,
			CreatedAt:      t.CreatedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	running := decimal.Zero
	for i := range entries {
		running = running.Add(entries[i].Amount)
		entries[i].Balance = running
	}

	return &Statement{
		Account:     account,
		User:        user,
		Entries:     entries,
		GeneratedAt: time.Now(),
	}, nil
}
