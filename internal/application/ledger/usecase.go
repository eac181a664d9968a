package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banking-api/internal/domain"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

// UseCase es el motor de transacciones del ledger: el único componente que
// muta el balance de una cuenta, siempre junto con su registro de auditoría
// (Deposit o Transfer) dentro de una única transacción con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type UseCase struct {
	txRunner    TxRunner
	accountRepo repository.AccountRepository
}

// NewUseCase construye el motor de transacciones.
func NewUseCase(txRunner TxRunner, accountRepo repository.AccountRepository) *UseCase {
	return &UseCase{txRunner: txRunner, accountRepo: accountRepo}
}

// Deposit acredita amount a la cuenta y registra el depósito, como unidad
// atómica. Devuelve el ID del depósito creado.
// Errores: ErrInvalidAmount (amount <= 0), ErrAccountNotFound.
func (uc *UseCase) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (string, error) {
	id, err := uc.deposit(ctx, accountID, amount)
	if errors.Is(err, domain.ErrTxSerialization) {
		// Reintento único desde las precondiciones: las lecturas previas
		// quedaron invalidadas por el aborto.
		log.Warn().Str("account_id", accountID).Msg("depósito abortado por serialización, reintentando")
		id, err = uc.deposit(ctx, accountID, amount)
	}
	return id, err
}

func (uc *UseCase) deposit(ctx context.Context, accountID string, amount decimal.Decimal) (string, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidAmount
	}
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", domain.ErrAccountNotFound
	}

	now := time.Now()
	depositID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		accountRepo repository.AccountRepository,
		depositRepo repository.DepositRepository,
		_ repository.TransferRepository,
	) error {
		// Re-lee la cuenta con la fila bloqueada: el balance de fuera de la
		// transacción puede estar obsoleto.
		locked, err := accountRepo.GetForUpdate(accountID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrAccountNotFound
		}
		if err := accountRepo.UpdateBalance(accountID, locked.Balance.Add(amount)); err != nil {
			return err
		}
		return depositRepo.Create(&entity.Deposit{
			ID:        depositID,
			AccountID: accountID,
			Amount:    amount,
			CreatedAt: now,
		})
	})
	if err != nil {
		return "", err
	}

	log.Info().
		Str("deposit_id", depositID).
		Str("account_id", accountID).
		Str("amount", amount.StringFixed(2)).
		Msg("depósito aplicado")
	return depositID, nil
}

// Transfer debita amount de la cuenta de envío y lo acredita en la de
// recepción, registrando la transferencia, como unidad atómica. Devuelve el
// ID de la transferencia creada.
//
// Precondiciones, en orden (la primera falla gana): cuenta de envío existe,
// cuenta de recepción existe, no son la misma cuenta, saldo suficiente.
// El saldo se verifica dentro de la transacción, con ambas filas bloqueadas,
// para cerrar la carrera de doble gasto: dos transferencias concurrentes no
// pueden pasar la verificación contra un balance obsoleto.
func (uc *UseCase) Transfer(ctx context.Context, shippingID, receivingID string, amount decimal.Decimal) (string, error) {
	id, err := uc.transfer(ctx, shippingID, receivingID, amount)
	if errors.Is(err, domain.ErrTxSerialization) {
		log.Warn().
			Str("shipping_account_id", shippingID).
			Str("receiving_account_id", receivingID).
			Msg("transferencia abortada por serialización, reintentando")
		id, err = uc.transfer(ctx, shippingID, receivingID, amount)
	}
	return id, err
}

func (uc *UseCase) transfer(ctx context.Context, shippingID, receivingID string, amount decimal.Decimal) (string, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidAmount
	}
	shipping, err := uc.accountRepo.GetByID(shippingID)
	if err != nil {
		return "", err
	}
	if shipping == nil {
		return "", domain.ErrAccountNotFound
	}
	receiving, err := uc.accountRepo.GetByID(receivingID)
	if err != nil {
		return "", err
	}
	if receiving == nil {
		return "", domain.ErrAccountNotFound
	}
	if shippingID == receivingID {
		return "", domain.ErrSameAccount
	}

	now := time.Now()
	transferID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		accountRepo repository.AccountRepository,
		_ repository.DepositRepository,
		transferRepo repository.TransferRepository,
	) error {
		// Orden de bloqueo determinista: siempre la cuenta de ID menor
		// primero. Dos transferencias cruzadas entre el mismo par de cuentas
		// adquieren los locks en el mismo orden y no pueden interbloquearse.
		firstID, secondID := shippingID, receivingID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		first, err := accountRepo.GetForUpdate(firstID)
		if err != nil {
			return err
		}
		second, err := accountRepo.GetForUpdate(secondID)
		if err != nil {
			return err
		}
		if first == nil || second == nil {
			return domain.ErrAccountNotFound
		}

		lockedShipping, lockedReceiving := first, second
		if firstID != shippingID {
			lockedShipping, lockedReceiving = second, first
		}

		// Verificación de saldo con la fila bloqueada, no contra la lectura
		// previa a la transacción.
		if lockedShipping.Balance.LessThan(amount) {
			return domain.ErrInsufficientBalance
		}
		if err := accountRepo.UpdateBalance(shippingID, lockedShipping.Balance.Sub(amount)); err != nil {
			return err
		}
		if err := accountRepo.UpdateBalance(receivingID, lockedReceiving.Balance.Add(amount)); err != nil {
			return err
		}
		return transferRepo.Create(&entity.Transfer{
			ID:                 transferID,
			ShippingAccountID:  shippingID,
			ReceivingAccountID: receivingID,
			Amount:             amount,
			CreatedAt:          now,
		})
	})
	if err != nil {
		return "", err
	}

	log.Info().
		Str("transfer_id", transferID).
		Str("shipping_account_id", shippingID).
		Str("receiving_account_id", receivingID).
		Str("amount", amount.StringFixed(2)).
		Msg("transferencia aplicada")
	return transferID, nil
}
