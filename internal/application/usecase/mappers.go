package usecase

import (
	"github.com/tu-usuario/banking-api/internal/application/dto"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
)

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Lastname:  u.Lastname,
		Document:  u.Document,
		Phone:     u.Phone,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		Agency:        a.Agency,
		Number:        a.Number,
		Digit:         a.Digit,
		CNPJ:          a.CNPJ,
		CorporateName: a.CorporateName,
		FantasyName:   a.FantasyName,
		Type:          a.Type,
		Balance:       a.Balance,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toDepositResponse(d *entity.Deposit) dto.DepositResponse {
	return dto.DepositResponse{
		ID:        d.ID,
		AccountID: d.AccountID,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	}
}

func toDepositResponses(list []*entity.Deposit) []dto.DepositResponse {
	out := make([]dto.DepositResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDepositResponse(d))
	}
	return out
}

func toTransferResponse(t *entity.Transfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:                 t.ID,
		ShippingAccountID:  t.ShippingAccountID,
		ReceivingAccountID: t.ReceivingAccountID,
		Amount:             t.Amount,
		CreatedAt:          t.CreatedAt,
	}
}

func toTransferResponses(list []*entity.Transfer) []dto.TransferResponse {
	out := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransferResponse(t))
	}
	return out
}
