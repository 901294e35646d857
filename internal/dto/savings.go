package dto

import (
	"time"

	"github.com/helapesa/helapesa/internal/domain"
)

type DepositRequestDTO struct {
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	MpesaMessage string  `json:"mpesaMessage"`
}

type DepositDTO struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	Amount          float64   `json:"amount"`
	TransactionCode string    `json:"transactionCode"`
	Verified        bool      `json:"verified"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewDepositDTO(d *domain.SavingsDeposit) DepositDTO {
	return DepositDTO{
		ID:              d.ID,
		UserID:          d.UserID,
		Amount:          d.Amount,
		TransactionCode: d.TransactionCode,
		Verified:        d.Verified,
		CreatedAt:       d.CreatedAt,
	}
}

func NewDepositListDTO(list []domain.SavingsDeposit) []DepositDTO {
	out := make([]DepositDTO, 0, len(list))
	for i := range list {
		out = append(out, NewDepositDTO(&list[i]))
	}
	return out
}

type BalanceDTO struct {
	Balance float64 `json:"balance"`
}

type WithdrawRequestDTO struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
}

type WithdrawalDTO struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Amount      float64   `json:"amount"`
	PhoneNumber string    `json:"phoneNumber"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewWithdrawalDTO(w *domain.Withdrawal) WithdrawalDTO {
	return WithdrawalDTO{
		ID:          w.ID,
		UserID:      w.UserID,
		Amount:      w.Amount,
		PhoneNumber: w.PhoneNumber,
		Status:      w.Status,
		CreatedAt:   w.CreatedAt,
	}
}

func NewWithdrawalListDTO(list []domain.Withdrawal) []WithdrawalDTO {
	out := make([]WithdrawalDTO, 0, len(list))
	for i := range list {
		out = append(out, NewWithdrawalDTO(&list[i]))
	}
	return out
}
