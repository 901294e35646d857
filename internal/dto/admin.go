package dto

import "github.com/helapesa/helapesa/internal/service/adminservice"

type OverviewDTO struct {
	Applications  []ApplicationDTO  `json:"applications"`
	Support       []SupportDTO      `json:"support"`
	Withdrawals   []WithdrawalDTO   `json:"withdrawals"`
	Deposits      []DepositDTO      `json:"deposits"`
	Disbursements []DisbursementDTO `json:"disbursements"`

	PendingApplications int `json:"pendingApplications"`
	ApprovedLoans       int `json:"approvedLoans"`
	PendingSupport      int `json:"pendingSupport"`
	PendingWithdrawals  int `json:"pendingWithdrawals"`
	UnverifiedDeposits  int `json:"unverifiedDeposits"`
}

func NewOverviewDTO(o *adminservice.Overview) OverviewDTO {
	return OverviewDTO{
		Applications:        NewApplicationListDTO(o.Applications),
		Support:             NewSupportListDTO(o.Support),
		Withdrawals:         NewWithdrawalListDTO(o.Withdrawals),
		Deposits:            NewDepositListDTO(o.Deposits),
		Disbursements:       NewDisbursementListDTO(o.Disbursements),
		PendingApplications: o.PendingApplications,
		ApprovedLoans:       o.ApprovedLoans,
		PendingSupport:      o.PendingSupport,
		PendingWithdrawals:  o.PendingWithdrawals,
		UnverifiedDeposits:  o.UnverifiedDeposits,
	}
}
