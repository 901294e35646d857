package dto

import (
	"time"

	"github.com/helapesa/helapesa/internal/domain"
)

type ApplyRequestDTO struct {
	FullName           string `json:"fullName" validate:"required"`
	IDNumber           string `json:"idNumber" validate:"required"`
	WhatsappNumber     string `json:"whatsappNumber" validate:"required"`
	MpesaNumber        string `json:"mpesaNumber" validate:"required"`
	NextOfKinName      string `json:"nextOfKinName" validate:"required"`
	NextOfKinContact   string `json:"nextOfKinContact" validate:"required"`
	IncomeLevel        string `json:"incomeLevel" validate:"required"`
	EmploymentStatus   string `json:"employmentStatus" validate:"required"`
	Occupation         string `json:"occupation"`
	ContactPersonName  string `json:"contactPersonName"`
	ContactPersonPhone string `json:"contactPersonPhone"`
	LoanReason         string `json:"loanReason"`
}

type ApplicationDTO struct {
	ID               int       `json:"id"`
	FullName         string    `json:"fullName"`
	IncomeLevel      string    `json:"incomeLevel"`
	EmploymentStatus string    `json:"employmentStatus"`
	LoanLimit        int       `json:"loanLimit"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewApplicationDTO(app *domain.LoanApplication) ApplicationDTO {
	return ApplicationDTO{
		ID:               app.ID,
		FullName:         app.FullName,
		IncomeLevel:      string(app.IncomeLevel),
		EmploymentStatus: string(app.EmploymentStatus),
		LoanLimit:        app.LoanLimit,
		Status:           app.Status,
		CreatedAt:        app.CreatedAt,
	}
}

func NewApplicationListDTO(apps []domain.LoanApplication) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationDTO(&apps[i]))
	}
	return out
}

type DecideRequestDTO struct {
	Approve bool `json:"approve"`
}

type DisburseRequestDTO struct {
	ApplicationID int     `json:"applicationId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

type DisbursementDTO struct {
	ID              int       `json:"id"`
	ApplicationID   int       `json:"applicationId"`
	LoanAmount      float64   `json:"loanAmount"`
	ProcessingFee   float64   `json:"processingFee"`
	TransactionCode string    `json:"transactionCode"`
	PaymentVerified bool      `json:"paymentVerified"`
	Disbursed       bool      `json:"disbursed"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewDisbursementDTO(d *domain.LoanDisbursement) DisbursementDTO {
	return DisbursementDTO{
		ID:              d.ID,
		ApplicationID:   d.ApplicationID,
		LoanAmount:      d.LoanAmount,
		ProcessingFee:   d.ProcessingFee,
		TransactionCode: d.TransactionCode,
		PaymentVerified: d.PaymentVerified,
		Disbursed:       d.Disbursed,
		CreatedAt:       d.CreatedAt,
	}
}

func NewDisbursementListDTO(list []domain.LoanDisbursement) []DisbursementDTO {
	out := make([]DisbursementDTO, 0, len(list))
	for i := range list {
		out = append(out, NewDisbursementDTO(&list[i]))
	}
	return out
}
