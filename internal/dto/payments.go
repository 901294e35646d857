package dto

type ChargeRequestDTO struct {
	PhoneNumber   string  `json:"phoneNumber" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	ApplicationID int     `json:"applicationId,omitempty"`
}

type ChargeResponseDTO struct {
	Reference   string `json:"reference"`
	DisplayText string `json:"displayText"`
}
