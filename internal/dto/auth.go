package dto

type RegisterRequestDTO struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

type RequestResetDTO struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type RequestResetResponseDTO struct {
	Message string `json:"message"`
}

type ResetPasswordDTO struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Code        string `json:"code" validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type ResetPasswordResponseDTO struct {
	Message string `json:"message"`
}
