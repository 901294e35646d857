package dto

import "github.com/helapesa/helapesa/internal/chat"

type ChatRequestDTO struct {
	Messages []chat.Message `json:"messages" validate:"required"`
}
