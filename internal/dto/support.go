package dto

import (
	"time"

	"github.com/helapesa/helapesa/internal/domain"
)

type SupportRequestDTO struct {
	Message string `json:"message" validate:"required"`
}

type SupportReplyDTO struct {
	Reply string `json:"reply" validate:"required"`
}

type SupportDTO struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	Message    string    `json:"message"`
	AdminReply string    `json:"adminReply,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewSupportDTO(s *domain.SupportRequest) SupportDTO {
	return SupportDTO{
		ID:         s.ID,
		UserID:     s.UserID,
		Message:    s.Message,
		AdminReply: s.AdminReply,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
	}
}

func NewSupportListDTO(list []domain.SupportRequest) []SupportDTO {
	out := make([]SupportDTO, 0, len(list))
	for i := range list {
		out = append(out, NewSupportDTO(&list[i]))
	}
	return out
}
