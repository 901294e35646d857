package chathandler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/helapesa/helapesa/internal/chat"
	"github.com/helapesa/helapesa/internal/dto"
	"github.com/helapesa/helapesa/pkg/utils"
	"go.uber.org/zap"
)

type Service interface {
	Stream(ctx context.Context, messages []chat.Message) (io.ReadCloser, error)
}

type ChatHandler struct {
	chatService Service
}

func New(chatService Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat godoc
//
//	@Summary		Assistant chat completion
//	@Description	Streams the assistant reply as server-sent events
//	@Tags			Chat
//	@Accept			json
//	@Produce		text/event-stream
//	@Security		BearerAuth
//	@Param			request	body	dto.ChatRequestDTO	true	"Conversation so far"
//	@Success		200
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		402	{object}	utils.Response	"Payment required"
//	@Failure		429	{object}	utils.Response	"Rate limits exceeded"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upstream, err := h.chatService.Stream(r.Context(), req.Messages)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrRateLimited):
			utils.RespondWithError(w, http.StatusTooManyRequests, "Rate limits exceeded, please try again later.")
		case errors.Is(err, chat.ErrPaymentRequired):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Payment required.")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "AI gateway error")
		}
		return
	}
	defer upstream.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 4096)
	for {
		n, readErr := upstream.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				zap.L().Debug("chat stream interrupted", zap.Error(readErr))
			}
			return
		}
	}
}
