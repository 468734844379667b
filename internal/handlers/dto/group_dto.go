package dto

import (
	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// ListMessagesQuery limita o histórico retornado
type ListMessagesQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

// SendMessageRequest representa uma mensagem nova
type SendMessageRequest struct {
	Message string   `json:"message" binding:"max=5000"`
	Images  []string `json:"images" binding:"omitempty,max=10,dive,max=2048"`
}

// MessagesReadResponse informa quantas mensagens foram marcadas
type MessagesReadResponse struct {
	Count int64 `json:"count"`
}

// ToMessageResponses converte o histórico do grupo (mesmo formato do evento em tempo real)
func ToMessageResponses(msgs []*entities.GroupMessage) []services.MessageEvent {
	out := make([]services.MessageEvent, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, services.NewMessageEvent(m))
	}
	return out
}
