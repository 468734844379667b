package dto

import (
	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
)

// NotificationResponse é uma notificação do usuário
type NotificationResponse struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data"`
	ReadAt    *string                `json:"read_at"`
	CreatedAt string                 `json:"created_at"`
}

// ToNotificationResponses converte a listagem
func ToNotificationResponses(items []*entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		resp := NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			CreatedAt: n.CreatedAt.UTC().Format(DateTimeLayout),
		}
		if n.ReadAt != nil {
			readAt := n.ReadAt.UTC().Format(DateTimeLayout)
			resp.ReadAt = &readAt
		}
		out = append(out, resp)
	}
	return out
}
