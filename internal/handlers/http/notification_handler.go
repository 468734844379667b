package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// NotificationHandler lida com as notificações do usuário atual
type NotificationHandler struct {
	notificationService *services.NotificationService
	streams             StreamServer
}

// NewNotificationHandler cria um novo NotificationHandler
func NewNotificationHandler(notificationService *services.NotificationService, streams StreamServer) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		streams:             streams,
	}
}

// List retorna as notificações mais recentes
// @Summary Minhas notificações
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]dto.NotificationResponse}
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.notificationService.List(c.Request.Context(), user)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "notification.list_retrieved", dto.ToNotificationResponses(items))
}

// MarkRead marca uma notificação como lida
// @Summary Marcar notificação como lida
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da notificação"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), user, c.Param("id")); err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "notification.marked_read", nil)
}

// Stream abre o canal WebSocket pessoal do usuário
func (h *NotificationHandler) Stream(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	topic := ports.RecipientTopic(string(entities.NotifiableUser), user.ID)
	if err := h.streams.ServeWS(c.Writer, c.Request, topic); err != nil {
		_ = c.Error(err)
	}
}
