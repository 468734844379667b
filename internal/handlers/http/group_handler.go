package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// StreamServer faz o upgrade para WebSocket e assina o tópico
type StreamServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, topic string) error
}

// GroupHandler lida com o chat dos grupos de partida
type GroupHandler struct {
	chatService *services.GroupChatService
	streams     StreamServer
}

// NewGroupHandler cria um novo GroupHandler
func NewGroupHandler(chatService *services.GroupChatService, streams StreamServer) *GroupHandler {
	return &GroupHandler{
		chatService: chatService,
		streams:     streams,
	}
}

// ListMessages retorna o histórico do grupo
// @Summary Histórico do grupo
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do grupo"
// @Param limit query int false "Quantidade (máx. 200)"
// @Success 200 {object} dto.Response{data=[]services.MessageEvent}
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /groups/{id}/messages [get]
func (h *GroupHandler) ListMessages(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var query dto.ListMessagesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BindingError(c, err)
		return
	}

	msgs, err := h.chatService.ListMessages(c.Request.Context(), user, groupID, query.Limit)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "group.messages_retrieved", dto.ToMessageResponses(msgs))
}

// SendMessage envia uma mensagem ao grupo
// @Summary Enviar mensagem
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do grupo"
// @Param request body dto.SendMessageRequest true "Mensagem"
// @Success 201 {object} dto.Response{data=services.MessageEvent}
// @Failure 403 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /groups/{id}/messages [post]
func (h *GroupHandler) SendMessage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	msg, err := h.chatService.SendMessage(c.Request.Context(), user, groupID, services.SendMessageInput{
		Message: req.Message,
		Images:  req.Images,
	})
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "group.message_sent", services.NewMessageEvent(msg))
}

// MarkRead marca como lidas as mensagens dos outros membros
// @Summary Marcar mensagens como lidas
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do grupo"
// @Success 200 {object} dto.Response{data=dto.MessagesReadResponse}
// @Router /groups/{id}/read [post]
func (h *GroupHandler) MarkRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	count, err := h.chatService.MarkRead(c.Request.Context(), user, groupID)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "group.messages_read", dto.MessagesReadResponse{Count: count})
}

// Stream abre o canal WebSocket com as mensagens novas do grupo
func (h *GroupHandler) Stream(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.chatService.Authorize(c.Request.Context(), user, groupID); err != nil {
		dto.Error(c, err)
		return
	}

	// Depois do upgrade a resposta HTTP já foi escrita; erros só vão para o log
	if err := h.streams.ServeWS(c.Writer, c.Request, ports.GroupTopic(groupID)); err != nil {
		_ = c.Error(err)
	}
}
