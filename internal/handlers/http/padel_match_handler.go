package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// PadelMatchHandler lida com partidas e pedidos de entrada
type PadelMatchHandler struct {
	matchService *services.PadelMatchService
}

// NewPadelMatchHandler cria um novo PadelMatchHandler
func NewPadelMatchHandler(matchService *services.PadelMatchService) *PadelMatchHandler {
	return &PadelMatchHandler{
		matchService: matchService,
	}
}

// Create cria a partida com seu grupo
// @Summary Criar partida
// @Tags padel-matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePadelMatchRequest true "Partida"
// @Success 201 {object} dto.Response{data=dto.CreatedPadelMatchResponse}
// @Failure 400 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /padel-matches [post]
func (h *PadelMatchHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreatePadelMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	created, err := h.matchService.CreateMatch(c.Request.Context(), user, req.ToInput())
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "padel_match.created", dto.ToCreatedPadelMatchResponse(created))
}

// Delete remove uma partida
// @Summary Remover partida
// @Tags padel-matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da partida"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /padel-matches/{id} [delete]
func (h *PadelMatchHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.matchService.DeleteMatch(c.Request.Context(), id); err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "padel_match.deleted", nil)
}

// Join registra o pedido de entrada do usuário atual
// @Summary Pedir para entrar
// @Tags padel-matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da partida"
// @Success 201 {object} dto.Response{data=dto.PadelMatchMemberResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /padel-matches/{id}/join [post]
func (h *PadelMatchHandler) Join(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	member, err := h.matchService.JoinMatch(c.Request.Context(), user, id)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "padel_match.join_requested", dto.ToPadelMatchMemberResponse(member))
}

// Approve aprova um pedido de entrada (apenas o criador)
// @Summary Aprovar pedido de entrada
// @Tags padel-matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da partida"
// @Param userId path int true "ID do usuário"
// @Success 200 {object} dto.Response{data=dto.PadelMatchMemberResponse}
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /padel-matches/{id}/members/{userId}/approve [post]
func (h *PadelMatchHandler) Approve(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	matchID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	member, err := h.matchService.ApproveMember(c.Request.Context(), user, matchID, userID)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "padel_match.member_approved", dto.ToPadelMatchMemberResponse(member))
}
