package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// TrailMatchHandler lida com trail matches e pedidos de avaliação
type TrailMatchHandler struct {
	trailService *services.TrailMatchService
	imageURL     dto.ImageURLFunc
}

// NewTrailMatchHandler cria um novo TrailMatchHandler; imageURL monta as URLs das fotos dos voluntários
func NewTrailMatchHandler(trailService *services.TrailMatchService, imageURL dto.ImageURLFunc) *TrailMatchHandler {
	return &TrailMatchHandler{
		trailService: trailService,
		imageURL:     imageURL,
	}
}

// Status verifica (e expira, se for o caso) a trail match
// @Summary Status da trail match
// @Tags trail-matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TrailMatchIDRequest true "Trail match"
// @Success 200 {object} dto.Response{data=dto.StatusResponse}
// @Failure 404 {object} dto.Response
// @Router /trail-matches/status [post]
func (h *TrailMatchHandler) Status(c *gin.Context) {
	var req dto.TrailMatchIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	status, err := h.trailService.CheckStatus(c.Request.Context(), req.TrailMatchID)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "trail_match.status_retrieved", dto.StatusResponse{Status: status})
}

// Accept aceita a trail match
// @Summary Aceitar trail match
// @Tags trail-matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TrailMatchIDRequest true "Trail match"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /trail-matches/accept [post]
func (h *TrailMatchHandler) Accept(c *gin.Context) {
	var req dto.TrailMatchIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	if err := h.trailService.Accept(c.Request.Context(), req.TrailMatchID); err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "trail_match.accepted", nil)
}

// Deny recusa a trail match
// @Summary Recusar trail match
// @Tags trail-matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TrailMatchIDRequest true "Trail match"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /trail-matches/deny [post]
func (h *TrailMatchHandler) Deny(c *gin.Context) {
	var req dto.TrailMatchIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	if err := h.trailService.Deny(c.Request.Context(), req.TrailMatchID); err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "trail_match.denied", nil)
}

// Details lista as trail matches do usuário atual
// @Summary Minhas trail matches
// @Tags trail-matches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]dto.TrailMatchDetailsResponse}
// @Failure 404 {object} dto.Response
// @Router /trail-matches [get]
func (h *TrailMatchHandler) Details(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	matches, err := h.trailService.Details(c.Request.Context(), user)
	if err != nil {
		dto.Error(c, err)
		return
	}

	image := dto.ProfileImageURL(c, user.Image)
	items := make([]dto.TrailMatchDetailsResponse, 0, len(matches))
	for _, tm := range matches {
		items = append(items, dto.ToTrailMatchDetailsResponse(tm, image, h.imageURL))
	}

	dto.Success(c, http.StatusOK, "trail_match.details_retrieved", items)
}

// SubmitRequest registra um pedido de avaliação
// @Summary Pedir trail match
// @Tags trail-matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TrailMatchRequestRequest true "Pedido"
// @Success 201 {object} dto.Response{data=dto.TrailMatchRequestResponse}
// @Failure 422 {object} dto.Response
// @Router /trail-matches/requests [post]
func (h *TrailMatchHandler) SubmitRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.TrailMatchRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	created, err := h.trailService.SubmitRequest(c.Request.Context(), user, req.RequestLevel)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "trail_match.request_created", dto.ToTrailMatchRequestResponse(created))
}

// LatestRequest retorna o pedido pendente mais recente
// @Summary Último pedido
// @Tags trail-matches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.TrailMatchRequestResponse}
// @Failure 404 {object} dto.Response
// @Router /trail-matches/requests/latest [get]
func (h *TrailMatchHandler) LatestRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	req, err := h.trailService.LatestRequest(c.Request.Context(), user)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "trail_match.request_retrieved", dto.ToTrailMatchRequestResponse(req))
}
