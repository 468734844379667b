package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// MemberHandler lida com a descoberta de membros
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler cria um novo MemberHandler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Level retorna o nível do usuário atual
// @Summary Nível do usuário atual
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.LevelResponse}
// @Router /level [get]
func (h *MemberHandler) Level(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	level, err := h.memberService.Level(c.Request.Context(), user)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "member.level_retrieved", dto.LevelResponse{Level: level})
}

// Nearby lista membros ativos em até 10 km
// @Summary Membros próximos
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.NearbyMembersResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /members/nearby [get]
func (h *MemberHandler) Nearby(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	members, err := h.memberService.NearbyMembers(c.Request.Context(), user)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "member.nearby_retrieved", dto.ToNearbyMembersResponse(c, members))
}

// Search busca membros por nome
// @Summary Busca de membros
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param keyword query string true "Parte do nome"
// @Param page query int false "Página"
// @Success 200 {object} dto.Response{data=dto.MemberSearchResponse}
// @Failure 404 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /members/search [get]
func (h *MemberHandler) Search(c *gin.Context) {
	var query dto.SearchMembersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BindingError(c, err)
		return
	}

	page, err := h.memberService.SearchMembers(c.Request.Context(), query.Keyword, query.Page)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "member.search_retrieved", dto.ToMemberSearchResponse(c, page))
}
