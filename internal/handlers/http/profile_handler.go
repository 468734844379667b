package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// ProfileHandler lida com perfis e progresso de nível
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler cria um novo ProfileHandler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// MyProfile retorna o perfil do usuário atual
// @Summary Meu perfil
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.ProfileResponse}
// @Router /profile [get]
func (h *ProfileHandler) MyProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.MyProfile(c.Request.Context(), user)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "profile.retrieved", dto.ToProfileResponse(profile))
}

// OtherProfile retorna o perfil de outro usuário
// @Summary Perfil de outro usuário
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Success 200 {object} dto.Response{data=dto.ProfileResponse}
// @Failure 404 {object} dto.Response
// @Router /profile/{id} [get]
func (h *ProfileHandler) OtherProfile(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.OtherProfile(c.Request.Context(), id)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "profile.retrieved", dto.ToProfileResponse(profile))
}

// LevelProgress retorna os níveis anteriores e o próximo
// @Summary Progresso de nível
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Router /profile/level-progress [get]
func (h *ProfileHandler) LevelProgress(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	progress, err := h.profileService.LevelProgress(c.Request.Context(), user)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "profile.level_progress", dto.ToLevelProgressResponse(progress))
}
