package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// VolunteerHandler lida com o cadastro de voluntários
type VolunteerHandler struct {
	volunteerService *services.VolunteerService
}

// NewVolunteerHandler cria um novo VolunteerHandler
func NewVolunteerHandler(volunteerService *services.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerService: volunteerService,
	}
}

// List lista voluntários ativos
// @Summary Listar voluntários
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página"
// @Success 200 {object} dto.Response{data=dto.VolunteerListResponse}
// @Failure 404 {object} dto.Response
// @Router /volunteers [get]
func (h *VolunteerHandler) List(c *gin.Context) {
	var query dto.ListVolunteersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BindingError(c, err)
		return
	}

	page, err := h.volunteerService.List(c.Request.Context(), query.Page)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "volunteer.list_retrieved", dto.ToVolunteerListResponse(page, h.volunteerService.ImageURL))
}

// Create cadastra um voluntário
// @Summary Criar voluntário
// @Tags volunteers
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Nome"
// @Param email formData string true "Email"
// @Param location formData string true "Local"
// @Param level formData int true "Nível (1-5)"
// @Param role formData string true "Role"
// @Param phone_number formData string false "Telefone"
// @Param image formData file false "Foto (jpg, jpeg, png, até 2 MB)"
// @Success 201 {object} dto.Response{data=dto.VolunteerResponse}
// @Failure 422 {object} dto.Response
// @Router /volunteers [post]
func (h *VolunteerHandler) Create(c *gin.Context) {
	var req dto.CreateVolunteerRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	image, closeImage, ok := imageUpload(c)
	if !ok {
		return
	}
	defer closeImage()

	v, err := h.volunteerService.Create(c.Request.Context(), req.ToInput(), image)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "volunteer.created", dto.ToVolunteerResponse(v, h.volunteerService.ImageURL(v)))
}

// Update altera os campos enviados e, opcionalmente, a foto
// @Summary Atualizar voluntário
// @Tags volunteers
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do voluntário"
// @Param image formData file false "Foto nova"
// @Success 200 {object} dto.Response{data=dto.VolunteerResponse}
// @Failure 404 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /volunteers/{id} [put]
func (h *VolunteerHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateVolunteerRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	image, closeImage, ok := imageUpload(c)
	if !ok {
		return
	}
	defer closeImage()

	v, err := h.volunteerService.Update(c.Request.Context(), id, req.ToInput(), image)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "volunteer.updated", dto.ToVolunteerResponse(v, h.volunteerService.ImageURL(v)))
}

// UpdateRole troca o role do voluntário
// @Summary Atualizar role
// @Tags volunteers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do voluntário"
// @Param request body dto.UpdateRoleRequest true "Role"
// @Success 200 {object} dto.Response{data=dto.VolunteerResponse}
// @Failure 404 {object} dto.Response
// @Router /volunteers/{id}/role [patch]
func (h *VolunteerHandler) UpdateRole(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	v, err := h.volunteerService.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "volunteer.role_updated", dto.ToVolunteerResponse(v, h.volunteerService.ImageURL(v)))
}

// Delete remove o voluntário e sua foto
// @Summary Remover voluntário
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do voluntário"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /volunteers/{id} [delete]
func (h *VolunteerHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.volunteerService.Delete(c.Request.Context(), id); err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "volunteer.deleted", nil)
}

// imageUpload abre o arquivo do campo "image"; sem arquivo retorna nil
func imageUpload(c *gin.Context) (*services.ImageUpload, func(), bool) {
	noop := func() {}

	fh, err := c.FormFile("image")
	if errs.Is(err, http.ErrMissingFile) || errs.Is(err, http.ErrNotMultipart) {
		return nil, noop, true
	}
	if err != nil {
		dto.Error(c, errors.ErrInvalidImage.WithField("image", "validation.image_type").WithCause(err))
		return nil, noop, false
	}

	f, err := fh.Open()
	if err != nil {
		dto.Error(c, errors.Internal(err))
		return nil, noop, false
	}

	return &services.ImageUpload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Content:  f,
	}, func() { _ = f.Close() }, true
}
