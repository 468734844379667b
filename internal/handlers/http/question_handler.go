package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// QuestionHandler lida com o quiz de trail match
type QuestionHandler struct {
	questionService *services.QuestionService
}

// NewQuestionHandler cria um novo QuestionHandler
func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// List lista as perguntas
// @Summary Listar perguntas
// @Tags trail-match-questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.QuestionListResponse}
// @Failure 404 {object} dto.Response
// @Router /trail-match-questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context())
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "question.list_retrieved", dto.ToQuestionListResponse(questions))
}

// Create cria uma pergunta
// @Summary Criar pergunta
// @Tags trail-match-questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuestionRequest true "Pergunta"
// @Success 201 {object} dto.Response{data=dto.QuestionResponse}
// @Failure 422 {object} dto.Response
// @Router /trail-match-questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	q, err := h.questionService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "question.created", dto.ToQuestionResponse(q))
}

// Update altera apenas os campos enviados
// @Summary Atualizar pergunta
// @Tags trail-match-questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da pergunta"
// @Param request body dto.UpdateQuestionRequest true "Campos alterados"
// @Success 200 {object} dto.Response{data=dto.QuestionResponse}
// @Failure 404 {object} dto.Response
// @Router /trail-match-questions/{id} [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	q, err := h.questionService.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "question.updated", dto.ToQuestionResponse(q))
}

// Delete remove uma pergunta
// @Summary Remover pergunta
// @Tags trail-match-questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da pergunta"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /trail-match-questions/{id} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "question.deleted", nil)
}

// SubmitAnswers grava o lote de respostas do usuário atual
// @Summary Enviar respostas
// @Tags trail-match-questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAnswersRequest true "Respostas"
// @Success 201 {object} dto.Response{data=[]dto.AnswerResponse}
// @Failure 422 {object} dto.Response
// @Router /trail-match-questions/answers [post]
func (h *QuestionHandler) SubmitAnswers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	answers, err := h.questionService.SubmitAnswers(c.Request.Context(), user, req.TrailMatchID, req.ToInput())
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "question.answers_stored", dto.ToAnswerResponses(answers))
}
