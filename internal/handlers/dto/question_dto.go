package dto

import (
	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// CreateQuestionRequest representa uma pergunta nova
type CreateQuestionRequest struct {
	Question string `json:"question" binding:"required,max=255"`
	A        string `json:"A" binding:"required,max=255"`
	B        string `json:"B" binding:"required,max=255"`
	C        string `json:"C" binding:"required,max=255"`
	D        string `json:"D" binding:"required,max=255"`
}

// ToInput converte o request para o input do serviço
func (r CreateQuestionRequest) ToInput() services.CreateQuestionInput {
	return services.CreateQuestionInput{
		Question: r.Question,
		A:        r.A,
		B:        r.B,
		C:        r.C,
		D:        r.D,
	}
}

// UpdateQuestionRequest é uma atualização parcial; campos ausentes continuam iguais
type UpdateQuestionRequest struct {
	Question *string `json:"question" binding:"omitempty,max=255"`
	A        *string `json:"A" binding:"omitempty,max=255"`
	B        *string `json:"B" binding:"omitempty,max=255"`
	C        *string `json:"C" binding:"omitempty,max=255"`
	D        *string `json:"D" binding:"omitempty,max=255"`
	Status   *bool   `json:"status"`
}

// ToInput converte o request para o input do serviço
func (r UpdateQuestionRequest) ToInput() services.UpdateQuestionInput {
	options := make(map[entities.OptionKey]string)
	for key, text := range map[entities.OptionKey]*string{
		entities.OptionA: r.A,
		entities.OptionB: r.B,
		entities.OptionC: r.C,
		entities.OptionD: r.D,
	} {
		if text != nil {
			options[key] = *text
		}
	}
	return services.UpdateQuestionInput{
		Question: r.Question,
		Options:  options,
		Status:   r.Status,
	}
}

// AnswerRequest é uma resposta do lote
type AnswerRequest struct {
	TrailMatchQuestionID uint   `json:"trail_match_question_id" binding:"required,gt=0"`
	Answer               string `json:"answer" binding:"required,max=255"`
	Value                int    `json:"value" binding:"required,gte=1,lte=4"`
}

// SubmitAnswersRequest é o lote de respostas de uma trail match
type SubmitAnswersRequest struct {
	TrailMatchID uint            `json:"trail_match_id" binding:"required,gt=0"`
	Answers      []AnswerRequest `json:"answers" binding:"required,min=1,dive"`
}

// ToInput converte as respostas para o input do serviço
func (r SubmitAnswersRequest) ToInput() []services.AnswerInput {
	out := make([]services.AnswerInput, 0, len(r.Answers))
	for _, a := range r.Answers {
		out = append(out, services.AnswerInput{
			QuestionID: a.TrailMatchQuestionID,
			Answer:     a.Answer,
			Value:      a.Value,
		})
	}
	return out
}

// QuestionResponse é uma pergunta do quiz
type QuestionResponse struct {
	ID        uint                     `json:"id"`
	Question  string                   `json:"question"`
	Status    bool                     `json:"status"`
	Options   entities.QuestionOptions `json:"options"`
	CreatedAt string                   `json:"created_at"`
	UpdatedAt string                   `json:"updated_at"`
}

// QuestionListResponse embrulha a listagem em "data"
type QuestionListResponse struct {
	Data []QuestionResponse `json:"data"`
}

// AnswerResponse é uma resposta gravada
type AnswerResponse struct {
	ID                   uint   `json:"id"`
	TrailMatchQuestionID uint   `json:"trail_match_question_id"`
	TrailMatchID         uint   `json:"trail_match_id"`
	UserID               uint   `json:"user_id"`
	Answer               string `json:"answer"`
	Value                int    `json:"value"`
}

// ToQuestionResponse converte uma pergunta
func ToQuestionResponse(q *entities.TrailMatchQuestion) QuestionResponse {
	return QuestionResponse{
		ID:        q.ID,
		Question:  q.Question,
		Status:    q.Status,
		Options:   q.Options,
		CreatedAt: q.CreatedAt.UTC().Format(DateTimeLayout),
		UpdatedAt: q.UpdatedAt.UTC().Format(DateTimeLayout),
	}
}

// ToQuestionListResponse converte a listagem
func ToQuestionListResponse(questions []*entities.TrailMatchQuestion) QuestionListResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, ToQuestionResponse(q))
	}
	return QuestionListResponse{Data: out}
}

// ToAnswerResponses converte as respostas gravadas
func ToAnswerResponses(answers []*entities.TrailMatchAnswer) []AnswerResponse {
	out := make([]AnswerResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, AnswerResponse{
			ID:                   a.ID,
			TrailMatchQuestionID: a.TrailMatchQuestionID,
			TrailMatchID:         a.TrailMatchID,
			UserID:               a.UserID,
			Answer:               a.Answer,
			Value:                a.Value,
		})
	}
	return out
}
