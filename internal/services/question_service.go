package services

import (
	"context"
	"strings"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// QuestionService contém o CRUD do quiz de trail match e o envio de respostas
type QuestionService struct {
	questionRepo repositories.QuestionRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewQuestionService cria um novo QuestionService
func NewQuestionService(
	questionRepo repositories.QuestionRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		uow:          uow,
		logger:       logger,
	}
}

// CreateQuestionInput representa uma pergunta nova com as quatro alternativas
type CreateQuestionInput struct {
	Question string
	A, B     string
	C, D     string
}

// UpdateQuestionInput carrega apenas os campos enviados; nil mantém o valor atual
type UpdateQuestionInput struct {
	Question *string
	Options  map[entities.OptionKey]string
	Status   *bool
}

// AnswerInput é uma resposta individual do lote
type AnswerInput struct {
	QuestionID uint
	Answer     string
	Value      int
}

// List retorna todas as perguntas, mais recentes primeiro
func (s *QuestionService) List(ctx context.Context) ([]*entities.TrailMatchQuestion, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list questions", "error", err)
		return nil, errors.Internal(err)
	}
	if len(questions) == 0 {
		return nil, errors.ErrNoQuestions
	}
	return questions, nil
}

// Create grava a pergunta com valores A=1..D=4 e status ativo
func (s *QuestionService) Create(ctx context.Context, input CreateQuestionInput) (*entities.TrailMatchQuestion, error) {
	q := &entities.TrailMatchQuestion{
		Question: strings.TrimSpace(input.Question),
		Options:  entities.NewQuestionOptions(input.A, input.B, input.C, input.D),
		Status:   true,
	}

	if err := s.questionRepo.Create(ctx, q); err != nil {
		s.logger.Error("failed to create question", "error", err)
		return nil, errors.Internal(err)
	}

	s.logger.Info("question created", "question_id", q.ID)
	return q, nil
}

// Update aplica uma atualização parcial
func (s *QuestionService) Update(ctx context.Context, id uint, input UpdateQuestionInput) (*entities.TrailMatchQuestion, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Question != nil {
		q.Question = strings.TrimSpace(*input.Question)
	}
	for _, key := range entities.OptionKeys {
		if text, ok := input.Options[key]; ok {
			q.Options = q.Options.WithText(key, text)
		}
	}
	if input.Status != nil {
		q.Status = *input.Status
	}

	if err := s.questionRepo.Update(ctx, q); err != nil {
		s.logger.Error("failed to update question", "question_id", id, "error", err)
		return nil, errors.Internal(err)
	}

	s.logger.Info("question updated", "question_id", id)
	return q, nil
}

// Delete remove a pergunta
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete question", "question_id", id, "error", err)
		return errors.Internal(err)
	}

	s.logger.Info("question deleted", "question_id", id)
	return nil
}

// SubmitAnswers grava o lote inteiro de respostas ou nada
func (s *QuestionService) SubmitAnswers(ctx context.Context, user *entities.User, trailMatchID uint, answers []AnswerInput) ([]*entities.TrailMatchAnswer, error) {
	if user == nil {
		return nil, errors.ErrUnauthenticated
	}
	if len(answers) == 0 {
		return nil, errors.ErrValidation.WithField("answers", "validation.required")
	}

	exists, err := s.questionRepo.TrailMatchExists(ctx, trailMatchID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if !exists {
		return nil, errors.ErrValidation.WithField("trail_match_id", "validation.exists")
	}

	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	ids = uniqueIDs(ids)

	found, err := s.questionRepo.CountByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if found != int64(len(ids)) {
		return nil, errors.ErrValidation.WithField("answers", "validation.exists")
	}

	stored := make([]*entities.TrailMatchAnswer, 0, len(answers))
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, a := range answers {
			row := &entities.TrailMatchAnswer{
				TrailMatchQuestionID: a.QuestionID,
				TrailMatchID:         trailMatchID,
				UserID:               user.ID,
				Answer:               a.Answer,
				Value:                a.Value,
			}
			if err := s.questionRepo.CreateAnswer(txCtx, row); err != nil {
				return err
			}
			stored = append(stored, row)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to store answers",
			"user_id", user.ID,
			"trail_match_id", trailMatchID,
			"error", err,
		)
		return nil, errors.Internal(err)
	}

	s.logger.Info("answers stored", "user_id", user.ID, "trail_match_id", trailMatchID, "count", len(stored))
	return stored, nil
}

func (s *QuestionService) find(ctx context.Context, id uint) (*entities.TrailMatchQuestion, error) {
	q, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if q == nil {
		return nil, errors.ErrQuestionNotFound
	}
	return q, nil
}
