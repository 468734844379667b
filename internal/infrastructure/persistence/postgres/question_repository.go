package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// QuestionRepository implementa repositories.QuestionRepository
type QuestionRepository struct {
	baseRepository
}

// NewQuestionRepository cria um novo QuestionRepository
func NewQuestionRepository(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionRepository{baseRepository{db: db}}
}

func (r *QuestionRepository) Create(ctx context.Context, q *entities.TrailMatchQuestion) error {
	model := toQuestionModel(q)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	q.ID = model.ID
	q.CreatedAt = time.Unix(model.CreatedAt, 0)
	q.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*entities.TrailMatchQuestion, error) {
	var model QuestionModel

	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toQuestionEntity(&model), nil
}

func (r *QuestionRepository) Update(ctx context.Context, q *entities.TrailMatchQuestion) error {
	model := toQuestionModel(q)

	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return err
	}

	q.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	return r.getDB(ctx).Delete(&QuestionModel{}, id).Error
}

// List retorna todas as perguntas, mais recentes primeiro
func (r *QuestionRepository) List(ctx context.Context) ([]*entities.TrailMatchQuestion, error) {
	var models []QuestionModel

	if err := r.getDB(ctx).Order("created_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	questions := make([]*entities.TrailMatchQuestion, 0, len(models))
	for i := range models {
		questions = append(questions, toQuestionEntity(&models[i]))
	}
	return questions, nil
}

// CountByIDs conta quantos dos ids informados existem (ids repetidos contam uma vez)
func (r *QuestionRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.getDB(ctx).Model(&QuestionModel{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) CreateAnswer(ctx context.Context, a *entities.TrailMatchAnswer) error {
	model := &AnswerModel{
		TrailMatchQuestionID: a.TrailMatchQuestionID,
		TrailMatchID:         a.TrailMatchID,
		UserID:               a.UserID,
		Answer:               a.Answer,
		Value:                a.Value,
	}

	if err := r.getDB(ctx).Omit("TrailMatchQuestion", "TrailMatch").Create(model).Error; err != nil {
		return err
	}

	a.ID = model.ID
	a.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *QuestionRepository) TrailMatchExists(ctx context.Context, trailMatchID uint) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&TrailMatchModel{}).Where("id = ?", trailMatchID).Count(&count).Error
	return count > 0, err
}

// Conversores
func toQuestionModel(q *entities.TrailMatchQuestion) *QuestionModel {
	model := &QuestionModel{
		ID:       q.ID,
		Question: q.Question,
		Options:  datatypes.NewJSONType(q.Options),
		Status:   q.Status,
	}
	if !q.CreatedAt.IsZero() {
		model.CreatedAt = q.CreatedAt.Unix()
	}
	return model
}

func toQuestionEntity(model *QuestionModel) *entities.TrailMatchQuestion {
	return &entities.TrailMatchQuestion{
		ID:        model.ID,
		Question:  model.Question,
		Options:   model.Options.Data(),
		Status:    model.Status,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}

// CreateClub e CreateTrailMatch existem para seeds e testes; a API não cria trail matches
func CreateClub(ctx context.Context, db *gorm.DB, club *entities.Club) error {
	model := &ClubModel{ClubName: club.ClubName, Location: club.Location}
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	club.ID = model.ID
	return nil
}

// CreateTrailMatch grava a trail match e associa os voluntários em VolunteerIDs
func CreateTrailMatch(ctx context.Context, db *gorm.DB, tm *entities.TrailMatch) error {
	model := &TrailMatchModel{
		UserID: tm.UserID,
		ClubID: tm.ClubID,
		Date:   tm.Date,
		Time:   tm.Time,
		Status: tm.Status,
	}
	for _, id := range tm.VolunteerIDs {
		model.Volunteers = append(model.Volunteers, VolunteerModel{ID: id})
	}

	err := db.WithContext(ctx).
		Omit("User", "Club", "Volunteers.*").
		Create(model).Error
	if err != nil {
		return err
	}

	tm.ID = model.ID
	tm.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}
