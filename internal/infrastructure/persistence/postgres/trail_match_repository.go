package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// TrailMatchRepository implementa repositories.TrailMatchRepository
type TrailMatchRepository struct {
	baseRepository
}

// NewTrailMatchRepository cria um novo TrailMatchRepository
func NewTrailMatchRepository(db *gorm.DB) repositories.TrailMatchRepository {
	return &TrailMatchRepository{baseRepository{db: db}}
}

func (r *TrailMatchRepository) FindByID(ctx context.Context, id uint) (*entities.TrailMatch, error) {
	var model TrailMatchModel

	if err := r.getDB(ctx).
		Preload("User").
		Preload("Volunteers").
		First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toTrailMatchEntity(&model), nil
}

func (r *TrailMatchRepository) UpdateStatus(ctx context.Context, id uint, status bool) error {
	return r.getDB(ctx).Model(&TrailMatchModel{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *TrailMatchRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.TrailMatch, error) {
	var models []*TrailMatchModel

	if err := r.getDB(ctx).
		Preload("Club").
		Preload("Volunteers").
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	matches := make([]*entities.TrailMatch, 0, len(models))
	for _, m := range models {
		matches = append(matches, toTrailMatchEntity(m))
	}
	return matches, nil
}

func (r *TrailMatchRepository) CreateRequest(ctx context.Context, req *entities.TrailMatchRequest) error {
	model := &TrailMatchRequestModel{
		UserID:       req.UserID,
		RequestLevel: req.RequestLevel,
		Status:       req.Status,
	}

	if err := r.getDB(ctx).Omit("User").Create(model).Error; err != nil {
		return err
	}

	req.ID = model.ID
	req.CreatedAt = time.Unix(model.CreatedAt, 0)
	req.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

// FindLatestRequest retorna o pedido mais recente (maior id) com o status informado
func (r *TrailMatchRepository) FindLatestRequest(ctx context.Context, userID uint, status string) (*entities.TrailMatchRequest, error) {
	var model TrailMatchRequestModel

	if err := r.getDB(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Order("id DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.TrailMatchRequest{
		ID:           model.ID,
		UserID:       model.UserID,
		RequestLevel: model.RequestLevel,
		Status:       model.Status,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}, nil
}

func toTrailMatchEntity(model *TrailMatchModel) *entities.TrailMatch {
	tm := &entities.TrailMatch{
		ID:           model.ID,
		UserID:       model.UserID,
		ClubID:       model.ClubID,
		VolunteerIDs: make([]uint, 0, len(model.Volunteers)),
		Volunteers:   make([]*entities.Volunteer, 0, len(model.Volunteers)),
		Date:         model.Date,
		Time:         model.Time,
		Status:       model.Status,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
	}

	if model.User.ID != 0 {
		tm.User = toUserEntity(&model.User)
	}
	if model.Club != nil {
		tm.Club = &entities.Club{
			ID:       model.Club.ID,
			ClubName: model.Club.ClubName,
			Location: model.Club.Location,
		}
	}
	for i := range model.Volunteers {
		tm.VolunteerIDs = append(tm.VolunteerIDs, model.Volunteers[i].ID)
		tm.Volunteers = append(tm.Volunteers, toVolunteerEntity(&model.Volunteers[i]))
	}

	return tm
}
