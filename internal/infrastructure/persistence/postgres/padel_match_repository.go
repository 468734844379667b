package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// PadelMatchRepository implementa repositories.PadelMatchRepository
type PadelMatchRepository struct {
	baseRepository
}

// NewPadelMatchRepository cria um novo PadelMatchRepository
func NewPadelMatchRepository(db *gorm.DB) repositories.PadelMatchRepository {
	return &PadelMatchRepository{baseRepository{db: db}}
}

func (r *PadelMatchRepository) Create(ctx context.Context, match *entities.PadelMatch) error {
	model := toPadelMatchModel(match)

	if err := r.getDB(ctx).Omit("Creator").Create(model).Error; err != nil {
		return err
	}

	match.ID = model.ID
	match.CreatedAt = time.Unix(model.CreatedAt, 0)
	match.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *PadelMatchRepository) FindByID(ctx context.Context, id uint) (*entities.PadelMatch, error) {
	var model PadelMatchModel

	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toPadelMatchEntity(&model), nil
}

// Delete remove a partida; grupo, membros e mensagens saem pelo ON DELETE CASCADE
func (r *PadelMatchRepository) Delete(ctx context.Context, id uint) error {
	return r.getDB(ctx).Delete(&PadelMatchModel{}, id).Error
}

func (r *PadelMatchRepository) ListByCreator(ctx context.Context, creatorID uint) ([]*entities.PadelMatch, error) {
	var models []*PadelMatchModel

	if err := r.getDB(ctx).Where("creator_id = ?", creatorID).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	matches := make([]*entities.PadelMatch, 0, len(models))
	for _, m := range models {
		matches = append(matches, toPadelMatchEntity(m))
	}
	return matches, nil
}

func (r *PadelMatchRepository) ListJoinedBy(ctx context.Context, userID uint) ([]*entities.JoinedMatch, error) {
	var members []*PadelMatchMemberModel

	if err := r.getDB(ctx).
		Preload("PadelMatch").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}

	joined := make([]*entities.JoinedMatch, 0, len(members))
	for _, m := range members {
		// Partida removida entre o SELECT e o Preload
		if m.PadelMatch.ID == 0 {
			continue
		}
		joined = append(joined, &entities.JoinedMatch{
			Member: *toMemberEntity(m),
			Match:  *toPadelMatchEntity(&m.PadelMatch),
		})
	}
	return joined, nil
}

func (r *PadelMatchRepository) CreateMember(ctx context.Context, member *entities.PadelMatchMember) error {
	model := &PadelMatchMemberModel{
		PadelMatchID: member.PadelMatchID,
		UserID:       member.UserID,
		IsApproved:   member.IsApproved,
	}

	if err := r.getDB(ctx).Omit("PadelMatch", "User").Create(model).Error; err != nil {
		return err
	}

	member.ID = model.ID
	member.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *PadelMatchRepository) FindMember(ctx context.Context, matchID, userID uint) (*entities.PadelMatchMember, error) {
	var model PadelMatchMemberModel

	if err := r.getDB(ctx).
		Where("padel_match_id = ? AND user_id = ?", matchID, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toMemberEntity(&model), nil
}

func (r *PadelMatchRepository) ApproveMember(ctx context.Context, memberID uint) error {
	return r.getDB(ctx).Model(&PadelMatchMemberModel{}).
		Where("id = ?", memberID).
		Update("is_approved", true).Error
}

// Conversores
func toPadelMatchModel(match *entities.PadelMatch) *PadelMatchModel {
	return &PadelMatchModel{
		ID:            match.ID,
		CreatorID:     match.CreatorID,
		Latitude:      match.Latitude,
		Longitude:     match.Longitude,
		MindText:      match.MindText,
		SelectedLevel: match.SelectedLevel,
		Level:         match.Level,
		LevelName:     match.LevelName,
	}
}

func toPadelMatchEntity(model *PadelMatchModel) *entities.PadelMatch {
	return &entities.PadelMatch{
		ID:            model.ID,
		CreatorID:     model.CreatorID,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		MindText:      model.MindText,
		SelectedLevel: model.SelectedLevel,
		Level:         model.Level,
		LevelName:     model.LevelName,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}
}

func toMemberEntity(model *PadelMatchMemberModel) *entities.PadelMatchMember {
	return &entities.PadelMatchMember{
		ID:           model.ID,
		PadelMatchID: model.PadelMatchID,
		UserID:       model.UserID,
		IsApproved:   model.IsApproved,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
	}
}
