package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// VolunteerRepository implementa repositories.VolunteerRepository
type VolunteerRepository struct {
	baseRepository
}

// NewVolunteerRepository cria um novo VolunteerRepository
func NewVolunteerRepository(db *gorm.DB) repositories.VolunteerRepository {
	return &VolunteerRepository{baseRepository{db: db}}
}

func (r *VolunteerRepository) Create(ctx context.Context, v *entities.Volunteer) error {
	model := toVolunteerModel(v)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	v.ID = model.ID
	v.CreatedAt = time.Unix(model.CreatedAt, 0)
	v.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *VolunteerRepository) FindByID(ctx context.Context, id uint) (*entities.Volunteer, error) {
	var model VolunteerModel

	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toVolunteerEntity(&model), nil
}

func (r *VolunteerRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entities.Volunteer, error) {
	if len(ids) == 0 {
		return []*entities.Volunteer{}, nil
	}

	var models []VolunteerModel
	if err := r.getDB(ctx).Where("id IN ?", ids).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	volunteers := make([]*entities.Volunteer, 0, len(models))
	for i := range models {
		volunteers = append(volunteers, toVolunteerEntity(&models[i]))
	}
	return volunteers, nil
}

func (r *VolunteerRepository) FindByEmail(ctx context.Context, email string) (*entities.Volunteer, error) {
	var model VolunteerModel

	if err := r.getDB(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toVolunteerEntity(&model), nil
}

// Update grava todos os campos, inclusive zero values (status false, image nil)
func (r *VolunteerRepository) Update(ctx context.Context, v *entities.Volunteer) error {
	model := toVolunteerModel(v)

	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return err
	}

	v.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *VolunteerRepository) Delete(ctx context.Context, id uint) error {
	return r.getDB(ctx).Delete(&VolunteerModel{}, id).Error
}

func (r *VolunteerRepository) ListActive(ctx context.Context, p repositories.Pagination) ([]*entities.Volunteer, int64, error) {
	query := r.getDB(ctx).Model(&VolunteerModel{}).
		Where("status = ?", true).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []VolunteerModel
	if err := query.Order("id DESC").Limit(p.PageSize).Offset(p.Offset()).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	volunteers := make([]*entities.Volunteer, 0, len(models))
	for i := range models {
		volunteers = append(volunteers, toVolunteerEntity(&models[i]))
	}
	return volunteers, total, nil
}

// Conversores
func toVolunteerModel(v *entities.Volunteer) *VolunteerModel {
	model := &VolunteerModel{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Location:    v.Location,
		Level:       v.Level,
		Role:        v.Role,
		PhoneNumber: v.PhoneNumber,
		Image:       v.Image,
		Status:      v.Status,
	}
	if !v.CreatedAt.IsZero() {
		model.CreatedAt = v.CreatedAt.Unix()
	}
	return model
}

func toVolunteerEntity(model *VolunteerModel) *entities.Volunteer {
	return &entities.Volunteer{
		ID:          model.ID,
		Name:        model.Name,
		Email:       model.Email,
		Location:    model.Location,
		Level:       model.Level,
		Role:        model.Role,
		PhoneNumber: model.PhoneNumber,
		Image:       model.Image,
		Status:      model.Status,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}
