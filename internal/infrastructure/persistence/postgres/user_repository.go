package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	baseRepository
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{baseRepository{db: db}}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var model UserModel

	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model), nil
}

func (r *UserRepository) FindFirstByRole(ctx context.Context, role entities.Role) (*entities.User, error) {
	var model UserModel

	if err := r.getDB(ctx).Where("role = ?", string(role)).Order("id ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model), nil
}

func (r *UserRepository) ListActiveMembersInBox(ctx context.Context, excludeID uint, box repositories.BoundingBox) ([]*entities.User, error) {
	var models []*UserModel

	err := r.activeMembers(ctx).
		Where("id <> ?", excludeID).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toUserEntities(models), nil
}

func (r *UserRepository) SearchActiveMembers(ctx context.Context, filters repositories.MemberSearchFilters) ([]*entities.User, int64, error) {
	var (
		models []*UserModel
		total  int64
	)

	pattern := "%" + escapeLike(strings.ToLower(filters.Keyword)) + "%"
	query := r.activeMembers(ctx).
		Where(nameMatch(r.getDB(ctx)), pattern).
		Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id ASC").Limit(filters.PageSize).Offset(filters.Offset()).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return toUserEntities(models), total, nil
}

func (r *UserRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.getDB(ctx).Model(&UserModel{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *UserRepository) activeMembers(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).Model(&UserModel{}).
		Where("status = ?", string(entities.UserStatusActive)).
		Where("role = ?", string(entities.RoleMember))
}

// nameMatch compara full_name sem diferenciar caixa. No SQLite, LOWER só
// converte ASCII ("JOSÉ" não casa com "josé").
func nameMatch(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "full_name ILIKE ? ESCAPE '\\'"
	}
	return "LOWER(full_name) LIKE ? ESCAPE '\\'"
}

// escapeLike protege os curingas do LIKE digitados pelo usuário
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Conversores
func toUserEntity(model *UserModel) *entities.User {
	return &entities.User{
		ID:            model.ID,
		FullName:      model.FullName,
		UserName:      model.UserName,
		Email:         model.Email,
		Level:         model.Level,
		LevelName:     model.LevelName,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		Role:          entities.Role(model.Role),
		Status:        entities.UserStatus(model.Status),
		Image:         model.Image,
		MatchesPlayed: model.MatchesPlayed,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}
}

func toUserEntities(models []*UserModel) []*entities.User {
	users := make([]*entities.User, 0, len(models))
	for _, model := range models {
		users = append(users, toUserEntity(model))
	}
	return users
}

// ToUserModel é usado por seeds e testes para inserir usuários
func ToUserModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:            user.ID,
		FullName:      user.FullName,
		UserName:      user.UserName,
		Email:         user.Email,
		Level:         user.Level,
		LevelName:     user.LevelName,
		Latitude:      user.Latitude,
		Longitude:     user.Longitude,
		Role:          string(user.Role),
		Status:        string(user.Status),
		Image:         user.Image,
		MatchesPlayed: user.MatchesPlayed,
	}
}
