package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// GroupRepository implementa repositories.GroupRepository
type GroupRepository struct {
	baseRepository
}

// NewGroupRepository cria um novo GroupRepository
func NewGroupRepository(db *gorm.DB) repositories.GroupRepository {
	return &GroupRepository{baseRepository{db: db}}
}

func (r *GroupRepository) Create(ctx context.Context, group *entities.Group) error {
	model := &GroupModel{
		Name:      group.Name,
		MatchID:   group.MatchID,
		CreatorID: group.CreatorID,
		Image:     group.Image,
	}

	if err := r.getDB(ctx).Omit("Match").Create(model).Error; err != nil {
		return err
	}

	group.ID = model.ID
	group.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (*entities.Group, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *GroupRepository) FindByMatchID(ctx context.Context, matchID uint) (*entities.Group, error) {
	return r.findOne(ctx, "match_id = ?", matchID)
}

func (r *GroupRepository) findOne(ctx context.Context, cond string, arg any) (*entities.Group, error) {
	var model GroupModel

	if err := r.getDB(ctx).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Group{
		ID:        model.ID,
		Name:      model.Name,
		MatchID:   model.MatchID,
		CreatorID: model.CreatorID,
		Image:     model.Image,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}

// AttachMembers adiciona usuários ao grupo; quem já é membro é ignorado
func (r *GroupRepository) AttachMembers(ctx context.Context, groupID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}

	rows := make([]GroupMemberModel, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, GroupMemberModel{GroupID: groupID, UserID: id})
	}

	return r.getDB(ctx).
		Omit("Group").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *GroupRepository) CountMembers(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&GroupMemberModel{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// CountMembersByMatchIDs retorna a contagem de membros do grupo de cada partida.
// Partidas sem grupo ficam fora do mapa.
func (r *GroupRepository) CountMembersByMatchIDs(ctx context.Context, matchIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(matchIDs))
	if len(matchIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		MatchID uint
		Total   int64
	}
	err := r.getDB(ctx).
		Table("chat_groups").
		Select("chat_groups.match_id AS match_id, COUNT(chat_group_members.id) AS total").
		Joins("LEFT JOIN chat_group_members ON chat_group_members.group_id = chat_groups.id").
		Where("chat_groups.match_id IN ?", matchIDs).
		Group("chat_groups.match_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.MatchID] = row.Total
	}
	return counts, nil
}

func (r *GroupRepository) IsMember(ctx context.Context, groupID, userID uint) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&GroupMemberModel{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *GroupRepository) CreateMessage(ctx context.Context, msg *entities.GroupMessage) error {
	model := &GroupMessageModel{
		GroupID: msg.GroupID,
		UserID:  msg.UserID,
		Message: msg.Message,
		Images:  datatypes.NewJSONSlice(msg.Images),
		IsRead:  msg.IsRead,
	}

	if err := r.getDB(ctx).Omit("Group").Create(model).Error; err != nil {
		return err
	}

	msg.ID = model.ID
	msg.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

// ListMessages retorna as últimas mensagens em ordem cronológica
func (r *GroupRepository) ListMessages(ctx context.Context, groupID uint, limit int) ([]*entities.GroupMessage, error) {
	var models []*GroupMessageModel

	if err := r.getDB(ctx).
		Where("group_id = ?", groupID).
		Order("id DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}

	messages := make([]*entities.GroupMessage, len(models))
	for i, m := range models {
		// Inverte: a consulta traz as mais recentes primeiro
		messages[len(models)-1-i] = toMessageEntity(m)
	}
	return messages, nil
}

// MarkMessagesRead marca como lidas as mensagens enviadas por outros membros
func (r *GroupRepository) MarkMessagesRead(ctx context.Context, groupID, readerID uint) (int64, error) {
	res := r.getDB(ctx).Model(&GroupMessageModel{}).
		Where("group_id = ? AND user_id <> ? AND is_read = ?", groupID, readerID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func toMessageEntity(model *GroupMessageModel) *entities.GroupMessage {
	images := []string(model.Images)
	if images == nil {
		images = []string{}
	}
	return &entities.GroupMessage{
		ID:        model.ID,
		GroupID:   model.GroupID,
		UserID:    model.UserID,
		Message:   model.Message,
		Images:    images,
		IsRead:    model.IsRead,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}
}
