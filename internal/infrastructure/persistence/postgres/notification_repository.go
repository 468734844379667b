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

// NotificationRepository implementa repositories.NotificationRepository
type NotificationRepository struct {
	baseRepository
}

// NewNotificationRepository cria um novo NotificationRepository
func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationRepository{baseRepository{db: db}}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	model := &NotificationModel{
		ID:             n.ID,
		NotifiableType: string(n.Recipient.Type),
		NotifiableID:   n.Recipient.ID,
		Type:           string(n.Type),
		Title:          n.Title,
		Message:        n.Message,
		Data:           datatypes.JSONMap(n.Data),
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	n.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *NotificationRepository) ListFor(ctx context.Context, recipient entities.Recipient, limit int) ([]*entities.Notification, error) {
	var models []NotificationModel

	if err := r.getDB(ctx).
		Where("notifiable_type = ? AND notifiable_id = ?", string(recipient.Type), recipient.ID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entities.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, toNotificationEntity(&models[i]))
	}
	return notifications, nil
}

// MarkRead marca a notificação como lida; false quando ela não pertence ao destinatário
func (r *NotificationRepository) MarkRead(ctx context.Context, id string, recipient entities.Recipient) (bool, error) {
	var model NotificationModel

	err := r.getDB(ctx).
		Where("id = ? AND notifiable_type = ? AND notifiable_id = ?", id, string(recipient.Type), recipient.ID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if model.ReadAt != nil {
		return true, nil
	}

	now := time.Now().Unix()
	if err := r.getDB(ctx).Model(&NotificationModel{}).
		Where("id = ?", id).
		Update("read_at", now).Error; err != nil {
		return false, err
	}
	return true, nil
}

func toNotificationEntity(model *NotificationModel) *entities.Notification {
	n := &entities.Notification{
		ID: model.ID,
		Recipient: entities.Recipient{
			Type: entities.NotifiableType(model.NotifiableType),
			ID:   model.NotifiableID,
		},
		Type:      entities.NotificationType(model.Type),
		Title:     model.Title,
		Message:   model.Message,
		Data:      map[string]any(model.Data),
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}
	if model.ReadAt != nil {
		readAt := time.Unix(*model.ReadAt, 0)
		n.ReadAt = &readAt
	}
	return n
}
