package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

const (
	NotificationListLimit = 50

	// EventNotificationCreated é publicado no canal pessoal do destinatário
	EventNotificationCreated = "notification.created"
)

// NotificationService grava notificações e as empurra para quem estiver conectado.
// Implementa ports.Notifier.
type NotificationService struct {
	repo        repositories.NotificationRepository
	broadcaster ports.Broadcaster
	logger      ports.Logger
}

// NewNotificationService cria um novo NotificationService
func NewNotificationService(
	repo repositories.NotificationRepository,
	broadcaster ports.Broadcaster,
	logger ports.Logger,
) *NotificationService {
	return &NotificationService{
		repo:        repo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

var _ ports.Notifier = (*NotificationService)(nil)

// NotificationEvent é o payload em tempo real de uma notificação
type NotificationEvent struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
	CreatedAt string         `json:"created_at"`
}

// Notify grava a notificação (canal "database") e a publica no canal do destinatário
func (s *NotificationService) Notify(ctx context.Context, n *entities.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Data == nil {
		n.Data = map[string]any{}
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.broadcaster.Publish(
		ports.RecipientTopic(string(n.Recipient.Type), n.Recipient.ID),
		EventNotificationCreated,
		NotificationEvent{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		},
	)

	s.logger.Debug("notification stored",
		"notification_id", n.ID,
		"recipient_type", n.Recipient.Type,
		"recipient_id", n.Recipient.ID,
	)
	return nil
}

// List retorna as notificações mais recentes do usuário atual
func (s *NotificationService) List(ctx context.Context, current *entities.User) ([]*entities.Notification, error) {
	if current == nil {
		return nil, errors.ErrUnauthenticated
	}

	items, err := s.repo.ListFor(ctx, userRecipient(current.ID), NotificationListLimit)
	if err != nil {
		s.logger.Error("failed to list notifications", "user_id", current.ID, "error", err)
		return nil, errors.Internal(err)
	}
	return items, nil
}

// MarkRead marca uma notificação do usuário atual como lida
func (s *NotificationService) MarkRead(ctx context.Context, current *entities.User, id string) error {
	if current == nil {
		return errors.ErrUnauthenticated
	}
	if _, err := uuid.Parse(id); err != nil {
		return errors.ErrNotificationNotFound
	}

	ok, err := s.repo.MarkRead(ctx, id, userRecipient(current.ID))
	if err != nil {
		s.logger.Error("failed to mark notification read", "notification_id", id, "error", err)
		return errors.Internal(err)
	}
	if !ok {
		return errors.ErrNotificationNotFound
	}
	return nil
}

func userRecipient(id uint) entities.Recipient {
	return entities.Recipient{Type: entities.NotifiableUser, ID: id}
}
