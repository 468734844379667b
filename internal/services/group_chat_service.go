package services

import (
	"context"
	"strings"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

const (
	// DateTimeLayout é o formato "Y-m-d H:i:s" usado nas respostas
	DateTimeLayout = "2006-01-02 15:04:05"

	DefaultMessageLimit = 50
	MaxMessageLimit     = 200

	// EventMessageCreated é publicado no tópico do grupo a cada mensagem nova
	EventMessageCreated = "message.created"
	// EventMessagesRead é publicado quando um membro marca as mensagens como lidas
	EventMessagesRead = "messages.read"
)

// GroupChatService contém a lógica do chat dos grupos de partida
type GroupChatService struct {
	groupRepo   repositories.GroupRepository
	broadcaster ports.Broadcaster
	logger      ports.Logger
}

// NewGroupChatService cria um novo GroupChatService
func NewGroupChatService(
	groupRepo repositories.GroupRepository,
	broadcaster ports.Broadcaster,
	logger ports.Logger,
) *GroupChatService {
	return &GroupChatService{
		groupRepo:   groupRepo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// SendMessageInput representa uma mensagem enviada ao grupo
type SendMessageInput struct {
	Message string
	Images  []string
}

// MessageEvent é o payload publicado em tempo real para uma mensagem nova
type MessageEvent struct {
	ID        uint     `json:"id"`
	GroupID   uint     `json:"group_id"`
	UserID    uint     `json:"user_id"`
	Message   string   `json:"message"`
	Images    []string `json:"images"`
	IsRead    bool     `json:"is_read"`
	CreatedAt string   `json:"created_at"`
}

// NewMessageEvent converte a mensagem para o payload de tempo real
func NewMessageEvent(msg *entities.GroupMessage) MessageEvent {
	return MessageEvent{
		ID:        msg.ID,
		GroupID:   msg.GroupID,
		UserID:    msg.UserID,
		Message:   msg.Message,
		Images:    msg.Images,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt.UTC().Format(DateTimeLayout),
	}
}

// Authorize verifica se o grupo existe e o usuário é membro
func (s *GroupChatService) Authorize(ctx context.Context, user *entities.User, groupID uint) (*entities.Group, error) {
	if user == nil {
		return nil, errors.ErrUnauthenticated
	}

	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if group == nil {
		return nil, errors.ErrGroupNotFound
	}

	member, err := s.groupRepo.IsMember(ctx, groupID, user.ID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if !member {
		return nil, errors.ErrNotGroupMember
	}

	return group, nil
}

// ListMessages retorna as últimas mensagens do grupo em ordem cronológica
func (s *GroupChatService) ListMessages(ctx context.Context, user *entities.User, groupID uint, limit int) ([]*entities.GroupMessage, error) {
	if _, err := s.Authorize(ctx, user, groupID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	if limit > MaxMessageLimit {
		limit = MaxMessageLimit
	}

	messages, err := s.groupRepo.ListMessages(ctx, groupID, limit)
	if err != nil {
		s.logger.Error("failed to list group messages", "group_id", groupID, "error", err)
		return nil, errors.Internal(err)
	}
	return messages, nil
}

// SendMessage grava a mensagem e a publica para os membros conectados
func (s *GroupChatService) SendMessage(ctx context.Context, user *entities.User, groupID uint, input SendMessageInput) (*entities.GroupMessage, error) {
	if _, err := s.Authorize(ctx, user, groupID); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Message)
	images := make([]string, 0, len(input.Images))
	for _, img := range input.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	if text == "" && len(images) == 0 {
		return nil, errors.ErrValidation.WithField("message", "validation.required")
	}

	msg := &entities.GroupMessage{
		GroupID: groupID,
		UserID:  user.ID,
		Message: text,
		Images:  images,
	}
	if err := s.groupRepo.CreateMessage(ctx, msg); err != nil {
		s.logger.Error("failed to store group message", "group_id", groupID, "user_id", user.ID, "error", err)
		return nil, errors.Internal(err)
	}

	s.broadcaster.Publish(ports.GroupTopic(groupID), EventMessageCreated, NewMessageEvent(msg))
	return msg, nil
}

// MarkRead marca como lidas as mensagens dos outros membros
func (s *GroupChatService) MarkRead(ctx context.Context, user *entities.User, groupID uint) (int64, error) {
	if _, err := s.Authorize(ctx, user, groupID); err != nil {
		return 0, err
	}

	updated, err := s.groupRepo.MarkMessagesRead(ctx, groupID, user.ID)
	if err != nil {
		s.logger.Error("failed to mark messages read", "group_id", groupID, "user_id", user.ID, "error", err)
		return 0, errors.Internal(err)
	}

	if updated > 0 {
		s.broadcaster.Publish(ports.GroupTopic(groupID), EventMessagesRead, map[string]any{
			"reader_id": user.ID,
			"count":     updated,
		})
	}
	return updated, nil
}
