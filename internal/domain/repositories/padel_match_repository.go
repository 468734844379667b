package repositories

import (
	"context"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
)

// PadelMatchRepository define a persistência de partidas e pedidos de entrada
type PadelMatchRepository interface {
	Create(ctx context.Context, match *entities.PadelMatch) error
	FindByID(ctx context.Context, id uint) (*entities.PadelMatch, error)
	Delete(ctx context.Context, id uint) error
	ListByCreator(ctx context.Context, creatorID uint) ([]*entities.PadelMatch, error)
	ListJoinedBy(ctx context.Context, userID uint) ([]*entities.JoinedMatch, error)
	CreateMember(ctx context.Context, member *entities.PadelMatchMember) error
	FindMember(ctx context.Context, matchID, userID uint) (*entities.PadelMatchMember, error)
	ApproveMember(ctx context.Context, memberID uint) error
}

// GroupRepository define a persistência de grupos, membros e mensagens
type GroupRepository interface {
	Create(ctx context.Context, group *entities.Group) error
	FindByID(ctx context.Context, id uint) (*entities.Group, error)
	FindByMatchID(ctx context.Context, matchID uint) (*entities.Group, error)
	AttachMembers(ctx context.Context, groupID uint, userIDs []uint) error
	CountMembers(ctx context.Context, groupID uint) (int64, error)
	CountMembersByMatchIDs(ctx context.Context, matchIDs []uint) (map[uint]int64, error)
	IsMember(ctx context.Context, groupID, userID uint) (bool, error)
	CreateMessage(ctx context.Context, msg *entities.GroupMessage) error
	ListMessages(ctx context.Context, groupID uint, limit int) ([]*entities.GroupMessage, error)
	MarkMessagesRead(ctx context.Context, groupID, readerID uint) (int64, error)
}
