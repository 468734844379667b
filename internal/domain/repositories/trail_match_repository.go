package repositories

import (
	"context"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
)

// TrailMatchRepository define a persistência de trail matches e pedidos
type TrailMatchRepository interface {
	// FindByID carrega também o usuário e os ids de voluntários
	FindByID(ctx context.Context, id uint) (*entities.TrailMatch, error)
	UpdateStatus(ctx context.Context, id uint, status bool) error
	// ListByUser carrega clube e voluntários de cada trail match
	ListByUser(ctx context.Context, userID uint) ([]*entities.TrailMatch, error)
	CreateRequest(ctx context.Context, req *entities.TrailMatchRequest) error
	FindLatestRequest(ctx context.Context, userID uint, status string) (*entities.TrailMatchRequest, error)
}

// VolunteerRepository define a persistência de voluntários
type VolunteerRepository interface {
	Create(ctx context.Context, v *entities.Volunteer) error
	FindByID(ctx context.Context, id uint) (*entities.Volunteer, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*entities.Volunteer, error)
	FindByEmail(ctx context.Context, email string) (*entities.Volunteer, error)
	Update(ctx context.Context, v *entities.Volunteer) error
	Delete(ctx context.Context, id uint) error
	ListActive(ctx context.Context, p Pagination) ([]*entities.Volunteer, int64, error)
}

// QuestionRepository define a persistência do quiz
type QuestionRepository interface {
	Create(ctx context.Context, q *entities.TrailMatchQuestion) error
	FindByID(ctx context.Context, id uint) (*entities.TrailMatchQuestion, error)
	Update(ctx context.Context, q *entities.TrailMatchQuestion) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.TrailMatchQuestion, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	CreateAnswer(ctx context.Context, a *entities.TrailMatchAnswer) error
	TrailMatchExists(ctx context.Context, trailMatchID uint) (bool, error)
}

// NotificationRepository define a persistência de notificações
type NotificationRepository interface {
	Create(ctx context.Context, n *entities.Notification) error
	ListFor(ctx context.Context, r entities.Recipient, limit int) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id string, r entities.Recipient) (bool, error)
}
