package ports

//go:generate mockgen -source=notifier.go -destination=mocks/notifier_mock.go -package=mocks

import (
	"context"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
)

// Notifier entrega uma notificação a um destinatário
type Notifier interface {
	Notify(ctx context.Context, n *entities.Notification) error
}
