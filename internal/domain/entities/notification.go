package entities

import "time"

// NotifiableType identifica quem recebe a notificação
type NotifiableType string

const (
	NotifiableUser      NotifiableType = "user"
	NotifiableVolunteer NotifiableType = "volunteer"
)

// NotificationType classifica a notificação
type NotificationType string

const (
	NotificationTrailMatchStatus  NotificationType = "trail_match_status"
	NotificationTrailMatchRequest NotificationType = "trail_match_request"
)

// Recipient é o destinatário de uma notificação
type Recipient struct {
	Type NotifiableType
	ID   uint
}

// Notification é uma notificação persistida (canal "database")
type Notification struct {
	ID        string
	Recipient Recipient
	Type      NotificationType
	Title     string
	Message   string
	Data      map[string]any
	ReadAt    *time.Time
	CreatedAt time.Time
}

// IsRead indica se a notificação já foi lida
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
