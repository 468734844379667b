package entities

import "time"

// Group é a sala de chat criada junto com uma PadelMatch
type Group struct {
	ID        uint
	Name      string
	MatchID   uint
	CreatorID uint
	Image     string
	CreatedAt time.Time
}

// GroupMessage é uma mensagem enviada em um Group
type GroupMessage struct {
	ID        uint
	GroupID   uint
	UserID    uint
	Message   string
	Images    []string
	IsRead    bool
	CreatedAt time.Time
}
