package entities

import "time"

const TrailRequestStatusPending = "request"

// TrailMatch é uma partida-teste agendada que o usuário aceita ou recusa.
// Status false cobre tanto "pendente" quanto "recusada/expirada".
type TrailMatch struct {
	ID           uint
	UserID       uint
	ClubID       *uint
	Club         *Club
	User         *User
	VolunteerIDs []uint
	Volunteers   []*Volunteer
	Date         time.Time
	Time         string
	Status       bool
	CreatedAt    time.Time
}

// IsExpired indica se a data agendada já passou
func (t *TrailMatch) IsExpired(now time.Time) bool {
	return now.After(t.Date)
}

// Club é o local onde a trail match acontece
type Club struct {
	ID       uint
	ClubName string
	Location string
}

// TrailMatchRequest é o pedido de um usuário para ser avaliado em uma trail match
type TrailMatchRequest struct {
	ID           uint
	UserID       uint
	RequestLevel string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
