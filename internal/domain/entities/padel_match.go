package entities

import "time"

const (
	// MaxInvitedMembers é o limite de convidados aceitos na criação
	MaxInvitedMembers = 8
	// MaxMatchParticipants inclui o criador
	MaxMatchParticipants = MaxInvitedMembers + 1
	// JoinablePlayerLimit: partidas abaixo deste número de jogadores aceitam entrada
	JoinablePlayerLimit = 8

	DefaultGroupImage = "avatar1.png"
)

// PadelMatch é uma partida criada por um jogador
type PadelMatch struct {
	ID            uint
	CreatorID     uint
	Latitude      float64
	Longitude     float64
	MindText      string
	SelectedLevel string
	Level         int
	LevelName     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PadelMatchMember é o pedido (ou a confirmação) de entrada de um usuário em uma partida
type PadelMatchMember struct {
	ID           uint
	PadelMatchID uint
	UserID       uint
	IsApproved   bool
	CreatedAt    time.Time
}

// JoinedMatch é uma participação com os dados da partida embutidos
type JoinedMatch struct {
	Member PadelMatchMember
	Match  PadelMatch
}

// ParticipantIDs acrescenta o criador aos convidados removendo repetições,
// preservando a ordem de chegada
func ParticipantIDs(creatorID uint, memberIDs []uint) []uint {
	seen := make(map[uint]struct{}, len(memberIDs)+1)
	ids := make([]uint, 0, len(memberIDs)+1)
	for _, id := range append(append([]uint{}, memberIDs...), creatorID) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// CanJoin indica se ainda há vaga na partida
func CanJoin(playerCount int64) bool {
	return playerCount < JoinablePlayerLimit
}
