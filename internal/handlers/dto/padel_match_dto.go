package dto

import (
	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// CreatePadelMatchRequest representa a criação de uma partida
type CreatePadelMatchRequest struct {
	Latitude      *float64 `json:"latitude" binding:"required,latitude"`
	Longitude     *float64 `json:"longitude" binding:"required,longitude"`
	MindText      string   `json:"mind_text" binding:"required,max=120"`
	SelectedLevel string   `json:"selected_level" binding:"required"`
	Members       []uint   `json:"members" binding:"omitempty,max=8,dive,gt=0"`
}

// ToInput converte o request para o input do serviço
func (r CreatePadelMatchRequest) ToInput() services.CreateMatchInput {
	return services.CreateMatchInput{
		Latitude:      *r.Latitude,
		Longitude:     *r.Longitude,
		MindText:      r.MindText,
		SelectedLevel: r.SelectedLevel,
		MemberIDs:     r.Members,
	}
}

// PadelMatchResponse é a partida criada
type PadelMatchResponse struct {
	ID            uint    `json:"id"`
	CreatorID     uint    `json:"creator_id"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	MindText      string  `json:"mind_text"`
	SelectedLevel string  `json:"selected_level"`
	Level         int     `json:"level"`
	LevelName     string  `json:"level_name"`
	CreatedAt     string  `json:"created_at"`
}

// GroupResponse é o grupo de chat da partida
type GroupResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	MatchID   uint   `json:"match_id"`
	CreatorID uint   `json:"creator_id"`
	Image     string `json:"image"`
}

// CreatedPadelMatchResponse agrupa partida, grupo e participantes
type CreatedPadelMatchResponse struct {
	PadelMatch PadelMatchResponse `json:"padel_match"`
	Group      GroupResponse      `json:"group"`
	Members    []uint             `json:"members"`
}

// PadelMatchMemberResponse é um pedido de entrada
type PadelMatchMemberResponse struct {
	ID           uint   `json:"id"`
	PadelMatchID uint   `json:"padel_match_id"`
	UserID       uint   `json:"user_id"`
	IsApproved   bool   `json:"is_approved"`
	CreatedAt    string `json:"created_at"`
}

// ToPadelMatchResponse converte uma partida
func ToPadelMatchResponse(m *entities.PadelMatch) PadelMatchResponse {
	return PadelMatchResponse{
		ID:            m.ID,
		CreatorID:     m.CreatorID,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		MindText:      m.MindText,
		SelectedLevel: m.SelectedLevel,
		Level:         m.Level,
		LevelName:     m.LevelName,
		CreatedAt:     m.CreatedAt.UTC().Format(DateTimeLayout),
	}
}

// ToGroupResponse converte um grupo
func ToGroupResponse(g *entities.Group) GroupResponse {
	return GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		MatchID:   g.MatchID,
		CreatorID: g.CreatorID,
		Image:     g.Image,
	}
}

// ToCreatedPadelMatchResponse converte o resultado da criação
func ToCreatedPadelMatchResponse(created *services.CreatedMatch) CreatedPadelMatchResponse {
	return CreatedPadelMatchResponse{
		PadelMatch: ToPadelMatchResponse(created.Match),
		Group:      ToGroupResponse(created.Group),
		Members:    created.MemberIDs,
	}
}

// ToPadelMatchMemberResponse converte um pedido de entrada
func ToPadelMatchMemberResponse(m *entities.PadelMatchMember) PadelMatchMemberResponse {
	return PadelMatchMemberResponse{
		ID:           m.ID,
		PadelMatchID: m.PadelMatchID,
		UserID:       m.UserID,
		IsApproved:   m.IsApproved,
		CreatedAt:    m.CreatedAt.UTC().Format(DateTimeLayout),
	}
}
