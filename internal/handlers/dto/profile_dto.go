package dto

import (
	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// ProfileMatchResponse é uma partida listada no perfil
type ProfileMatchResponse struct {
	ID              uint   `json:"id"`
	MindText        string `json:"mind_text"`
	SelectedLevel   string `json:"selected_level"`
	Level           int    `json:"level"`
	LevelName       string `json:"level_name"`
	LocationAddress string `json:"location_address"`
	PlayerCount     int64  `json:"player_count"`
	Join            bool   `json:"join"`
	CreatedAt       string `json:"created_at"`
}

// ProfileResponse é o perfil com as partidas criadas e as que o usuário entrou
type ProfileResponse struct {
	ID                  uint                   `json:"id"`
	FullName            string                 `json:"full_name"`
	Email               string                 `json:"email"`
	Level               int                    `json:"level"`
	MatchesPlayed       int                    `json:"matches_played"`
	CreatedMatchesCount int                    `json:"created_matches_count"`
	JoinedMatchesCount  int                    `json:"joined_matches_count"`
	CreatedMatches      []ProfileMatchResponse `json:"created_matches"`
	JoinedMatches       []ProfileMatchResponse `json:"joined_matches"`
}

// LevelDescriptorResponse é um par nível/nome
type LevelDescriptorResponse struct {
	Level     int    `json:"level"`
	LevelName string `json:"level_name"`
}

// ToProfileResponse converte o perfil agregado
func ToProfileResponse(p *services.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                  p.User.ID,
		FullName:            p.User.FullName,
		Email:               p.User.Email,
		Level:               p.User.Level,
		MatchesPlayed:       p.User.MatchesPlayed,
		CreatedMatchesCount: len(p.CreatedMatches),
		JoinedMatchesCount:  len(p.JoinedMatches),
		CreatedMatches:      toProfileMatches(p.CreatedMatches),
		JoinedMatches:       toProfileMatches(p.JoinedMatches),
	}
}

func toProfileMatches(items []services.MatchSummary) []ProfileMatchResponse {
	out := make([]ProfileMatchResponse, 0, len(items))
	for _, s := range items {
		out = append(out, ProfileMatchResponse{
			ID:              s.Match.ID,
			MindText:        s.Match.MindText,
			SelectedLevel:   s.Match.SelectedLevel,
			Level:           s.Match.Level,
			LevelName:       s.Match.LevelName,
			LocationAddress: s.LocationAddress,
			PlayerCount:     s.PlayerCount,
			Join:            s.Join,
			CreatedAt:       s.Match.CreatedAt.UTC().Format(DateTimeLayout),
		})
	}
	return out
}

// ToLevelProgressResponse monta o progresso de nível. No nível máximo os campos
// "before" não aparecem, por isso o retorno é um mapa.
func ToLevelProgressResponse(p *entities.LevelProgress) map[string]interface{} {
	resp := map[string]interface{}{
		"user_id":   p.UserID,
		"full_name": p.FullName,
		"user_name": p.UserName,
		"current_level": LevelDescriptorResponse{
			Level:     p.Current.Level,
			LevelName: p.Current.LevelName,
		},
		"after_levels":      nil,
		"after_level_array": nil,
	}

	if p.Next != nil {
		resp["after_levels"] = p.Next.Level
		resp["after_level_array"] = LevelDescriptorResponse{Level: p.Next.Level, LevelName: p.Next.LevelName}
	}

	if !p.IsMaxLevel() {
		var beforeLevel interface{}
		if p.Current.Level > entities.MinLevel {
			beforeLevel = p.Current.Level - 1
		}
		before := make([]LevelDescriptorResponse, 0, len(p.Before))
		for _, d := range p.Before {
			before = append(before, LevelDescriptorResponse{Level: d.Level, LevelName: d.LevelName})
		}
		resp["before_levels"] = beforeLevel
		resp["before_level_array"] = before
	}

	return resp
}
