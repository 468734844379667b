package dto

import (
	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
)

// ImageURLFunc monta a URL pública de um arquivo armazenado
type ImageURLFunc func(path string) string

// TrailMatchIDRequest identifica a trail match no corpo da requisição
type TrailMatchIDRequest struct {
	TrailMatchID uint `json:"trail_match_id" binding:"required,gt=0"`
}

// TrailMatchRequestRequest é o pedido de avaliação
type TrailMatchRequestRequest struct {
	RequestLevel string `json:"request_level" binding:"required,max=255"`
}

// StatusResponse é o status atual da trail match
type StatusResponse struct {
	Status bool `json:"status"`
}

// TrailVolunteerResponse é um voluntário associado à trail match
type TrailVolunteerResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

// TrailMatchDetailsResponse descreve uma trail match do usuário
type TrailMatchDetailsResponse struct {
	TrailMatchID uint                     `json:"trail_match_id"`
	FullName     string                   `json:"full_name"`
	Image        *string                  `json:"image"`
	Level        int                      `json:"level"`
	LevelName    string                   `json:"level_name"`
	ClubName     string                   `json:"club_name"`
	ClubLocation string                   `json:"club_location"`
	Time         string                   `json:"time"`
	Date         string                   `json:"date"`
	Volunteers   []TrailVolunteerResponse `json:"volunteers"`
	CreatedAt    string                   `json:"created_at"`
}

// TrailMatchRequestResponse é um pedido de avaliação
type TrailMatchRequestResponse struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	RequestLevel string `json:"request_level"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ToTrailMatchDetailsResponse converte a trail match com clube e voluntários
func ToTrailMatchDetailsResponse(tm *entities.TrailMatch, profileImage *string, volunteerURL ImageURLFunc) TrailMatchDetailsResponse {
	resp := TrailMatchDetailsResponse{
		TrailMatchID: tm.ID,
		Image:        profileImage,
		ClubName:     "No club",
		ClubLocation: "No location",
		Time:         tm.Time,
		Date:         tm.Date.Format("2006-01-02"),
		Volunteers:   make([]TrailVolunteerResponse, 0, len(tm.Volunteers)),
		CreatedAt:    tm.CreatedAt.UTC().Format(DateTimeLayout),
	}

	if tm.User != nil {
		resp.FullName = tm.User.FullName
		resp.Level = tm.User.Level
		resp.LevelName = tm.User.LevelName
	}
	if tm.Club != nil {
		if tm.Club.ClubName != "" {
			resp.ClubName = tm.Club.ClubName
		}
		if tm.Club.Location != "" {
			resp.ClubLocation = tm.Club.Location
		}
	}

	for _, v := range tm.Volunteers {
		item := TrailVolunteerResponse{ID: v.ID, Name: v.Name}
		if v.HasImage() {
			url := volunteerURL(*v.Image)
			item.Image = &url
		}
		resp.Volunteers = append(resp.Volunteers, item)
	}

	return resp
}

// ToTrailMatchRequestResponse converte um pedido de avaliação
func ToTrailMatchRequestResponse(r *entities.TrailMatchRequest) TrailMatchRequestResponse {
	return TrailMatchRequestResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		RequestLevel: r.RequestLevel,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt.UTC().Format(DateTimeLayout),
		UpdatedAt:    r.UpdatedAt.UTC().Format(DateTimeLayout),
	}
}
