package dto

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/services"
)

// SearchMembersQuery são os parâmetros da busca de membros
type SearchMembersQuery struct {
	Keyword string `form:"keyword" binding:"required"`
	Page    int    `form:"page" binding:"omitempty,gte=1"`
}

// LevelResponse é o nível do usuário atual
type LevelResponse struct {
	Level string `json:"level"`
}

// NearbyMemberResponse é um membro próximo
type NearbyMemberResponse struct {
	ID        uint    `json:"id"`
	FullName  string  `json:"full_name"`
	UserName  string  `json:"user_name"`
	Level     int     `json:"level"`
	LevelName string  `json:"level_name"`
	Image     *string `json:"image"`
	Distance  string  `json:"distance"`
}

// NearbyMembersResponse agrupa os membros próximos
type NearbyMembersResponse struct {
	TotalMembers int                    `json:"total_members"`
	Members      []NearbyMemberResponse `json:"members"`
}

// MemberResponse é um membro no resultado da busca
type MemberResponse struct {
	ID        uint    `json:"id"`
	FullName  string  `json:"full_name"`
	UserName  string  `json:"user_name"`
	Level     int     `json:"level"`
	LevelName string  `json:"level_name"`
	Image     *string `json:"image"`
}

// PageMeta descreve a paginação da busca de membros
type PageMeta struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalMembers int64 `json:"total_members"`
	PerPage      int   `json:"per_page"`
}

// MemberSearchResponse é uma página da busca
type MemberSearchResponse struct {
	Data []MemberResponse `json:"data"`
	Meta PageMeta         `json:"meta"`
}

// ToNearbyMembersResponse converte o resultado da busca por proximidade
func ToNearbyMembersResponse(c *gin.Context, members []services.NearbyMember) NearbyMembersResponse {
	items := make([]NearbyMemberResponse, 0, len(members))
	for _, m := range members {
		items = append(items, NearbyMemberResponse{
			ID:        m.User.ID,
			FullName:  m.User.FullName,
			UserName:  m.User.UserName,
			Level:     m.User.Level,
			LevelName: m.User.LevelName,
			Image:     ProfileImageURL(c, m.User.Image),
			Distance:  fmt.Sprintf("%.2f km", m.DistanceKm),
		})
	}
	return NearbyMembersResponse{TotalMembers: len(items), Members: items}
}

// ToMemberSearchResponse converte uma página da busca
func ToMemberSearchResponse(c *gin.Context, page *services.MemberPage) MemberSearchResponse {
	items := make([]MemberResponse, 0, len(page.Members))
	for _, u := range page.Members {
		items = append(items, MemberResponse{
			ID:        u.ID,
			FullName:  u.FullName,
			UserName:  u.UserName,
			Level:     u.Level,
			LevelName: u.LevelName,
			Image:     ProfileImageURL(c, u.Image),
		})
	}
	return MemberSearchResponse{
		Data: items,
		Meta: PageMeta{
			CurrentPage:  page.Page,
			TotalPages:   page.TotalPages,
			TotalMembers: page.Total,
			PerPage:      page.PerPage,
		},
	}
}
