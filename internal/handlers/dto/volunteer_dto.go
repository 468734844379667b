package dto

import (
	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// ListVolunteersQuery é a página pedida
type ListVolunteersQuery struct {
	Page int `form:"page" binding:"omitempty,gte=1"`
}

// CreateVolunteerRequest é o formulário multipart de cadastro (imagem em "image")
type CreateVolunteerRequest struct {
	Name        string  `form:"name" binding:"required,max=255"`
	Email       string  `form:"email" binding:"required,email,max=255"`
	Location    string  `form:"location" binding:"required,max=255"`
	Level       int     `form:"level" binding:"required,gte=1,lte=5"`
	Role        string  `form:"role" binding:"required,max=255"`
	PhoneNumber *string `form:"phone_number" binding:"omitempty,max=20"`
}

// ToInput converte o formulário para o input do serviço
func (r CreateVolunteerRequest) ToInput() services.VolunteerInput {
	return services.VolunteerInput{
		Name:        r.Name,
		Email:       r.Email,
		Location:    r.Location,
		Level:       r.Level,
		Role:        r.Role,
		PhoneNumber: r.PhoneNumber,
	}
}

// UpdateVolunteerRequest é a atualização parcial (multipart)
type UpdateVolunteerRequest struct {
	Name        *string `form:"name" binding:"omitempty,max=255"`
	Email       *string `form:"email" binding:"omitempty,email,max=255"`
	Location    *string `form:"location" binding:"omitempty,max=255"`
	Level       *int    `form:"level" binding:"omitempty,gte=1,lte=5"`
	Role        *string `form:"role" binding:"omitempty,max=255"`
	PhoneNumber *string `form:"phone_number" binding:"omitempty,max=20"`
	Status      *bool   `form:"status"`
}

// ToInput converte o formulário para o input do serviço
func (r UpdateVolunteerRequest) ToInput() services.VolunteerUpdate {
	return services.VolunteerUpdate{
		Name:        r.Name,
		Email:       r.Email,
		Location:    r.Location,
		Level:       r.Level,
		Role:        r.Role,
		PhoneNumber: r.PhoneNumber,
		Status:      r.Status,
	}
}

// UpdateRoleRequest troca o role do voluntário
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,max=255"`
}

// VolunteerResponse é um voluntário
type VolunteerResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Location    string  `json:"location"`
	Level       int     `json:"level"`
	Role        string  `json:"role"`
	PhoneNumber *string `json:"phone_number"`
	Image       *string `json:"image"`
	Status      bool    `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// VolunteerPageMeta descreve a paginação de voluntários
type VolunteerPageMeta struct {
	CurrentPage     int   `json:"current_page"`
	TotalPages      int   `json:"total_pages"`
	TotalVolunteers int64 `json:"total_volunteers"`
	PerPage         int   `json:"per_page"`
}

// VolunteerListResponse é uma página de voluntários
type VolunteerListResponse struct {
	Data []VolunteerResponse `json:"data"`
	Meta VolunteerPageMeta   `json:"meta"`
}

// ToVolunteerResponse converte um voluntário; image já vem como URL
func ToVolunteerResponse(v *entities.Volunteer, image *string) VolunteerResponse {
	return VolunteerResponse{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Location:    v.Location,
		Level:       v.Level,
		Role:        v.Role,
		PhoneNumber: v.PhoneNumber,
		Image:       image,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt.UTC().Format(DateTimeLayout),
		UpdatedAt:   v.UpdatedAt.UTC().Format(DateTimeLayout),
	}
}

// ToVolunteerListResponse converte uma página
func ToVolunteerListResponse(page *services.VolunteerPage, imageURL func(*entities.Volunteer) *string) VolunteerListResponse {
	items := make([]VolunteerResponse, 0, len(page.Volunteers))
	for _, v := range page.Volunteers {
		items = append(items, ToVolunteerResponse(v, imageURL(v)))
	}
	return VolunteerListResponse{
		Data: items,
		Meta: VolunteerPageMeta{
			CurrentPage:     page.Page,
			TotalPages:      page.TotalPages,
			TotalVolunteers: page.Total,
			PerPage:         page.PerPage,
		},
	}
}
