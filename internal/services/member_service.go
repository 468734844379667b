package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
	"github.com/rafabene/padelmatch-backend/internal/domain/valueobjects"
)

const (
	// NearbyRadiusKm é o raio da busca por membros próximos
	NearbyRadiusKm = 10.0
	// MemberSearchPageSize é o tamanho fixo da página de busca
	MemberSearchPageSize = 20
)

// MemberService contém a descoberta de membros (nível, proximidade e busca)
type MemberService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewMemberService cria um novo MemberService
func NewMemberService(userRepo repositories.UserRepository, logger ports.Logger) *MemberService {
	return &MemberService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// NearbyMember é um membro encontrado com sua distância ao usuário atual
type NearbyMember struct {
	User       *entities.User
	DistanceKm float64
}

// MemberPage é uma página do resultado de busca
type MemberPage struct {
	Members    []*entities.User
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// Level retorna o nível do usuário atual no formato "N(Nome)"
func (s *MemberService) Level(_ context.Context, current *entities.User) (string, error) {
	if current == nil {
		return "", errors.ErrUnauthenticated
	}
	return current.LevelLabel(), nil
}

// NearbyMembers lista membros ativos em até 10 km, do mais próximo ao mais distante
func (s *MemberService) NearbyMembers(ctx context.Context, current *entities.User) ([]NearbyMember, error) {
	if current == nil {
		return nil, errors.ErrUnauthenticated
	}
	if !current.HasLocation() {
		return nil, errors.ErrUserLocationMissing
	}

	origin := valueobjects.Coordinates{Latitude: *current.Latitude, Longitude: *current.Longitude}
	minLat, maxLat, minLng, maxLng := origin.BoundingBox(NearbyRadiusKm)

	candidates, err := s.userRepo.ListActiveMembersInBox(ctx, current.ID, repositories.BoundingBox{
		MinLat: minLat, MaxLat: maxLat,
		MinLng: minLng, MaxLng: maxLng,
	})
	if err != nil {
		s.logger.Error("failed to list nearby members", "user_id", current.ID, "error", err)
		return nil, errors.Internal(err)
	}

	nearby := make([]NearbyMember, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.HasLocation() {
			continue
		}
		distance := origin.DistanceKm(valueobjects.Coordinates{
			Latitude:  *candidate.Latitude,
			Longitude: *candidate.Longitude,
		})
		if distance <= NearbyRadiusKm {
			nearby = append(nearby, NearbyMember{User: candidate, DistanceKm: distance})
		}
	}

	if len(nearby) == 0 {
		return nil, errors.ErrNoNearbyMembers
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}

// SearchMembers busca membros ativos pelo nome (sem diferenciar maiúsculas), 20 por página
func (s *MemberService) SearchMembers(ctx context.Context, keyword string, page int) (*MemberPage, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, errors.ErrValidation.WithField("keyword", "validation.required")
	}

	pagination := repositories.Pagination{Page: page, PageSize: MemberSearchPageSize}.Normalize(MemberSearchPageSize)

	members, total, err := s.userRepo.SearchActiveMembers(ctx, repositories.MemberSearchFilters{
		Keyword:    keyword,
		Pagination: pagination,
	})
	if err != nil {
		s.logger.Error("failed to search members", "keyword", keyword, "error", err)
		return nil, errors.Internal(err)
	}

	if len(members) == 0 {
		return nil, errors.ErrNoMembersFound
	}

	return &MemberPage{
		Members:    members,
		Total:      total,
		Page:       pagination.Page,
		PerPage:    pagination.PageSize,
		TotalPages: totalPages(total, pagination.PageSize),
	}, nil
}

// totalPages segue o "last page" usual: no mínimo 1
func totalPages(total int64, perPage int) int {
	if total == 0 || perPage <= 0 {
		return 1
	}
	return int(math.Ceil(float64(total) / float64(perPage)))
}
