package repositories

import (
	"context"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
)

// UserRepository define a interface para leitura de usuários
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindFirstByRole(ctx context.Context, role entities.Role) (*entities.User, error)
	// ListActiveMembersInBox lista membros ativos com localização dentro dos limites, exceto excludeID
	ListActiveMembersInBox(ctx context.Context, excludeID uint, box BoundingBox) ([]*entities.User, error)
	SearchActiveMembers(ctx context.Context, filters MemberSearchFilters) ([]*entities.User, int64, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
}

// BoundingBox é o pré-filtro geográfico da busca por proximidade
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Pagination contém página e tamanho
type Pagination struct {
	Page     int // Página (começa em 1)
	PageSize int
}

// Normalize aplica os limites padrão
func (p Pagination) Normalize(defaultSize int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	return p
}

// Offset calcula o deslocamento da página
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// MemberSearchFilters contém filtros para busca de membros
type MemberSearchFilters struct {
	Keyword string
	Pagination
}
