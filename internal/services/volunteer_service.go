package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
	"github.com/rafabene/padelmatch-backend/internal/domain/valueobjects"
)

const (
	VolunteerPageSize = 10
	MaxImageSize      = 2 << 20
	VolunteerImageDir = "uploads/volunteers"
)

// allowedImageTypes mapeia extensões aceitas para o tipo detectado no conteúdo
var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ImageUpload é um arquivo enviado em multipart
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// VolunteerInput representa os dados de cadastro de um voluntário
type VolunteerInput struct {
	Name        string
	Email       string
	Location    string
	Level       int
	Role        string
	PhoneNumber *string
}

// VolunteerUpdate carrega apenas os campos enviados
type VolunteerUpdate struct {
	Name        *string
	Email       *string
	Location    *string
	Level       *int
	Role        *string
	PhoneNumber *string
	Status      *bool
}

// VolunteerPage é uma página da listagem de voluntários
type VolunteerPage struct {
	Volunteers []*entities.Volunteer
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// VolunteerService contém o CRUD de voluntários e o ciclo de vida das imagens
type VolunteerService struct {
	repo    repositories.VolunteerRepository
	storage ports.FileStorage
	logger  ports.Logger
	now     func() time.Time
}

// NewVolunteerService cria um novo VolunteerService
func NewVolunteerService(
	repo repositories.VolunteerRepository,
	storage ports.FileStorage,
	logger ports.Logger,
) *VolunteerService {
	return &VolunteerService{
		repo:    repo,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// ImageURL monta a URL pública da imagem, ou nil quando não há imagem
func (s *VolunteerService) ImageURL(v *entities.Volunteer) *string {
	if !v.HasImage() {
		return nil
	}
	url := s.storage.URL(*v.Image)
	return &url
}

// List retorna voluntários ativos, 10 por página
func (s *VolunteerService) List(ctx context.Context, page int) (*VolunteerPage, error) {
	p := repositories.Pagination{Page: page, PageSize: VolunteerPageSize}.Normalize(VolunteerPageSize)

	volunteers, total, err := s.repo.ListActive(ctx, p)
	if err != nil {
		s.logger.Error("failed to list volunteers", "page", p.Page, "error", err)
		return nil, errors.Internal(err)
	}
	if len(volunteers) == 0 {
		return nil, errors.ErrNoVolunteers
	}

	return &VolunteerPage{
		Volunteers: volunteers,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PageSize,
		TotalPages: totalPages(total, p.PageSize),
	}, nil
}

// Create cadastra um voluntário, com imagem opcional
func (s *VolunteerService) Create(ctx context.Context, input VolunteerInput, image *ImageUpload) (*entities.Volunteer, error) {
	email, err := s.uniqueEmail(ctx, input.Email, 0)
	if err != nil {
		return nil, err
	}
	if err := validateLevel(input.Level); err != nil {
		return nil, err
	}

	v := &entities.Volunteer{
		Name:        strings.TrimSpace(input.Name),
		Email:       email,
		Location:    strings.TrimSpace(input.Location),
		Level:       input.Level,
		Role:        strings.TrimSpace(input.Role),
		PhoneNumber: input.PhoneNumber,
		Status:      true,
	}

	if image != nil {
		key, err := s.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		v.Image = &key
	}

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("failed to create volunteer", "error", err)
		if v.HasImage() {
			s.removeImage(ctx, *v.Image)
		}
		return nil, errors.Internal(err)
	}

	s.logger.Info("volunteer created", "volunteer_id", v.ID)
	return v, nil
}

// Update aplica uma atualização parcial; uma imagem nova substitui a anterior
func (s *VolunteerService) Update(ctx context.Context, id uint, input VolunteerUpdate, image *ImageUpload) (*entities.Volunteer, error) {
	v, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email, err := s.uniqueEmail(ctx, *input.Email, v.ID)
		if err != nil {
			return nil, err
		}
		v.Email = email
	}
	if input.Level != nil {
		if err := validateLevel(*input.Level); err != nil {
			return nil, err
		}
		v.Level = *input.Level
	}
	if input.Name != nil {
		v.Name = strings.TrimSpace(*input.Name)
	}
	if input.Location != nil {
		v.Location = strings.TrimSpace(*input.Location)
	}
	if input.Role != nil {
		v.Role = strings.TrimSpace(*input.Role)
	}
	if input.PhoneNumber != nil {
		v.PhoneNumber = input.PhoneNumber
	}
	if input.Status != nil {
		v.Status = *input.Status
	}

	var oldImage string
	if image != nil {
		key, err := s.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		if v.HasImage() {
			oldImage = *v.Image
		}
		v.Image = &key
	}

	if err := s.repo.Update(ctx, v); err != nil {
		s.logger.Error("failed to update volunteer", "volunteer_id", id, "error", err)
		if image != nil {
			s.removeImage(ctx, *v.Image)
		}
		return nil, errors.Internal(err)
	}

	// A linha já aponta para o arquivo novo; o antigo sai por último
	if oldImage != "" {
		s.removeImage(ctx, oldImage)
	}

	s.logger.Info("volunteer updated", "volunteer_id", id)
	return v, nil
}

// UpdateRole troca apenas o role do voluntário
func (s *VolunteerService) UpdateRole(ctx context.Context, id uint, role string) (*entities.Volunteer, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, errors.ErrValidation.WithField("role", "validation.required")
	}
	return s.Update(ctx, id, VolunteerUpdate{Role: &role}, nil)
}

// Delete remove o voluntário e, se existir, sua imagem
func (s *VolunteerService) Delete(ctx context.Context, id uint) error {
	v, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if v.HasImage() {
		s.removeImage(ctx, *v.Image)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete volunteer", "volunteer_id", id, "error", err)
		return errors.Internal(err)
	}

	s.logger.Info("volunteer deleted", "volunteer_id", id)
	return nil
}

func (s *VolunteerService) find(ctx context.Context, id uint) (*entities.Volunteer, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if v == nil {
		return nil, errors.ErrVolunteerNotFound
	}
	return v, nil
}

// uniqueEmail normaliza o email e garante que nenhum outro voluntário o usa
func (s *VolunteerService) uniqueEmail(ctx context.Context, raw string, selfID uint) (string, error) {
	email, err := valueobjects.NewEmail(raw)
	if err != nil {
		return "", errors.ErrValidation.WithField("email", "validation.email")
	}

	existing, err := s.repo.FindByEmail(ctx, email.String())
	if err != nil {
		return "", errors.Internal(err)
	}
	if existing != nil && existing.ID != selfID {
		return "", errors.ErrValidation.WithField("email", "validation.unique")
	}
	return email.String(), nil
}

func validateLevel(level int) error {
	if level < entities.MinLevel || level > entities.MaxLevel {
		return errors.ErrValidation.WithField("level", "validation.invalid")
	}
	return nil
}

// storeImage valida extensão, tamanho e conteúdo e grava o arquivo
func (s *VolunteerService) storeImage(ctx context.Context, image *ImageUpload) (string, error) {
	ext := strings.ToLower(path.Ext(image.Filename))
	expected, ok := allowedImageTypes[ext]
	if !ok {
		return "", errors.ErrInvalidImage.WithField("image", "validation.image_type")
	}
	if image.Size > MaxImageSize {
		return "", errors.ErrInvalidImage.WithField("image", "validation.image_size")
	}

	data, err := io.ReadAll(io.LimitReader(image.Content, MaxImageSize+1))
	if err != nil {
		return "", errors.Internal(err)
	}
	if len(data) > MaxImageSize {
		return "", errors.ErrInvalidImage.WithField("image", "validation.image_size")
	}

	detected := mimetype.Detect(data)
	if !detected.Is(expected) {
		s.logger.Warn("rejected volunteer image",
			"filename", image.Filename,
			"detected", detected.String(),
		)
		return "", errors.ErrInvalidImage.WithField("image", "validation.image_type")
	}

	key := fmt.Sprintf("%s/%d-%s%s", VolunteerImageDir, s.now().Unix(), uuid.NewString(), ext)
	if err := s.storage.Save(ctx, key, bytes.NewReader(data), expected); err != nil {
		s.logger.Error("failed to store volunteer image", "path", key, "error", err)
		return "", errors.Internal(err)
	}
	return key, nil
}

// removeImage apaga um arquivo sem interromper a operação em caso de falha
func (s *VolunteerService) removeImage(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete volunteer image", "path", key, "error", err)
	}
}
