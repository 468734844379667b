package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// TrailMatchService contém o fluxo de trail matches: status, aceite, recusa e pedidos
type TrailMatchService struct {
	trailRepo repositories.TrailMatchRepository
	userRepo  repositories.UserRepository
	notifier  ports.Notifier
	logger    ports.Logger
	now       func() time.Time
}

// NewTrailMatchService cria um novo TrailMatchService
func NewTrailMatchService(
	trailRepo repositories.TrailMatchRepository,
	userRepo repositories.UserRepository,
	notifier ports.Notifier,
	logger ports.Logger,
) *TrailMatchService {
	return &TrailMatchService{
		trailRepo: trailRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock troca a fonte de tempo (testes)
func (s *TrailMatchService) WithClock(now func() time.Time) *TrailMatchService {
	s.now = now
	return s
}

// CheckStatus retorna o status; trail matches vencidas passam a false e isso é gravado
func (s *TrailMatchService) CheckStatus(ctx context.Context, id uint) (bool, error) {
	tm, err := s.find(ctx, id)
	if err != nil {
		return false, err
	}

	if tm.IsExpired(s.now()) && tm.Status {
		if err := s.trailRepo.UpdateStatus(ctx, id, false); err != nil {
			s.logger.Error("failed to expire trail match", "trail_match_id", id, "error", err)
			return false, errors.Internal(err)
		}
		s.logger.Info("trail match expired", "trail_match_id", id)
		tm.Status = false
	}

	return tm.Status, nil
}

// Accept marca a trail match como aceita e avisa o usuário e os voluntários
func (s *TrailMatchService) Accept(ctx context.Context, id uint) error {
	return s.setStatus(ctx, id, true)
}

// Deny marca a trail match como recusada e avisa o usuário e os voluntários
func (s *TrailMatchService) Deny(ctx context.Context, id uint) error {
	return s.setStatus(ctx, id, false)
}

func (s *TrailMatchService) setStatus(ctx context.Context, id uint, status bool) error {
	tm, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.trailRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("failed to update trail match status", "trail_match_id", id, "error", err)
		return errors.Internal(err)
	}
	tm.Status = status

	title, verb := "Trail Match Denied", "denied"
	if status {
		title, verb = "Trail Match Accepted", "accepted"
	}

	fullName := ""
	if tm.User != nil {
		fullName = tm.User.FullName
	}
	message := fmt.Sprintf("%s has %s the trail match.", fullName, verb)

	// A mudança de status já está gravada; falhas de notificação só vão para o log
	recipients := make([]entities.Recipient, 0, len(tm.VolunteerIDs)+1)
	recipients = append(recipients, entities.Recipient{Type: entities.NotifiableUser, ID: tm.UserID})
	for _, vid := range tm.VolunteerIDs {
		recipients = append(recipients, entities.Recipient{Type: entities.NotifiableVolunteer, ID: vid})
	}

	for _, r := range recipients {
		n := &entities.Notification{
			Recipient: r,
			Type:      entities.NotificationTrailMatchStatus,
			Title:     title,
			Message:   message,
			Data: map[string]any{
				"trail_match_id": tm.ID,
				"status":         status,
				"user_id":        tm.UserID,
				"full_name":      fullName,
			},
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.logger.Warn("failed to notify trail match status",
				"trail_match_id", id,
				"recipient_type", r.Type,
				"recipient_id", r.ID,
				"error", err,
			)
		}
	}

	s.logger.Info("trail match status updated", "trail_match_id", id, "status", status)
	return nil
}

// Details lista as trail matches do usuário atual com clube e voluntários
func (s *TrailMatchService) Details(ctx context.Context, current *entities.User) ([]*entities.TrailMatch, error) {
	if current == nil {
		return nil, errors.ErrUnauthenticated
	}

	matches, err := s.trailRepo.ListByUser(ctx, current.ID)
	if err != nil {
		s.logger.Error("failed to list trail matches", "user_id", current.ID, "error", err)
		return nil, errors.Internal(err)
	}
	if len(matches) == 0 {
		return nil, errors.ErrNoTrailMatches
	}

	for _, m := range matches {
		m.User = current
	}
	return matches, nil
}

// SubmitRequest registra o pedido de avaliação e avisa o administrador.
// Sem administrador cadastrado nada é gravado.
func (s *TrailMatchService) SubmitRequest(ctx context.Context, current *entities.User, requestLevel string) (*entities.TrailMatchRequest, error) {
	if current == nil {
		return nil, errors.ErrUnauthenticated
	}

	requestLevel = strings.TrimSpace(requestLevel)
	if requestLevel == "" {
		return nil, errors.ErrValidation.WithField("request_level", "validation.required")
	}

	admin, err := s.userRepo.FindFirstByRole(ctx, entities.RoleAdmin)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if admin == nil {
		s.logger.Error("no admin user available for trail match request", "user_id", current.ID)
		return nil, errors.ErrNoAdminAvailable
	}

	req := &entities.TrailMatchRequest{
		UserID:       current.ID,
		RequestLevel: requestLevel,
		Status:       entities.TrailRequestStatusPending,
	}
	if err := s.trailRepo.CreateRequest(ctx, req); err != nil {
		s.logger.Error("failed to create trail match request", "user_id", current.ID, "error", err)
		return nil, errors.Internal(err)
	}

	n := &entities.Notification{
		Recipient: entities.Recipient{Type: entities.NotifiableUser, ID: admin.ID},
		Type:      entities.NotificationTrailMatchRequest,
		Title:     "Trail Match Request",
		Message:   fmt.Sprintf("%s has requested a trail match.", current.FullName),
		Data: map[string]any{
			"request_id":    req.ID,
			"user_id":       current.ID,
			"full_name":     current.FullName,
			"request_level": req.RequestLevel,
		},
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("failed to notify admin of trail match request",
			"request_id", req.ID,
			"admin_id", admin.ID,
			"error", err,
		)
	}

	s.logger.Info("trail match request created", "request_id", req.ID, "user_id", current.ID)
	return req, nil
}

// LatestRequest retorna o pedido pendente mais recente do usuário atual
func (s *TrailMatchService) LatestRequest(ctx context.Context, current *entities.User) (*entities.TrailMatchRequest, error) {
	if current == nil {
		return nil, errors.ErrUnauthenticated
	}

	req, err := s.trailRepo.FindLatestRequest(ctx, current.ID, entities.TrailRequestStatusPending)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if req == nil {
		return nil, errors.ErrTrailRequestNotFound
	}
	return req, nil
}

func (s *TrailMatchService) find(ctx context.Context, id uint) (*entities.TrailMatch, error) {
	tm, err := s.trailRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if tm == nil {
		return nil, errors.ErrTrailMatchNotFound
	}
	return tm, nil
}
