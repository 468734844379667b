package services

import (
	"context"
	errs "errors"

	"golang.org/x/sync/errgroup"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// Textos devolvidos no lugar do endereço quando a geocodificação falha
const (
	LocationNotFound      = "Location not found"
	LocationLookupFailed  = "Error retrieving location"
	defaultGeocodeWorkers = 4
)

// ProfileService monta o perfil com as partidas criadas e as que o usuário entrou
type ProfileService struct {
	userRepo  repositories.UserRepository
	matchRepo repositories.PadelMatchRepository
	groupRepo repositories.GroupRepository
	geocoder  ports.Geocoder
	workers   int
	logger    ports.Logger
}

// NewProfileService cria um novo ProfileService; workers limita as geocodificações simultâneas
func NewProfileService(
	userRepo repositories.UserRepository,
	matchRepo repositories.PadelMatchRepository,
	groupRepo repositories.GroupRepository,
	geocoder ports.Geocoder,
	workers int,
	logger ports.Logger,
) *ProfileService {
	if workers <= 0 {
		workers = defaultGeocodeWorkers
	}
	return &ProfileService{
		userRepo:  userRepo,
		matchRepo: matchRepo,
		groupRepo: groupRepo,
		geocoder:  geocoder,
		workers:   workers,
		logger:    logger,
	}
}

// MatchSummary é uma partida do perfil com endereço e ocupação
type MatchSummary struct {
	Match           entities.PadelMatch
	LocationAddress string
	PlayerCount     int64
	Join            bool
}

// Profile é o perfil agregado de um usuário
type Profile struct {
	User           *entities.User
	CreatedMatches []MatchSummary
	JoinedMatches  []MatchSummary
}

// MyProfile monta o perfil do usuário atual
func (s *ProfileService) MyProfile(ctx context.Context, current *entities.User) (*Profile, error) {
	if current == nil {
		return nil, errors.ErrUnauthenticated
	}
	return s.build(ctx, current)
}

// OtherProfile monta o perfil de outro usuário
func (s *ProfileService) OtherProfile(ctx context.Context, id uint) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return s.build(ctx, user)
}

// LevelProgress calcula os níveis anteriores, atual e próximo do usuário atual
func (s *ProfileService) LevelProgress(_ context.Context, current *entities.User) (*entities.LevelProgress, error) {
	if current == nil {
		return nil, errors.ErrUnauthenticated
	}
	return entities.NewLevelProgress(current), nil
}

func (s *ProfileService) build(ctx context.Context, user *entities.User) (*Profile, error) {
	created, err := s.matchRepo.ListByCreator(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to list created matches", "user_id", user.ID, "error", err)
		return nil, errors.Internal(err)
	}

	joined, err := s.matchRepo.ListJoinedBy(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to list joined matches", "user_id", user.ID, "error", err)
		return nil, errors.Internal(err)
	}

	matches := make([]entities.PadelMatch, 0, len(created)+len(joined))
	for _, m := range created {
		matches = append(matches, *m)
	}
	for _, j := range joined {
		matches = append(matches, j.Match)
	}

	ids := make([]uint, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	counts, err := s.groupRepo.CountMembersByMatchIDs(ctx, uniqueIDs(ids))
	if err != nil {
		s.logger.Error("failed to count group members", "user_id", user.ID, "error", err)
		return nil, errors.Internal(err)
	}

	addresses := s.resolveAddresses(ctx, matches)

	summaries := make([]MatchSummary, len(matches))
	for i, m := range matches {
		count := counts[m.ID]
		summaries[i] = MatchSummary{
			Match:           m,
			LocationAddress: addresses[i],
			PlayerCount:     count,
			Join:            entities.CanJoin(count),
		}
	}

	return &Profile{
		User:           user,
		CreatedMatches: summaries[:len(created)],
		JoinedMatches:  summaries[len(created):],
	}, nil
}

// resolveAddresses geocodifica as partidas em paralelo, mantendo a ordem de entrada.
// Falhas viram texto no lugar do endereço; o detalhe fica só no log.
func (s *ProfileService) resolveAddresses(ctx context.Context, matches []entities.PadelMatch) []string {
	addresses := make([]string, len(matches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range matches {
		m := matches[i]
		g.Go(func() error {
			address, err := s.geocoder.ReverseGeocode(gctx, m.Latitude, m.Longitude)
			switch {
			case err == nil:
				addresses[i] = address
			case errs.Is(err, ports.ErrLocationNotFound):
				addresses[i] = LocationNotFound
			default:
				s.logger.Warn("reverse geocoding failed",
					"match_id", m.ID,
					"latitude", m.Latitude,
					"longitude", m.Longitude,
					"error", err,
				)
				addresses[i] = LocationLookupFailed
			}
			return nil
		})
	}

	_ = g.Wait()
	return addresses
}
