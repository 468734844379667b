package services

import (
	"context"
	errs "errors"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
)

// PadelMatchService contém a lógica de criação de partidas e seus grupos
type PadelMatchService struct {
	matchRepo repositories.PadelMatchRepository
	groupRepo repositories.GroupRepository
	userRepo  repositories.UserRepository
	uow       ports.UnitOfWork
	logger    ports.Logger
}

// NewPadelMatchService cria um novo PadelMatchService
func NewPadelMatchService(
	matchRepo repositories.PadelMatchRepository,
	groupRepo repositories.GroupRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PadelMatchService {
	return &PadelMatchService{
		matchRepo: matchRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		uow:       uow,
		logger:    logger,
	}
}

// CreateMatchInput representa os dados para criar uma partida
type CreateMatchInput struct {
	Latitude      float64
	Longitude     float64
	MindText      string
	SelectedLevel string
	MemberIDs     []uint
}

// CreatedMatch é a partida recém-criada com seu grupo e participantes
type CreatedMatch struct {
	Match     *entities.PadelMatch
	Group     *entities.Group
	MemberIDs []uint
}

// CreateMatch cria a partida, o grupo e anexa os participantes em uma única transação
func (s *PadelMatchService) CreateMatch(ctx context.Context, creator *entities.User, input CreateMatchInput) (*CreatedMatch, error) {
	if creator == nil {
		return nil, errors.ErrUnauthenticated
	}

	level, levelName, err := entities.ParseSelectedLevel(input.SelectedLevel)
	switch {
	case errs.Is(err, entities.ErrLevelNameTooLong):
		return nil, errors.ErrLevelNameTooLong
	case err != nil:
		return nil, errors.ErrValidation.WithField("selected_level", "validation.level_format")
	}

	invited := uniqueIDs(input.MemberIDs)
	if len(invited) > 0 {
		found, err := s.userRepo.CountByIDs(ctx, invited)
		if err != nil {
			return nil, errors.Internal(err)
		}
		if found != int64(len(invited)) {
			return nil, errors.ErrValidation.WithField("members", "validation.exists")
		}
	}

	participants := entities.ParticipantIDs(creator.ID, input.MemberIDs)
	if len(participants) > entities.MaxMatchParticipants {
		return nil, errors.ErrMatchFull
	}

	s.logger.Info("creating padel match", "creator_id", creator.ID, "participants", len(participants))

	result := &CreatedMatch{MemberIDs: participants}
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		match := &entities.PadelMatch{
			CreatorID:     creator.ID,
			Latitude:      input.Latitude,
			Longitude:     input.Longitude,
			MindText:      input.MindText,
			SelectedLevel: input.SelectedLevel,
			Level:         level,
			LevelName:     levelName,
		}
		if err := s.matchRepo.Create(txCtx, match); err != nil {
			return err
		}

		group := &entities.Group{
			Name:      creator.UserName,
			MatchID:   match.ID,
			CreatorID: creator.ID,
			Image:     entities.DefaultGroupImage,
		}
		if err := s.groupRepo.Create(txCtx, group); err != nil {
			return err
		}

		if err := s.groupRepo.AttachMembers(txCtx, group.ID, participants); err != nil {
			return err
		}

		result.Match = match
		result.Group = group
		return nil
	})
	if err != nil {
		s.logger.Error("failed to create padel match", "creator_id", creator.ID, "error", err)
		return nil, errors.Internal(err)
	}

	s.logger.Info("padel match created", "match_id", result.Match.ID, "group_id", result.Group.ID)
	return result, nil
}

// DeleteMatch remove a partida; grupo e membros saem em cascata
func (s *PadelMatchService) DeleteMatch(ctx context.Context, id uint) error {
	match, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Internal(err)
	}
	if match == nil {
		return errors.ErrPadelMatchNotFound
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete padel match", "match_id", id, "error", err)
		return errors.Internal(err)
	}

	s.logger.Info("padel match deleted", "match_id", id)
	return nil
}

// JoinMatch registra um pedido de entrada ainda não aprovado
func (s *PadelMatchService) JoinMatch(ctx context.Context, user *entities.User, matchID uint) (*entities.PadelMatchMember, error) {
	if user == nil {
		return nil, errors.ErrUnauthenticated
	}

	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if match == nil {
		return nil, errors.ErrPadelMatchNotFound
	}
	if match.CreatorID == user.ID {
		return nil, errors.ErrCreatorCannotJoin
	}

	existing, err := s.matchRepo.FindMember(ctx, matchID, user.ID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if existing != nil {
		return nil, errors.ErrAlreadyRequested
	}

	member := &entities.PadelMatchMember{PadelMatchID: matchID, UserID: user.ID}
	if err := s.matchRepo.CreateMember(ctx, member); err != nil {
		s.logger.Error("failed to create join request", "match_id", matchID, "user_id", user.ID, "error", err)
		return nil, errors.Internal(err)
	}

	s.logger.Info("join request created", "match_id", matchID, "user_id", user.ID)
	return member, nil
}

// ApproveMember aprova o pedido e adiciona o usuário ao grupo da partida.
// Somente o criador aprova; grupos com 8 jogadores estão cheios.
func (s *PadelMatchService) ApproveMember(ctx context.Context, creator *entities.User, matchID, userID uint) (*entities.PadelMatchMember, error) {
	if creator == nil {
		return nil, errors.ErrUnauthenticated
	}

	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if match == nil {
		return nil, errors.ErrPadelMatchNotFound
	}
	if match.CreatorID != creator.ID {
		return nil, errors.ErrForbidden
	}

	var member *entities.PadelMatchMember
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		found, err := s.matchRepo.FindMember(txCtx, matchID, userID)
		if err != nil {
			return err
		}
		if found == nil {
			return errors.ErrJoinRequestNotFound
		}
		member = found
		if found.IsApproved {
			return nil
		}

		group, err := s.groupRepo.FindByMatchID(txCtx, matchID)
		if err != nil {
			return err
		}
		if group == nil {
			return errors.ErrGroupNotFound
		}

		count, err := s.groupRepo.CountMembers(txCtx, group.ID)
		if err != nil {
			return err
		}
		if !entities.CanJoin(count) {
			return errors.ErrMatchFull
		}

		if err := s.matchRepo.ApproveMember(txCtx, found.ID); err != nil {
			return err
		}
		if err := s.groupRepo.AttachMembers(txCtx, group.ID, []uint{userID}); err != nil {
			return err
		}

		member.IsApproved = true
		return nil
	})
	if err != nil {
		var de *errors.DomainError
		if errors.As(err, &de) {
			return nil, de
		}
		s.logger.Error("failed to approve member", "match_id", matchID, "user_id", userID, "error", err)
		return nil, errors.Internal(err)
	}

	s.logger.Info("member approved", "match_id", matchID, "user_id", userID)
	return member, nil
}

// uniqueIDs remove ids repetidos preservando a ordem
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
