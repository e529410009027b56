package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/pkg/gamify"
)

type ICommunityService interface {
	SetBuddy(ctx context.Context, userId, buddyId uuid.UUID) (*dto.BuddyResponse, error)
	RemoveBuddy(ctx context.Context, userId uuid.UUID) error
	GetBuddy(ctx context.Context, userId uuid.UUID) (*dto.BuddyResponse, error)
	Gamification(ctx context.Context, userId uuid.UUID) (*dto.GamificationResponse, error)

	ListGroups(ctx context.Context, userId uuid.UUID) ([]*dto.GroupResponse, error)
	JoinGroup(ctx context.Context, userId, groupId uuid.UUID) error
	ListChallenges(ctx context.Context, userId uuid.UUID) ([]*dto.ChallengeResponse, error)
	JoinChallenge(ctx context.Context, userId, challengeId uuid.UUID) error
}

type communityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCommunityService(uowFactory unitofwork.RepositoryFactory) ICommunityService {
	return &communityService{
		uowFactory: uowFactory,
	}
}

func (s *communityService) SetBuddy(ctx context.Context, userId, buddyId uuid.UUID) (*dto.BuddyResponse, error) {
	if userId == buddyId {
		return nil, errors.New("cannot buddy yourself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	buddy, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: buddyId})
	if err != nil {
		return nil, err
	}
	if buddy == nil {
		return nil, ErrUserNotFound
	}

	if err := uow.UserRepository().SetBuddy(ctx, userId, &buddyId); err != nil {
		return nil, err
	}

	return &dto.BuddyResponse{
		Id:    buddy.Id,
		Name:  buddy.Name,
		Xp:    buddy.Xp,
		Level: gamify.LevelFor(buddy.Xp).Title,
	}, nil
}

func (s *communityService) RemoveBuddy(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().SetBuddy(ctx, userId, nil)
}

func (s *communityService) GetBuddy(ctx context.Context, userId uuid.UUID) (*dto.BuddyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.BuddyId == nil {
		return nil, ErrNotFound
	}

	buddy, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *user.BuddyId})
	if err != nil {
		return nil, err
	}
	if buddy == nil {
		return nil, ErrNotFound
	}

	return &dto.BuddyResponse{
		Id:    buddy.Id,
		Name:  buddy.Name,
		Xp:    buddy.Xp,
		Level: gamify.LevelFor(buddy.Xp).Title,
	}, nil
}

// ListGroups returns every group ordered by name, annotated with the member
// count and whether the caller has joined.
func (s *communityService) ListGroups(ctx context.Context, userId uuid.UUID) ([]*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	groups, err := uow.GroupRepository().FindAll(ctx, specification.OrderBy{Field: "name", Desc: false})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GroupResponse, len(groups))
	for i, g := range groups {
		count, err := uow.GroupRepository().CountMembers(ctx, g.Id)
		if err != nil {
			return nil, err
		}
		member, err := uow.GroupRepository().FindMember(ctx, g.Id, userId)
		if err != nil {
			return nil, err
		}
		result[i] = &dto.GroupResponse{
			Id:           g.Id,
			Name:         g.Name,
			Description:  g.Description,
			Category:     g.Category,
			MembersCount: count,
			IsJoined:     member != nil,
		}
	}
	return result, nil
}

func (s *communityService) JoinGroup(ctx context.Context, userId, groupId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: groupId})
	if err != nil {
		return err
	}
	if group == nil {
		return ErrNotFound
	}

	existing, err := uow.GroupRepository().FindMember(ctx, groupId, userId)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyJoined
	}

	return uow.GroupRepository().AddMember(ctx, &entity.GroupMember{
		Id:      uuid.New(),
		GroupId: groupId,
		UserId:  userId,
		Role:    entity.GroupRoleMember,
	})
}

// ListChallenges returns challenges that have not ended yet, newest start
// first, annotated with the participant count and the caller's membership.
func (s *communityService) ListChallenges(ctx context.Context, userId uuid.UUID) ([]*dto.ChallengeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	challenges, err := uow.ChallengeRepository().FindAll(ctx,
		specification.EndsOnOrAfter{From: time.Now()},
		specification.OrderBy{Field: "start_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChallengeResponse, len(challenges))
	for i, c := range challenges {
		count, err := uow.ChallengeRepository().CountParticipants(ctx, c.Id)
		if err != nil {
			return nil, err
		}
		participant, err := uow.ChallengeRepository().FindParticipant(ctx, c.Id, userId)
		if err != nil {
			return nil, err
		}
		result[i] = &dto.ChallengeResponse{
			Id:                c.Id,
			Title:             c.Title,
			Description:       c.Description,
			StartDate:         c.StartDate,
			EndDate:           c.EndDate,
			TargetType:        c.TargetType,
			TargetValue:       c.TargetValue,
			ParticipantsCount: count,
			IsJoined:          participant != nil,
		}
	}
	return result, nil
}

func (s *communityService) JoinChallenge(ctx context.Context, userId, challengeId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	challenge, err := uow.ChallengeRepository().FindOne(ctx, specification.ByID{ID: challengeId})
	if err != nil {
		return err
	}
	if challenge == nil {
		return ErrNotFound
	}

	existing, err := uow.ChallengeRepository().FindParticipant(ctx, challengeId, userId)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyJoined
	}

	return uow.ChallengeRepository().AddParticipant(ctx, &entity.ChallengeParticipant{
		Id:          uuid.New(),
		ChallengeId: challengeId,
		UserId:      userId,
		Status:      entity.ChallengeStatusJoined,
	})
}

func (s *communityService) Gamification(ctx context.Context, userId uuid.UUID) (*dto.GamificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	info := gamify.LevelFor(user.Xp)
	return &dto.GamificationResponse{
		Xp:          user.Xp,
		Level:       info.Title,
		NextLevelXp: info.NextLevelXp,
		Progress:    float64(info.Progress) / 100,
	}, nil
}
