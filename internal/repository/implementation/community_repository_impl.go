package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/mapper"
	"diet-coach-be/internal/model"
	"diet-coach-be/internal/repository/contract"
	"diet-coach-be/internal/repository/specification"
)

type GroupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunityMapper
}

func NewGroupRepository(db *gorm.DB) contract.GroupRepository {
	return &GroupRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunityMapper(),
	}
}

func (r *GroupRepositoryImpl) Create(ctx context.Context, group *entity.Group) error {
	m := r.mapper.GroupToModel(group)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*group = *r.mapper.GroupToEntity(m)
	return nil
}

func (r *GroupRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Group, error) {
	var m model.Group
	if err := applySpecs(r.db.WithContext(ctx), specs).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.GroupToEntity(&m), nil
}

func (r *GroupRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error) {
	var models []*model.Group
	if err := applySpecs(r.db.WithContext(ctx), specs).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.GroupToEntities(models), nil
}

func (r *GroupRepositoryImpl) CountMembers(ctx context.Context, groupId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("group_id = ?", groupId).
		Count(&count).Error
	return count, err
}

func (r *GroupRepositoryImpl) FindMember(ctx context.Context, groupId, userId uuid.UUID) (*entity.GroupMember, error) {
	var m model.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MemberToEntity(&m), nil
}

func (r *GroupRepositoryImpl) AddMember(ctx context.Context, member *entity.GroupMember) error {
	m := r.mapper.MemberToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.MemberToEntity(m)
	return nil
}

type ChallengeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunityMapper
}

func NewChallengeRepository(db *gorm.DB) contract.ChallengeRepository {
	return &ChallengeRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunityMapper(),
	}
}

func (r *ChallengeRepositoryImpl) Create(ctx context.Context, challenge *entity.Challenge) error {
	m := r.mapper.ChallengeToModel(challenge)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*challenge = *r.mapper.ChallengeToEntity(m)
	return nil
}

func (r *ChallengeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Challenge, error) {
	var m model.Challenge
	if err := applySpecs(r.db.WithContext(ctx), specs).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChallengeToEntity(&m), nil
}

func (r *ChallengeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Challenge, error) {
	var models []*model.Challenge
	if err := applySpecs(r.db.WithContext(ctx), specs).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ChallengeToEntities(models), nil
}

func (r *ChallengeRepositoryImpl) CountParticipants(ctx context.Context, challengeId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ChallengeParticipant{}).
		Where("challenge_id = ?", challengeId).
		Count(&count).Error
	return count, err
}

func (r *ChallengeRepositoryImpl) FindParticipant(ctx context.Context, challengeId, userId uuid.UUID) (*entity.ChallengeParticipant, error) {
	var m model.ChallengeParticipant
	err := r.db.WithContext(ctx).
		Where("challenge_id = ? AND user_id = ?", challengeId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ParticipantToEntity(&m), nil
}

func (r *ChallengeRepositoryImpl) AddParticipant(ctx context.Context, participant *entity.ChallengeParticipant) error {
	m := r.mapper.ParticipantToModel(participant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*participant = *r.mapper.ParticipantToEntity(m)
	return nil
}
