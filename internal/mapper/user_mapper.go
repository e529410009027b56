package mapper

import (
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:               u.Id,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		Name:             u.Name,
		MembershipTier:   entity.MembershipTier(u.MembershipTier),
		MembershipExpiry: u.MembershipExpiry,
		MessageCount:     u.MessageCount,
		LastMessageDate:  u.LastMessageDate,
		Xp:               u.Xp,
		BuddyId:          u.BuddyId,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:               u.Id,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		Name:             u.Name,
		MembershipTier:   string(u.MembershipTier),
		MembershipExpiry: u.MembershipExpiry,
		MessageCount:     u.MessageCount,
		LastMessageDate:  u.LastMessageDate,
		Xp:               u.Xp,
		BuddyId:          u.BuddyId,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
