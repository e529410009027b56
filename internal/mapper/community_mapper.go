package mapper

import (
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/model"
)

type CommunityMapper struct{}

func NewCommunityMapper() *CommunityMapper {
	return &CommunityMapper{}
}

func (m *CommunityMapper) GroupToEntity(g *model.Group) *entity.Group {
	if g == nil {
		return nil
	}
	return &entity.Group{
		Id:          g.Id,
		Name:        g.Name,
		Description: g.Description,
		Category:    g.Category,
		CreatedAt:   g.CreatedAt,
	}
}

func (m *CommunityMapper) GroupToModel(g *entity.Group) *model.Group {
	if g == nil {
		return nil
	}
	return &model.Group{
		Id:          g.Id,
		Name:        g.Name,
		Description: g.Description,
		Category:    g.Category,
		CreatedAt:   g.CreatedAt,
	}
}

func (m *CommunityMapper) GroupToEntities(groups []*model.Group) []*entity.Group {
	entities := make([]*entity.Group, len(groups))
	for i, g := range groups {
		entities[i] = m.GroupToEntity(g)
	}
	return entities
}

func (m *CommunityMapper) MemberToEntity(gm *model.GroupMember) *entity.GroupMember {
	if gm == nil {
		return nil
	}
	return &entity.GroupMember{
		Id:       gm.Id,
		GroupId:  gm.GroupId,
		UserId:   gm.UserId,
		Role:     gm.Role,
		JoinedAt: gm.JoinedAt,
	}
}

func (m *CommunityMapper) MemberToModel(gm *entity.GroupMember) *model.GroupMember {
	if gm == nil {
		return nil
	}
	return &model.GroupMember{
		Id:       gm.Id,
		GroupId:  gm.GroupId,
		UserId:   gm.UserId,
		Role:     gm.Role,
		JoinedAt: gm.JoinedAt,
	}
}

func (m *CommunityMapper) ChallengeToEntity(c *model.Challenge) *entity.Challenge {
	if c == nil {
		return nil
	}
	return &entity.Challenge{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		TargetType:  c.TargetType,
		TargetValue: c.TargetValue,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *CommunityMapper) ChallengeToModel(c *entity.Challenge) *model.Challenge {
	if c == nil {
		return nil
	}
	return &model.Challenge{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		TargetType:  c.TargetType,
		TargetValue: c.TargetValue,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *CommunityMapper) ChallengeToEntities(challenges []*model.Challenge) []*entity.Challenge {
	entities := make([]*entity.Challenge, len(challenges))
	for i, c := range challenges {
		entities[i] = m.ChallengeToEntity(c)
	}
	return entities
}

func (m *CommunityMapper) ParticipantToEntity(p *model.ChallengeParticipant) *entity.ChallengeParticipant {
	if p == nil {
		return nil
	}
	return &entity.ChallengeParticipant{
		Id:          p.Id,
		ChallengeId: p.ChallengeId,
		UserId:      p.UserId,
		Status:      p.Status,
		JoinedAt:    p.JoinedAt,
	}
}

func (m *CommunityMapper) ParticipantToModel(p *entity.ChallengeParticipant) *model.ChallengeParticipant {
	if p == nil {
		return nil
	}
	return &model.ChallengeParticipant{
		Id:          p.Id,
		ChallengeId: p.ChallengeId,
		UserId:      p.UserId,
		Status:      p.Status,
		JoinedAt:    p.JoinedAt,
	}
}
