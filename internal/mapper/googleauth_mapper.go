package mapper

import (
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/model"
)

type GoogleAuthMapper struct{}

func NewGoogleAuthMapper() *GoogleAuthMapper {
	return &GoogleAuthMapper{}
}

func (m *GoogleAuthMapper) ToEntity(g *model.GoogleAuth) *entity.GoogleAuth {
	if g == nil {
		return nil
	}
	return &entity.GoogleAuth{
		Id:           g.Id,
		UserId:       g.UserId,
		AccessToken:  g.AccessToken,
		RefreshToken: g.RefreshToken,
		TokenExpiry:  g.TokenExpiry,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func (m *GoogleAuthMapper) ToModel(g *entity.GoogleAuth) *model.GoogleAuth {
	if g == nil {
		return nil
	}
	return &model.GoogleAuth{
		Id:           g.Id,
		UserId:       g.UserId,
		AccessToken:  g.AccessToken,
		RefreshToken: g.RefreshToken,
		TokenExpiry:  g.TokenExpiry,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}
