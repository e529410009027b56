package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/mapper"
	"diet-coach-be/internal/model"
	"diet-coach-be/internal/repository/contract"
)

type GoogleAuthRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GoogleAuthMapper
}

func NewGoogleAuthRepository(db *gorm.DB) contract.GoogleAuthRepository {
	return &GoogleAuthRepositoryImpl{
		db:     db,
		mapper: mapper.NewGoogleAuthMapper(),
	}
}

func (r *GoogleAuthRepositoryImpl) Upsert(ctx context.Context, auth *entity.GoogleAuth) error {
	m := r.mapper.ToModel(auth)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "refresh_token", "token_expiry", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*auth = *r.mapper.ToEntity(m)
	return nil
}

func (r *GoogleAuthRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.GoogleAuth, error) {
	var m model.GoogleAuth
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GoogleAuthRepositoryImpl) DeleteByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.GoogleAuth{}).Error
}
