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

func applySpecs(db *gorm.DB, specs []specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Food logs

type FoodLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LogMapper
}

func NewFoodLogRepository(db *gorm.DB) contract.FoodLogRepository {
	return &FoodLogRepositoryImpl{db: db, mapper: mapper.NewLogMapper()}
}

func (r *FoodLogRepositoryImpl) Create(ctx context.Context, log *entity.FoodLog) error {
	m := r.mapper.FoodToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.FoodToEntity(m)
	return nil
}

func (r *FoodLogRepositoryImpl) Update(ctx context.Context, log *entity.FoodLog) error {
	m := r.mapper.FoodToModel(log)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.FoodToEntity(m)
	return nil
}

func (r *FoodLogRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FoodLog{}, id).Error
}

func (r *FoodLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FoodLog, error) {
	var m model.FoodLog
	if err := applySpecs(r.db.WithContext(ctx), specs).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FoodToEntity(&m), nil
}

func (r *FoodLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FoodLog, error) {
	var models []*model.FoodLog
	if err := applySpecs(r.db.WithContext(ctx), specs).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.FoodToEntities(models), nil
}

// Exercise logs

type ExerciseLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LogMapper
}

func NewExerciseLogRepository(db *gorm.DB) contract.ExerciseLogRepository {
	return &ExerciseLogRepositoryImpl{db: db, mapper: mapper.NewLogMapper()}
}

func (r *ExerciseLogRepositoryImpl) Create(ctx context.Context, log *entity.ExerciseLog) error {
	m := r.mapper.ExerciseToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ExerciseToEntity(m)
	return nil
}

func (r *ExerciseLogRepositoryImpl) Update(ctx context.Context, log *entity.ExerciseLog) error {
	m := r.mapper.ExerciseToModel(log)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ExerciseToEntity(m)
	return nil
}

func (r *ExerciseLogRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ExerciseLog{}, id).Error
}

func (r *ExerciseLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExerciseLog, error) {
	var m model.ExerciseLog
	if err := applySpecs(r.db.WithContext(ctx), specs).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ExerciseToEntity(&m), nil
}

func (r *ExerciseLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExerciseLog, error) {
	var models []*model.ExerciseLog
	if err := applySpecs(r.db.WithContext(ctx), specs).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ExerciseToEntities(models), nil
}

// Water logs

type WaterLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LogMapper
}

func NewWaterLogRepository(db *gorm.DB) contract.WaterLogRepository {
	return &WaterLogRepositoryImpl{db: db, mapper: mapper.NewLogMapper()}
}

func (r *WaterLogRepositoryImpl) Create(ctx context.Context, log *entity.WaterLog) error {
	m := r.mapper.WaterToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.WaterToEntity(m)
	return nil
}

func (r *WaterLogRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WaterLog{}, id).Error
}

func (r *WaterLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WaterLog, error) {
	var m model.WaterLog
	if err := applySpecs(r.db.WithContext(ctx), specs).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.WaterToEntity(&m), nil
}

func (r *WaterLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WaterLog, error) {
	var models []*model.WaterLog
	if err := applySpecs(r.db.WithContext(ctx), specs).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.WaterToEntities(models), nil
}
