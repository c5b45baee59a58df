package implementation

import (
	"context"
	"errors"

	"healthlink-be/internal/entity"
	"healthlink-be/internal/mapper"
	"healthlink-be/internal/model"
	"healthlink-be/internal/repository/contract"
	"healthlink-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SystemSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingMapper
}

func NewSystemSettingRepository(db *gorm.DB) contract.SystemSettingRepository {
	return &SystemSettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingMapper(),
	}
}

func (r *SystemSettingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SystemSettingRepositoryImpl) Create(ctx context.Context, setting *entity.SystemSetting) error {
	m := r.mapper.ToModel(setting)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeError(err)
	}
	*setting = *r.mapper.ToEntity(m)
	return nil
}

func (r *SystemSettingRepositoryImpl) Update(ctx context.Context, setting *entity.SystemSetting) error {
	m := r.mapper.ToModel(setting)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storeError(err)
	}
	*setting = *r.mapper.ToEntity(m)
	return nil
}

func (r *SystemSettingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(r.db.WithContext(ctx).Delete(&model.SystemSetting{}, id).Error)
}

func (r *SystemSettingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.SystemSetting, error) {
	var m model.SystemSetting
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SystemSettingRepositoryImpl) FindAll(ctx context.Context) ([]*entity.SystemSetting, error) {
	var models []*model.SystemSetting
	query := r.applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "key"})
	if err := query.Find(&models).Error; err != nil {
		return nil, storeError(err)
	}
	return r.mapper.ToEntities(models), nil
}
