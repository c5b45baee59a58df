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

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeError(err)
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storeError(err)
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(r.db.WithContext(ctx).Delete(&model.Profile{}, id).Error)
}

func (r *ProfileRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *ProfileRepositoryImpl) FindFirstByUserID(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	return r.findOne(ctx, specification.ByUserID{UserID: userId})
}

func (r *ProfileRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var m model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProfileRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	var models []*model.Profile
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, storeError(err)
	}
	return r.mapper.ToEntities(models), nil
}
