package implementation

import (
	"context"

	"healthlink-be/internal/entity"
	"healthlink-be/internal/mapper"
	"healthlink-be/internal/model"
	"healthlink-be/internal/repository/contract"
	"healthlink-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HealthMapper
}

func NewHealthRecordRepository(db *gorm.DB) contract.HealthRecordRepository {
	return &HealthRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewHealthMapper(),
	}
}

func (r *HealthRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HealthRecordRepositoryImpl) Create(ctx context.Context, record *entity.HealthRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeError(err)
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *HealthRecordRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(r.db.WithContext(ctx).Delete(&model.HealthRecord{}, id).Error)
}

func (r *HealthRecordRepositoryImpl) FindAll(ctx context.Context, filter contract.HealthRecordFilter) ([]*entity.HealthRecord, error) {
	specs := make([]specification.Specification, 0, 4)
	if filter.DataType != "" {
		specs = append(specs, specification.ByDataType{DataType: filter.DataType})
	}
	if filter.From != nil {
		specs = append(specs, specification.RecordedOnOrAfter{At: *filter.From})
	}
	if filter.To != nil {
		specs = append(specs, specification.RecordedOnOrBefore{At: *filter.To})
	}
	specs = append(specs, specification.OrderBy{Field: "recorded_at", Desc: true})
	return r.findAll(ctx, specs...)
}

func (r *HealthRecordRepositoryImpl) FindRecentByUserID(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.HealthRecord, error) {
	return r.findAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "recorded_at", Desc: true},
		specification.Limit{N: limit},
	)
}

func (r *HealthRecordRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HealthRecord, error) {
	var models []*model.HealthRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, storeError(err)
	}
	return r.mapper.ToEntities(models), nil
}
