package service

import (
	"context"
	"time"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/entity"
	"healthlink-be/internal/repository/contract"
	"healthlink-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IHealthRecordService interface {
	GetAll(ctx context.Context, query *dto.ListHealthRecordsQuery) ([]*dto.HealthRecordResponse, error)
	Create(ctx context.Context, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type healthRecordService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHealthRecordService(uowFactory unitofwork.RepositoryFactory) IHealthRecordService {
	return &healthRecordService{
		uowFactory: uowFactory,
	}
}

func (s *healthRecordService) GetAll(ctx context.Context, query *dto.ListHealthRecordsQuery) ([]*dto.HealthRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.HealthRecordRepository().FindAll(ctx, contract.HealthRecordFilter{
		DataType: query.DataType,
		From:     query.StartDate,
		To:       query.EndDate,
	})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.HealthRecordResponse, len(records))
	for i, h := range records {
		result[i] = toHealthRecordResponse(h)
	}
	return result, nil
}

func (s *healthRecordService) Create(ctx context.Context, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	record := entity.HealthRecord{
		Id:         uuid.New(),
		UserId:     req.UserId,
		DataType:   req.DataType,
		Value:      req.Value,
		Unit:       req.Unit,
		RecordedAt: recordedAt,
	}
	if err := uow.HealthRecordRepository().Create(ctx, &record); err != nil {
		return nil, err
	}

	return toHealthRecordResponse(&record), nil
}

func (s *healthRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.HealthRecordRepository().Delete(ctx, id)
}

func toHealthRecordResponse(h *entity.HealthRecord) *dto.HealthRecordResponse {
	if h == nil {
		return nil
	}
	return &dto.HealthRecordResponse{
		Id:         h.Id,
		UserId:     h.UserId,
		DataType:   h.DataType,
		Value:      h.Value,
		Unit:       h.Unit,
		RecordedAt: h.RecordedAt,
		CreatedAt:  h.CreatedAt,
	}
}
