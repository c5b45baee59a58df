package service

import (
	"context"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/entity"
	"healthlink-be/internal/pkg/apperror"
	"healthlink-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISystemSettingService interface {
	GetAll(ctx context.Context) ([]*dto.SettingResponse, error)
	Create(ctx context.Context, req *dto.CreateSettingRequest) (*dto.SettingResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type systemSettingService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSystemSettingService(uowFactory unitofwork.RepositoryFactory) ISystemSettingService {
	return &systemSettingService{
		uowFactory: uowFactory,
	}
}

func (s *systemSettingService) GetAll(ctx context.Context) ([]*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.SystemSettingRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SettingResponse, len(settings))
	for i, st := range settings {
		result[i] = toSettingResponse(st)
	}
	return result, nil
}

func (s *systemSettingService) Create(ctx context.Context, req *dto.CreateSettingRequest) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting := entity.SystemSetting{
		Id:          uuid.New(),
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
	}
	if err := uow.SystemSettingRepository().Create(ctx, &setting); err != nil {
		return nil, err
	}

	return toSettingResponse(&setting), nil
}

func (s *systemSettingService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SystemSettingRepository()

	setting, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, apperror.NotFound("Setting not found")
	}

	if req.Value != nil {
		setting.Value = *req.Value
	}
	if req.Description != nil {
		setting.Description = req.Description
	}

	if err := repo.Update(ctx, setting); err != nil {
		return nil, err
	}
	return toSettingResponse(setting), nil
}

func (s *systemSettingService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SystemSettingRepository().Delete(ctx, id)
}

func toSettingResponse(s *entity.SystemSetting) *dto.SettingResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingResponse{
		Id:          s.Id,
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
