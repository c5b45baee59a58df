package service

import (
	"context"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/entity"
	"healthlink-be/internal/pkg/apperror"
	"healthlink-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProfileService interface {
	GetAll(ctx context.Context) ([]*dto.ProfileResponse, error)
	Create(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
	}
}

func (s *profileService) GetAll(ctx context.Context) ([]*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profiles, err := uow.ProfileRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProfileResponse, len(profiles))
	for i, p := range profiles {
		result[i] = toProfileResponse(p)
	}
	return result, nil
}

func (s *profileService) Create(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile := entity.Profile{
		Id:        uuid.New(),
		UserId:    req.UserId,
		FullName:  req.FullName,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
	}
	if err := uow.ProfileRepository().Create(ctx, &profile); err != nil {
		return nil, err
	}

	return toProfileResponse(&profile), nil
}

func (s *profileService) Show(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProfileRepository()

	profile, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.BirthDate != nil {
		profile.BirthDate = req.BirthDate
	}
	if req.Gender != nil {
		profile.Gender = req.Gender
	}

	if err := repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func (s *profileService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProfileRepository().Delete(ctx, id)
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		Id:        p.Id,
		UserId:    p.UserId,
		FullName:  p.FullName,
		Phone:     p.Phone,
		BirthDate: p.BirthDate,
		Gender:    p.Gender,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
