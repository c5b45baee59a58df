package service

import (
	"context"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/entity"
	"healthlink-be/internal/pkg/apperror"
	"healthlink-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAppointmentService interface {
	GetAll(ctx context.Context) ([]*dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAppointmentService(uowFactory unitofwork.RepositoryFactory) IAppointmentService {
	return &appointmentService{
		uowFactory: uowFactory,
	}
}

func (s *appointmentService) GetAll(ctx context.Context) ([]*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointments, err := uow.AppointmentRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		result[i] = toAppointmentResponse(a)
	}
	return result, nil
}

func (s *appointmentService) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := req.Status
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}

	appointment := entity.Appointment{
		Id:              uuid.New(),
		UserId:          req.UserId,
		Title:           req.Title,
		Description:     req.Description,
		AppointmentDate: req.AppointmentDate,
		Status:          status,
	}
	if err := uow.AppointmentRepository().Create(ctx, &appointment); err != nil {
		return nil, err
	}

	return toAppointmentResponse(&appointment), nil
}

func (s *appointmentService) Show(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NotFound("Appointment not found")
	}

	return toAppointmentResponse(appointment), nil
}

func (s *appointmentService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AppointmentRepository()

	appointment, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NotFound("Appointment not found")
	}

	if req.Title != nil {
		appointment.Title = *req.Title
	}
	if req.Description != nil {
		appointment.Description = req.Description
	}
	if req.AppointmentDate != nil {
		appointment.AppointmentDate = *req.AppointmentDate
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}

	if err := repo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appointment), nil
}

func (s *appointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AppointmentRepository().Delete(ctx, id)
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		Id:              a.Id,
		UserId:          a.UserId,
		Title:           a.Title,
		Description:     a.Description,
		AppointmentDate: a.AppointmentDate,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
