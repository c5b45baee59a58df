package unitofwork

import (
	"context"

	"healthlink-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one request. Begin/Commit/Rollback
// bracket the multi-step writes that must land together (the chat webhook).
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	AppointmentRepository() contract.AppointmentRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	HealthRecordRepository() contract.HealthRecordRepository
	SystemSettingRepository() contract.SystemSettingRepository
}
