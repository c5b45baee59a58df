package memory

import (
	"context"
	"fmt"

	"healthlink-be/internal/repository/contract"
	"healthlink-be/internal/repository/unitofwork"
)

type repositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork emulates transactions by snapshotting the store on Begin and
// restoring the snapshot on Rollback.
type unitOfWork struct {
	store *Store
	snap  *snapshot
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.snap != nil {
		return fmt.Errorf("transaction already started")
	}
	u.snap = u.store.takeSnapshot()
	return nil
}

func (u *unitOfWork) Commit() error {
	if u.snap == nil {
		return fmt.Errorf("no transaction to commit")
	}
	u.snap = nil
	return nil
}

func (u *unitOfWork) Rollback() error {
	if u.snap == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	u.store.restore(u.snap)
	u.snap = nil
	return nil
}

func (u *unitOfWork) ProfileRepository() contract.ProfileRepository {
	return &profileRepository{store: u.store}
}

func (u *unitOfWork) AppointmentRepository() contract.AppointmentRepository {
	return &appointmentRepository{store: u.store}
}

func (u *unitOfWork) ConversationRepository() contract.ConversationRepository {
	return &conversationRepository{store: u.store}
}

func (u *unitOfWork) MessageRepository() contract.MessageRepository {
	return &messageRepository{store: u.store}
}

func (u *unitOfWork) HealthRecordRepository() contract.HealthRecordRepository {
	return &healthRecordRepository{store: u.store}
}

func (u *unitOfWork) SystemSettingRepository() contract.SystemSettingRepository {
	return &systemSettingRepository{store: u.store}
}
