package memory

import (
	"sync"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

// Store holds every table of the gateway's data model in process memory.
// It backs the same repository contracts as the gorm implementations so
// tests can run the full operation stack without a database.
type Store struct {
	mu sync.RWMutex

	profiles      map[uuid.UUID]entity.Profile
	appointments  map[uuid.UUID]entity.Appointment
	conversations map[uuid.UUID]entity.Conversation
	healthRecords map[uuid.UUID]entity.HealthRecord
	settings      map[uuid.UUID]entity.SystemSetting

	// messages stay a slice: the table is append-only and insertion order
	// is the tie-break when created_at collides.
	messages []entity.Message
}

func NewStore() *Store {
	return &Store{
		profiles:      make(map[uuid.UUID]entity.Profile),
		appointments:  make(map[uuid.UUID]entity.Appointment),
		conversations: make(map[uuid.UUID]entity.Conversation),
		healthRecords: make(map[uuid.UUID]entity.HealthRecord),
		settings:      make(map[uuid.UUID]entity.SystemSetting),
	}
}

type snapshot struct {
	profiles      map[uuid.UUID]entity.Profile
	appointments  map[uuid.UUID]entity.Appointment
	conversations map[uuid.UUID]entity.Conversation
	healthRecords map[uuid.UUID]entity.HealthRecord
	settings      map[uuid.UUID]entity.SystemSetting
	messages      []entity.Message
}

func (s *Store) takeSnapshot() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &snapshot{
		profiles:      make(map[uuid.UUID]entity.Profile, len(s.profiles)),
		appointments:  make(map[uuid.UUID]entity.Appointment, len(s.appointments)),
		conversations: make(map[uuid.UUID]entity.Conversation, len(s.conversations)),
		healthRecords: make(map[uuid.UUID]entity.HealthRecord, len(s.healthRecords)),
		settings:      make(map[uuid.UUID]entity.SystemSetting, len(s.settings)),
		messages:      make([]entity.Message, len(s.messages)),
	}
	for id, p := range s.profiles {
		snap.profiles[id] = p
	}
	for id, a := range s.appointments {
		snap.appointments[id] = a
	}
	for id, c := range s.conversations {
		snap.conversations[id] = c
	}
	for id, h := range s.healthRecords {
		snap.healthRecords[id] = h
	}
	for id, st := range s.settings {
		snap.settings[id] = st
	}
	copy(snap.messages, s.messages)
	return snap
}

func (s *Store) restore(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles = snap.profiles
	s.appointments = snap.appointments
	s.conversations = snap.conversations
	s.healthRecords = snap.healthRecords
	s.settings = snap.settings
	s.messages = snap.messages
}
