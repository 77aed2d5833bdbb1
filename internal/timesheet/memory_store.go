package timesheet

import (
	"shiftlog/internal/models"
	"shiftlog/internal/timesheet/interfaces"
)

// MemoryStore keeps the collection in memory. It exists so the service layer
// can be exercised without touching the filesystem; production wiring always
// uses FileStore.
type MemoryStore struct {
	records []models.ShiftRecord
	// SaveErr, when set, is returned by Save to simulate storage failures.
	SaveErr error
	// LoadErr, when set, is returned by Load.
	LoadErr error
	Saves   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: []models.ShiftRecord{}}
}

func (m *MemoryStore) Load() ([]models.ShiftRecord, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make([]models.ShiftRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryStore) Save(records []models.ShiftRecord) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.records = make([]models.ShiftRecord, len(records))
	copy(m.records, records)
	m.Saves++
	return nil
}

var _ interfaces.RecordStore = (*MemoryStore)(nil)
