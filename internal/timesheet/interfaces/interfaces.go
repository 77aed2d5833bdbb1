package interfaces

import "shiftlog/internal/models"

// RecordStore owns the persisted shift record collection. Every mutation is a
// whole-collection read-modify-write through Load and Save.
type RecordStore interface {
	Load() ([]models.ShiftRecord, error)
	Save(records []models.ShiftRecord) error
}

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

// BackupSchedulerInterface drives periodic compressed snapshots of the data
// file. Init starts the loop, Stop terminates it, Snapshot forces one run.
type BackupSchedulerInterface interface {
	Init()
	Stop()
	Snapshot() error
}
