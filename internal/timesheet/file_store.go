package timesheet

import (
	"os"

	json "github.com/goccy/go-json"

	"shiftlog/internal/models"
	"shiftlog/internal/providers"
	"shiftlog/internal/timesheet/interfaces"
)

// FileStore persists the whole record collection as one JSON file. Saves are
// atomic: data is written to a temp file, fsynced, then renamed over the
// canonical path so a crash or concurrent reader never sees a partial file.
type FileStore struct {
	path   string
	logger providers.Logger
}

func NewFileStore(path string, logger providers.Logger) interfaces.RecordStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Load reads the current collection. A missing file is the valid initial
// state and yields an empty collection. An unparseable file also yields an
// empty collection: refusing to start over unreadable data would block all
// future access, so availability wins here.
func (f *FileStore) Load() ([]models.ShiftRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.ShiftRecord{}, nil
		}
		return nil, err
	}

	var records []models.ShiftRecord
	if err := json.Unmarshal(data, &records); err != nil {
		f.logger.Warnf(providers.TypeApp, "Corrupt record file %s, starting with empty collection: %s", f.path, err)
		return []models.ShiftRecord{}, nil
	}
	return records, nil
}

func (f *FileStore) Save(records []models.ShiftRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}
